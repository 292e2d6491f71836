package blockkit

import "unicode/utf8"

// TextType selects between Slack's two text formats.
type TextType string

const (
	TextTypeMarkdown TextType = "mrkdwn"
	TextTypePlain    TextType = "plain_text"
)

// Text is the atomic content object used throughout blocks and elements,
// formatted either as plain_text or using Slack's "mrkdwn". The emoji flag
// only applies to plain_text and the verbatim flag only to mrkdwn; the
// constructors keep the two from mixing.
type Text struct {
	typ      TextType
	text     string
	emoji    bool // plain_text only
	verbatim bool // mrkdwn only
}

// NewPlainText builds a plain_text object. When emoji is set, emoji names in
// the text are escaped into the colon format.
func NewPlainText(text string, emoji bool) *Text {
	return &Text{typ: TextTypePlain, text: text, emoji: emoji}
}

// NewMarkdownText builds a mrkdwn text object. When verbatim is set, Slack
// skips auto-linking of URLs, conversation names and mentions.
func NewMarkdownText(text string, verbatim bool) *Text {
	return &Text{typ: TextTypeMarkdown, text: text, verbatim: verbatim}
}

// TextType reports the text format.
func (t *Text) TextType() TextType { return t.typ }

// Text reports the raw content.
func (t *Text) Text() string { return t.text }

func (t *Text) ElementType() ElementType { return ElementTypeText }

func (t *Text) Resolve() (*Fields, error) {
	f := newFields()
	f.Set("type", string(t.typ))
	f.Set("text", t.text)
	switch t.typ {
	case TextTypeMarkdown:
		f.Set("verbatim", t.verbatim)
	case TextTypePlain:
		if t.emoji {
			f.Set("emoji", t.emoji)
		}
	}
	return f, nil
}

// TextLike is accepted anywhere the platform takes a text object.
type TextLike any // string | *Text

// coerceText normalizes a TextLike into a *Text of the kind the target field
// demands. An empty or nil input returns nil, which callers treat as "field
// omitted". An existing *Text is re-typed (not copied as-is): the output
// kind is plain_text iff forcePlain is set and mrkdwn otherwise, regardless
// of the input's own kind, and the emoji/verbatim flags reset. A maxLen > 0
// bounds the content's rune count; violations fail before any node is built.
func coerceText(v TextLike, forcePlain bool, maxLen int) (*Text, error) {
	var content string
	switch tv := v.(type) {
	case nil:
		return nil, nil
	case string:
		content = tv
	case *Text:
		if tv == nil {
			return nil, nil
		}
		content = tv.text
	default:
		return nil, usageErrf("cannot use %T as text", v)
	}
	if content == "" {
		return nil, nil
	}
	if n := utf8.RuneCountInString(content); maxLen > 0 && n > maxLen {
		return nil, usageErrf("text length %d exceeds limit %d", n, maxLen)
	}
	typ := TextTypeMarkdown
	if forcePlain {
		typ = TextTypePlain
	}
	return &Text{typ: typ, text: content}, nil
}
