package blockkit

// maxContextElements is the platform cap on elements in a context block.
const maxContextElements = 10

func resolveElements(elements []Element) ([]*Fields, error) {
	resolved := make([]*Fields, 0, len(elements))
	for _, el := range elements {
		ef, err := el.Resolve()
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, ef)
	}
	return resolved, nil
}

// SectionBlock is the most flexible block: a simple text block, a set of
// side-by-side text fields, or text paired with an accessory element.
type SectionBlock struct {
	blockCore
	text      *Text
	fields    []*Text
	accessory Element
}

type sectionConfig struct {
	blockID   string
	fields    []TextLike
	accessory Element
}

// SectionOption configures a section block at construction.
type SectionOption func(*sectionConfig)

// SectionBlockID sets an explicit block_id.
func SectionBlockID(id string) SectionOption {
	return func(c *sectionConfig) { c.blockID = id }
}

// SectionFields supplies side-by-side text fields. Empty entries are
// dropped; each remaining field is capped at 2000 characters.
func SectionFields(fields ...TextLike) SectionOption {
	return func(c *sectionConfig) { c.fields = fields }
}

// SectionAccessory attaches a single accessory element.
func SectionAccessory(accessory Element) SectionOption {
	return func(c *sectionConfig) { c.accessory = accessory }
}

// NewSectionBlock builds a section block. The body text is capped at 2000
// characters; an empty body is omitted from the output.
func NewSectionBlock(text TextLike, opts ...SectionOption) (*SectionBlock, error) {
	var cfg sectionConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	body, err := coerceText(text, false, 2000)
	if err != nil {
		return nil, err
	}
	var fields []*Text
	for _, fl := range cfg.fields {
		ft, err := coerceText(fl, false, 2000)
		if err != nil {
			return nil, err
		}
		if ft == nil {
			continue
		}
		fields = append(fields, ft)
	}
	return &SectionBlock{
		blockCore: newBlockCore(BlockTypeSection, cfg.blockID),
		text:      body,
		fields:    fields,
		accessory: cfg.accessory,
	}, nil
}

func (b *SectionBlock) Resolve() (*Fields, error) {
	f := b.attributes()
	if b.text != nil {
		if err := setResolved(f, "text", b.text); err != nil {
			return nil, err
		}
	}
	if len(b.fields) > 0 {
		resolved := make([]*Fields, 0, len(b.fields))
		for _, ft := range b.fields {
			ff, err := ft.Resolve()
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, ff)
		}
		f.Set("fields", resolved)
	}
	if b.accessory != nil {
		if err := setResolved(f, "accessory", b.accessory); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// DividerBlock splits up blocks inside a message, like an <hr>.
type DividerBlock struct {
	blockCore
}

type dividerConfig struct {
	blockID string
}

// DividerOption configures a divider block at construction.
type DividerOption func(*dividerConfig)

// DividerBlockID sets an explicit block_id.
func DividerBlockID(id string) DividerOption {
	return func(c *dividerConfig) { c.blockID = id }
}

// NewDividerBlock builds a divider block.
func NewDividerBlock(opts ...DividerOption) *DividerBlock {
	var cfg dividerConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return &DividerBlock{blockCore: newBlockCore(BlockTypeDivider, cfg.blockID)}
}

func (b *DividerBlock) Resolve() (*Fields, error) {
	return b.attributes(), nil
}

// ImageBlock is a standalone image. The platform requires a non-empty title
// to be present, so an absent title is substituted with a single-space
// plain_text placeholder, and a mrkdwn title is re-tagged to plain_text
// (same content, emoji flag preserved).
type ImageBlock struct {
	blockCore
	imageURL string
	altText  string
	title    *Text
}

type imageBlockConfig struct {
	blockID string
	title   TextLike
}

// ImageBlockOption configures an image block at construction.
type ImageBlockOption func(*imageBlockConfig)

// ImageBlockID sets an explicit block_id.
func ImageBlockID(id string) ImageBlockOption {
	return func(c *imageBlockConfig) { c.blockID = id }
}

// ImageBlockTitle sets the image title.
func ImageBlockTitle(title TextLike) ImageBlockOption {
	return func(c *imageBlockConfig) { c.title = title }
}

// NewImageBlock builds an image block.
func NewImageBlock(imageURL, altText string, opts ...ImageBlockOption) (*ImageBlock, error) {
	var cfg imageBlockConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	var title *Text
	switch tv := cfg.title.(type) {
	case nil:
		title = &Text{typ: TextTypePlain, text: " "}
	case string:
		if tv == "" {
			title = &Text{typ: TextTypePlain, text: " "}
		} else {
			title = &Text{typ: TextTypePlain, text: tv}
		}
	case *Text:
		switch {
		case tv == nil:
			title = &Text{typ: TextTypePlain, text: " "}
		case tv.typ == TextTypeMarkdown:
			title = &Text{typ: TextTypePlain, text: tv.text, emoji: tv.emoji}
		default:
			title = tv
		}
	default:
		return nil, usageErrf("cannot use %T as image title", cfg.title)
	}
	return &ImageBlock{
		blockCore: newBlockCore(BlockTypeImage, cfg.blockID),
		imageURL:  imageURL,
		altText:   altText,
		title:     title,
	}, nil
}

func (b *ImageBlock) Resolve() (*Fields, error) {
	f := b.attributes()
	f.Set("image_url", b.imageURL)
	f.Set("alt_text", b.altText)
	if err := setResolved(f, "title", b.title); err != nil {
		return nil, err
	}
	return f, nil
}

// ActionsBlock holds one or more interactive elements.
type ActionsBlock struct {
	blockCore
	elements []Element
}

type actionsConfig struct {
	blockID string
}

// ActionsOption configures an actions block at construction.
type ActionsOption func(*actionsConfig)

// ActionsBlockID sets an explicit block_id.
func ActionsBlockID(id string) ActionsOption {
	return func(c *actionsConfig) { c.blockID = id }
}

// NewActionsBlock builds an actions block over the given elements.
func NewActionsBlock(elements []Element, opts ...ActionsOption) *ActionsBlock {
	var cfg actionsConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return &ActionsBlock{blockCore: newBlockCore(BlockTypeActions, cfg.blockID), elements: elements}
}

func (b *ActionsBlock) Resolve() (*Fields, error) {
	f := b.attributes()
	resolved, err := resolveElements(b.elements)
	if err != nil {
		return nil, err
	}
	f.Set("elements", resolved)
	return f, nil
}

// ContextBlock displays message context: up to ten text and image elements.
type ContextBlock struct {
	blockCore
	elements []Element
}

type contextConfig struct {
	blockID string
}

// ContextOption configures a context block at construction.
type ContextOption func(*contextConfig)

// ContextBlockID sets an explicit block_id.
func ContextBlockID(id string) ContextOption {
	return func(c *contextConfig) { c.blockID = id }
}

// NewContextBlock builds a context block. Elements must be text or image
// kinds and at most ten may be supplied; violations are usage errors.
func NewContextBlock(elements []Element, opts ...ContextOption) (*ContextBlock, error) {
	var cfg contextConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	for _, el := range elements {
		if el == nil {
			return nil, usageErrf("context blocks cannot hold nil elements")
		}
		switch el.ElementType() {
		case ElementTypeText, ElementTypeImage:
		default:
			return nil, usageErrf("context blocks can only hold text and image elements")
		}
	}
	if len(elements) > maxContextElements {
		return nil, usageErrf("context blocks can hold a maximum of %d elements", maxContextElements)
	}
	return &ContextBlock{blockCore: newBlockCore(BlockTypeContext, cfg.blockID), elements: elements}, nil
}

func (b *ContextBlock) Resolve() (*Fields, error) {
	f := b.attributes()
	resolved, err := resolveElements(b.elements)
	if err != nil {
		return nil, err
	}
	f.Set("elements", resolved)
	return f, nil
}

// FileBlock displays a remote file by external ID.
type FileBlock struct {
	blockCore
	externalID string
	source     string
}

type fileConfig struct {
	blockID string
}

// FileOption configures a file block at construction.
type FileOption func(*fileConfig)

// FileBlockID sets an explicit block_id.
func FileBlockID(id string) FileOption {
	return func(c *fileConfig) { c.blockID = id }
}

// NewFileBlock builds a file block.
func NewFileBlock(externalID, source string, opts ...FileOption) *FileBlock {
	var cfg fileConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return &FileBlock{
		blockCore:  newBlockCore(BlockTypeFile, cfg.blockID),
		externalID: externalID,
		source:     source,
	}
}

func (b *FileBlock) Resolve() (*Fields, error) {
	f := b.attributes()
	f.Set("external_id", b.externalID)
	f.Set("source", b.source)
	return f, nil
}

// HeaderBlock displays plain text in a larger, bold font.
type HeaderBlock struct {
	blockCore
	text *Text
}

type headerConfig struct {
	blockID string
}

// HeaderOption configures a header block at construction.
type HeaderOption func(*headerConfig)

// HeaderBlockID sets an explicit block_id.
func HeaderBlockID(id string) HeaderOption {
	return func(c *headerConfig) { c.blockID = id }
}

// NewHeaderBlock builds a header block. The text is forced to plain_text and
// must be non-empty.
func NewHeaderBlock(text TextLike, opts ...HeaderOption) (*HeaderBlock, error) {
	var cfg headerConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	headerText, err := coerceText(text, true, 0)
	if err != nil {
		return nil, err
	}
	if headerText == nil {
		return nil, usageErrf("header blocks require text")
	}
	return &HeaderBlock{blockCore: newBlockCore(BlockTypeHeader, cfg.blockID), text: headerText}, nil
}

func (b *HeaderBlock) Resolve() (*Fields, error) {
	f := b.attributes()
	if err := setResolved(f, "text", b.text); err != nil {
		return nil, err
	}
	return f, nil
}

// InputBlock collects information from users through a single child element
// (text input, select, checkboxes, date picker, ...).
type InputBlock struct {
	blockCore
	label          *Text
	element        Element
	dispatchAction bool
	hint           *Text
	optional       bool
}

type inputBlockConfig struct {
	blockID        string
	hint           TextLike
	dispatchAction bool
	optional       bool
}

// InputBlockOption configures an input block at construction.
type InputBlockOption func(*inputBlockConfig)

// InputBlockID sets an explicit block_id.
func InputBlockID(id string) InputBlockOption {
	return func(c *inputBlockConfig) { c.blockID = id }
}

// InputBlockHint adds hint text below the element (plain_text, max 2000).
func InputBlockHint(hint TextLike) InputBlockOption {
	return func(c *inputBlockConfig) { c.hint = hint }
}

// InputBlockDispatchAction makes interaction with the element dispatch a
// block_actions payload.
func InputBlockDispatchAction() InputBlockOption {
	return func(c *inputBlockConfig) { c.dispatchAction = true }
}

// InputBlockOptional marks the input as skippable when the view is
// submitted.
func InputBlockOptional() InputBlockOption {
	return func(c *inputBlockConfig) { c.optional = true }
}

// NewInputBlock builds an input block. The label is forced to plain_text,
// capped at 2000 characters, and required.
func NewInputBlock(label TextLike, element Element, opts ...InputBlockOption) (*InputBlock, error) {
	var cfg inputBlockConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	labelText, err := coerceText(label, true, 2000)
	if err != nil {
		return nil, err
	}
	if labelText == nil {
		return nil, usageErrf("input blocks require a label")
	}
	if element == nil {
		return nil, usageErrf("input blocks require an element")
	}
	hintText, err := coerceText(cfg.hint, true, 2000)
	if err != nil {
		return nil, err
	}
	return &InputBlock{
		blockCore:      newBlockCore(BlockTypeInput, cfg.blockID),
		label:          labelText,
		element:        element,
		dispatchAction: cfg.dispatchAction,
		hint:           hintText,
		optional:       cfg.optional,
	}, nil
}

func (b *InputBlock) Resolve() (*Fields, error) {
	f := b.attributes()
	if err := setResolved(f, "label", b.label); err != nil {
		return nil, err
	}
	if err := setResolved(f, "element", b.element); err != nil {
		return nil, err
	}
	f.Set("dispatch_action", b.dispatchAction)
	f.Set("optional", b.optional)
	if b.hint != nil {
		if err := setResolved(f, "hint", b.hint); err != nil {
			return nil, err
		}
	}
	return f, nil
}
