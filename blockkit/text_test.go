package blockkit

import (
	"errors"
	"strings"
	"testing"
)

func TestText_ResolveMarkdown(t *testing.T) {
	doc := mustRender(t, NewMarkdownText("Hello *world*", false))
	// verbatim is always present for mrkdwn, even when false.
	want := `{"type":"mrkdwn","text":"Hello *world*","verbatim":false}`
	if doc != want {
		t.Fatalf("got %s, want %s", doc, want)
	}
}

func TestText_ResolvePlain(t *testing.T) {
	doc := mustRender(t, NewPlainText("Hi", false))
	if doc != `{"type":"plain_text","text":"Hi"}` {
		t.Fatalf("emoji key must be absent when unset, got %s", doc)
	}
	doc = mustRender(t, NewPlainText("Hi", true))
	if doc != `{"type":"plain_text","text":"Hi","emoji":true}` {
		t.Fatalf("got %s", doc)
	}
}

func TestCoerceText_Empty(t *testing.T) {
	for _, v := range []TextLike{nil, "", (*Text)(nil)} {
		got, err := coerceText(v, false, 100)
		if err != nil {
			t.Fatalf("coerce of empty input failed: %v", err)
		}
		if got != nil {
			t.Fatalf("coerce of %#v produced %v, want nil", v, got)
		}
	}
}

func TestCoerceText_MaxLength(t *testing.T) {
	atLimit := strings.Repeat("a", 75)
	got, err := coerceText(atLimit, true, 75)
	if err != nil {
		t.Fatalf("input at the limit must pass: %v", err)
	}
	if got.Text() != atLimit {
		t.Fatalf("content mangled: %q", got.Text())
	}

	if _, err := coerceText(atLimit+"a", true, 75); !errors.Is(err, ErrInvalidUsage) {
		t.Fatalf("over-limit input must fail with a usage error, got %v", err)
	}

	// Length is counted in runes, not bytes.
	if _, err := coerceText(strings.Repeat("é", 75), true, 75); err != nil {
		t.Fatalf("75 multi-byte runes must pass: %v", err)
	}
}

func TestCoerceText_RetypesExistingText(t *testing.T) {
	plain := NewPlainText("keep me", true)
	got, err := coerceText(plain, false, 0)
	if err != nil {
		t.Fatalf("coerce failed: %v", err)
	}
	if got.TextType() != TextTypeMarkdown {
		t.Fatalf("existing text must be re-typed to the target kind, got %s", got.TextType())
	}
	if got.Text() != "keep me" {
		t.Fatalf("content changed: %q", got.Text())
	}

	md := NewMarkdownText("*bold*", true)
	got, err = coerceText(md, true, 0)
	if err != nil {
		t.Fatalf("coerce failed: %v", err)
	}
	if got.TextType() != TextTypePlain {
		t.Fatalf("forcePlain must win over the input kind, got %s", got.TextType())
	}
}

func TestCoerceText_RejectsOtherTypes(t *testing.T) {
	if _, err := coerceText(42, false, 0); !errors.Is(err, ErrInvalidUsage) {
		t.Fatalf("non-text input must fail, got %v", err)
	}
}
