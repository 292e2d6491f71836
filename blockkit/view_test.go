package blockkit

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestHomeView_Resolve(t *testing.T) {
	stubIDs(t, "b1")
	section, err := NewSectionBlock("Welcome back")
	if err != nil {
		t.Fatalf("NewSectionBlock failed: %v", err)
	}
	view := NewHomeView([]Block{section}, HomeViewCallbackID("cb-1"), HomeViewExternalID("ext-1"))
	m := resolveMap(t, view)
	if m["type"] != "home" {
		t.Fatalf("unexpected type: %v", m)
	}
	blocks := m["blocks"].([]any)
	if len(blocks) != 1 || blocks[0].(map[string]any)["type"] != "section" {
		t.Fatalf("unexpected blocks: %v", blocks)
	}
	if m["callback_id"] != "cb-1" || m["external_id"] != "ext-1" {
		t.Fatalf("unexpected ids: %v", m)
	}
}

func TestHomeView_EmptyBlocks(t *testing.T) {
	m := resolveMap(t, NewHomeView(nil))
	if blocks, ok := m["blocks"].([]any); !ok || len(blocks) != 0 {
		t.Fatalf("blocks must always be a list: %v", m)
	}
}

func TestView_PrivateMetadataIsStringEncoded(t *testing.T) {
	view := NewHomeView(nil, HomeViewPrivateMetadata(map[string]any{"step": 2}))
	m := resolveMap(t, view)
	raw, ok := m["private_metadata"].(string)
	if !ok {
		t.Fatalf("private_metadata must be a string, got %T", m["private_metadata"])
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("private_metadata is not a JSON blob: %v", err)
	}
	if decoded["step"] != float64(2) {
		t.Fatalf("unexpected metadata: %v", decoded)
	}
}

func TestModalView_Resolve(t *testing.T) {
	section, err := NewSectionBlock("body")
	if err != nil {
		t.Fatalf("NewSectionBlock failed: %v", err)
	}
	modal, err := NewModalView("Settings", []Block{section},
		ModalClose("Dismiss"),
		ModalSubmit("Save"),
		ModalClearOnClose(),
		ModalNotifyOnClose(),
		ModalCallbackID("cb-1"),
	)
	if err != nil {
		t.Fatalf("NewModalView failed: %v", err)
	}
	m := resolveMap(t, modal)
	if m["type"] != "modal" {
		t.Fatalf("unexpected type: %v", m)
	}
	if m["title"].(map[string]any)["type"] != "plain_text" {
		t.Fatalf("title must be plain text: %v", m["title"])
	}
	if m["submit"].(map[string]any)["text"] != "Save" || m["close"].(map[string]any)["text"] != "Dismiss" {
		t.Fatalf("unexpected buttons: %v", m)
	}
	if m["clear_on_close"] != true || m["notify_on_close"] != true {
		t.Fatalf("close flags missing: %v", m)
	}
}

func TestModalView_TitleLimit(t *testing.T) {
	if _, err := NewModalView(strings.Repeat("x", 25), nil); !errors.Is(err, ErrInvalidUsage) {
		t.Fatalf("over-long title must fail, got %v", err)
	}
	if _, err := NewModalView(strings.Repeat("x", 24), nil); err != nil {
		t.Fatalf("title at limit must pass: %v", err)
	}
	if _, err := NewModalView("", nil); !errors.Is(err, ErrInvalidUsage) {
		t.Fatalf("missing title must fail, got %v", err)
	}
}

func TestModalView_SubmitRequiredWithInputs(t *testing.T) {
	field, err := NewTextInput("field-1")
	if err != nil {
		t.Fatalf("NewTextInput failed: %v", err)
	}
	input, err := NewInputBlock("Name", field)
	if err != nil {
		t.Fatalf("NewInputBlock failed: %v", err)
	}

	modal, err := NewModalView("T", []Block{input})
	if err != nil {
		t.Fatalf("NewModalView failed: %v", err)
	}
	if _, err := modal.Resolve(); !errors.Is(err, ErrInvalidUsage) {
		t.Fatalf("modal with input and no submit must fail resolution, got %v", err)
	}

	withSubmit, err := NewModalView("T", []Block{input}, ModalSubmit("Go"))
	if err != nil {
		t.Fatalf("NewModalView failed: %v", err)
	}
	if _, err := withSubmit.Resolve(); err != nil {
		t.Fatalf("modal with submit must resolve: %v", err)
	}

	// No inputs: submit stays optional.
	section, err := NewSectionBlock("info")
	if err != nil {
		t.Fatalf("NewSectionBlock failed: %v", err)
	}
	plain, err := NewModalView("T", []Block{section})
	if err != nil {
		t.Fatalf("NewModalView failed: %v", err)
	}
	if _, err := plain.Resolve(); err != nil {
		t.Fatalf("modal without inputs must resolve without submit: %v", err)
	}
}

func TestModalView_BlockOrderPreserved(t *testing.T) {
	sequentialIDs(t)
	header, err := NewHeaderBlock("H")
	if err != nil {
		t.Fatalf("NewHeaderBlock failed: %v", err)
	}
	section, err := NewSectionBlock("S")
	if err != nil {
		t.Fatalf("NewSectionBlock failed: %v", err)
	}
	modal, err := NewModalView("T", []Block{header, NewDividerBlock(), section})
	if err != nil {
		t.Fatalf("NewModalView failed: %v", err)
	}
	blocks := resolveMap(t, modal)["blocks"].([]any)
	wantOrder := []string{"header", "divider", "section"}
	for i, want := range wantOrder {
		if got := blocks[i].(map[string]any)["type"]; got != want {
			t.Fatalf("block %d: got %v, want %s", i, got, want)
		}
	}
}
