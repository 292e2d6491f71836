package blockkit

import "testing"

func TestEmptyModalResponse_Resolve(t *testing.T) {
	if doc := mustRender(t, NewEmptyModalResponse()); doc != `{}` {
		t.Fatalf("got %s", doc)
	}
}

func TestCloseModalResponse_Resolve(t *testing.T) {
	if doc := mustRender(t, NewCloseModalResponse()); doc != `{"response_action":"clear"}` {
		t.Fatalf("got %s", doc)
	}
}

func TestErrorModalResponse_Resolve(t *testing.T) {
	resp := NewErrorModalResponse(map[string]string{"block-1": "required field"})
	doc := mustRender(t, resp)
	want := `{"response_action":"errors","errors":{"block-1":"required field"}}`
	if doc != want {
		t.Fatalf("got %s, want %s", doc, want)
	}
}

func TestErrorModalResponse_CopiesErrors(t *testing.T) {
	src := map[string]string{"b": "msg"}
	resp := NewErrorModalResponse(src)
	src["b"] = "mutated"
	m := resolveMap(t, resp)
	if m["errors"].(map[string]any)["b"] != "msg" {
		t.Fatalf("response must not alias the caller's map: %v", m)
	}
}

func TestUpdateModalResponse_Resolve(t *testing.T) {
	stubIDs(t, "b1")
	section, err := NewSectionBlock("done")
	if err != nil {
		t.Fatalf("NewSectionBlock failed: %v", err)
	}
	modal, err := NewModalView("Next", []Block{section})
	if err != nil {
		t.Fatalf("NewModalView failed: %v", err)
	}
	m := resolveMap(t, NewUpdateModalResponse(modal))
	if m["response_action"] != "update" {
		t.Fatalf("unexpected action: %v", m)
	}
	view := m["view"].(map[string]any)
	if view["type"] != "modal" || view["title"].(map[string]any)["text"] != "Next" {
		t.Fatalf("unexpected nested view: %v", view)
	}
}

func TestUpdateModalResponse_PropagatesResolveErrors(t *testing.T) {
	field, err := NewTextInput("f")
	if err != nil {
		t.Fatalf("NewTextInput failed: %v", err)
	}
	input, err := NewInputBlock("L", field)
	if err != nil {
		t.Fatalf("NewInputBlock failed: %v", err)
	}
	modal, err := NewModalView("T", []Block{input}) // no submit
	if err != nil {
		t.Fatalf("NewModalView failed: %v", err)
	}
	if _, err := NewUpdateModalResponse(modal).Resolve(); err == nil {
		t.Fatalf("nested modal resolve error must propagate")
	}
}
