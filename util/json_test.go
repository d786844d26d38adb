package util

import "testing"

func TestJsonNode(t *testing.T) {
	node, err := NewJsonNode([]byte(`{"name":"eDP-1","focused":true,"rect":{"width":1920},"modes":[1,2]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !node.Get("name").IsString {
		t.Errorf("name not marked IsString")
	}
	if !node.Get("focused").Bool() {
		t.Errorf("focused = false")
	}
	if got := node.Get("rect").Get("width").Int(); got != 1920 {
		t.Errorf("width = %d", got)
	}
	if got := len(node.Get("modes").Array()); got != 2 {
		t.Errorf("modes = %d", got)
	}
	if got := node.Get("modes").Array()[1].Int(); got != 2 {
		t.Errorf("modes[1] = %d", got)
	}
}

func TestJsonNodeMissing(t *testing.T) {
	node, err := NewJsonNode([]byte(`{"rect":null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !node.Get("rect").IsNull {
		t.Errorf("null value not marked IsNull")
	}
	if got := node.Get("rect").Get("width").Int(); got != 0 {
		t.Errorf("chained lookup on null = %d", got)
	}
	if node.Get("modes").Array() != nil {
		t.Errorf("missing array returned nodes")
	}
	if node.Get("name").Int() != 0 || node.Get("name").Bool() {
		t.Errorf("missing key should give zero values")
	}

	if _, err := NewJsonNode([]byte(`{`)); err == nil {
		t.Errorf("expected error for truncated input")
	}
}
