package llm

import (
	"encoding/json"
	"testing"
)

func testSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"from":  map[string]any{"type": "string"},
			"total": map[string]any{"type": "number"},
			"note":  map[string]any{"type": "string"},
			"party": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":    map[string]any{"type": "string"},
					"address": map[string]any{"type": "string"},
				},
			},
			"items": map[string]any{"type": "array"},
		},
		"required": []string{"from", "total"},
	}
}

func TestSanitizeDraftDropsUnknownAndEmpty(t *testing.T) {
	raw := []byte(`{
		"from": "  ACME  ",
		"total": 10,
		"note": "",
		"hallucinated": "value",
		"party": {"name": "X", "address": null}
	}`)

	out, dropped, err := SanitizeDraft(raw, testSchema(), nil)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	if m["from"] != "ACME" {
		t.Errorf("from = %q, want trimmed", m["from"])
	}
	if _, ok := m["note"]; ok {
		t.Error("empty optional string must be dropped")
	}
	if _, ok := m["hallucinated"]; ok {
		t.Error("unknown key must be dropped")
	}
	party := m["party"].(map[string]any)
	if _, ok := party["address"]; ok {
		t.Error("nested null must be dropped")
	}
	if party["name"] != "X" {
		t.Errorf("nested value lost: %v", party)
	}
	if len(dropped) != 3 {
		t.Errorf("dropped = %v, want 3 entries", dropped)
	}
	found := false
	for _, d := range dropped {
		if d == "party.address(null)" {
			found = true
		}
	}
	if !found {
		t.Errorf("nested drop missing from audit list: %v", dropped)
	}
}

func TestSanitizeDraftKeepsRequiredFields(t *testing.T) {
	raw := []byte(`{"from": "", "total": null}`)
	out, _, err := SanitizeDraft(raw, testSchema(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	// required fields stay so validation can report them
	if _, ok := m["from"]; !ok {
		t.Error("required empty string must survive sanitization")
	}
	if _, ok := m["total"]; !ok {
		t.Error("required null must survive sanitization")
	}
}

func TestSanitizeDraftCleansArrayElements(t *testing.T) {
	raw := []byte(`{"from": "A", "total": 1, "items": [{"description": " milk ", "junk": null}]}`)
	out, dropped, err := SanitizeDraft(raw, testSchema(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	el := m["items"].([]any)[0].(map[string]any)
	if el["description"] != "milk" {
		t.Errorf("description = %q", el["description"])
	}
	if _, ok := el["junk"]; ok {
		t.Error("null inside array element must be dropped")
	}
	if len(dropped) != 1 || dropped[0] != "items[0].junk(null)" {
		t.Errorf("dropped = %v, want the element-indexed path", dropped)
	}
}

func TestSanitizeDraftRejectsNonObject(t *testing.T) {
	if _, _, err := SanitizeDraft([]byte(`[1,2]`), testSchema(), nil); err == nil {
		t.Fatal("expected an error for a non-object draft")
	}
}
