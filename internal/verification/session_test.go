package verification

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/Lazzzer/structurizer-sub000/internal/common"
)

func working(t *testing.T, raw string) WorkingObject {
	t.Helper()
	w, err := NewWorkingObject(json.RawMessage(raw))
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestApplyEditReplacesLeafOnly(t *testing.T) {
	w := working(t, `{
		"from": "Corner Store",
		"total": 10,
		"items": [
			{"description": "milk", "quantity": 1, "amount": 3},
			{"description": "bread", "quantity": 2, "amount": 7}
		]
	}`)

	if err := w.ApplyEdit("items[1].amount", 7.5); err != nil {
		t.Fatal(err)
	}

	items := w["items"].([]any)
	second := items[1].(map[string]any)
	if second["amount"] != 7.5 {
		t.Fatalf("amount = %v, want 7.5", second["amount"])
	}
	// siblings untouched
	if second["description"] != "bread" || second["quantity"] != float64(2) {
		t.Fatalf("sibling fields changed: %v", second)
	}
	first := items[0].(map[string]any)
	if !reflect.DeepEqual(first, map[string]any{"description": "milk", "quantity": float64(1), "amount": float64(3)}) {
		t.Fatalf("other elements changed: %v", first)
	}
	if w["from"] != "Corner Store" || w["total"] != float64(10) {
		t.Fatal("top-level siblings changed")
	}
}

func TestApplyEditNestedObject(t *testing.T) {
	w := working(t, `{"from": {"name": "ACME", "address": "1 Main St"}}`)
	if err := w.ApplyEdit("from.name", "ACME GmbH"); err != nil {
		t.Fatal(err)
	}
	from := w["from"].(map[string]any)
	if from["name"] != "ACME GmbH" || from["address"] != "1 Main St" {
		t.Fatalf("got %v", from)
	}
}

func TestApplyEditCreatesOmittedOptionalObject(t *testing.T) {
	w := working(t, `{"total_amount_due": 5}`)
	if err := w.ApplyEdit("credit_card.holder", "J. Doe"); err != nil {
		t.Fatal(err)
	}
	card, ok := w["credit_card"].(map[string]any)
	if !ok || card["holder"] != "J. Doe" {
		t.Fatalf("got %v", w["credit_card"])
	}
}

func TestApplyEditRejectsBadPaths(t *testing.T) {
	w := working(t, `{"items": [{"amount": 1}], "total": 2}`)
	for _, path := range []string{
		"",
		"items[5].amount", // out of range
		"items[x].amount",
		"total.amount", // scalar is not an object
		"items[0",
		".amount",
	} {
		if err := w.ApplyEdit(path, 1); !errors.Is(err, common.ErrValidation) {
			t.Errorf("ApplyEdit(%q) = %v, want ErrValidation", path, err)
		}
	}
	// failed edits leave the object intact
	if w["total"] != float64(2) {
		t.Fatal("failed edit mutated the object")
	}
}

func TestApplyEditRoundTripSurvivesEncoding(t *testing.T) {
	w := working(t, `{"a": {"b": [{"c": 1}]}}`)
	if err := w.ApplyEdit("a.b[0].c", "fixed"); err != nil {
		t.Fatal(err)
	}

	raw, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	back, err := NewWorkingObject(raw)
	if err != nil {
		t.Fatal(err)
	}
	c := back["a"].(map[string]any)["b"].([]any)[0].(map[string]any)["c"]
	if c != "fixed" {
		t.Fatalf("round trip lost the edit: %v", c)
	}
}

func TestCloneIsDeep(t *testing.T) {
	w := working(t, `{"items": [{"amount": 1}]}`)
	cp, err := w.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if err := cp.ApplyEdit("items[0].amount", 99); err != nil {
		t.Fatal(err)
	}
	orig := w["items"].([]any)[0].(map[string]any)["amount"]
	if orig != float64(1) {
		t.Fatalf("mutating the clone changed the original: %v", orig)
	}
}

func TestNewWorkingObjectRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `"x"`, `42`, `not json`} {
		if _, err := NewWorkingObject(json.RawMessage(raw)); !errors.Is(err, common.ErrValidation) {
			t.Errorf("NewWorkingObject(%s) = %v, want ErrValidation", raw, err)
		}
	}
}
