package verification

import (
	"testing"

	"github.com/Lazzzer/structurizer-sub000/internal/llm"
)

func TestStripIndexes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"items[2].amount", "items.amount"},
		{"items[0]", "items"},
		{"total", "total"},
		{"from.name", "from.name"},
		{"transactions[14].category", "transactions.category"},
		{"a[0].b[1].c", "a.c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripIndexes(tt.in); got != tt.want {
			t.Errorf("StripIndexes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripIndexesIsIdempotent(t *testing.T) {
	paths := []string{"items[2].amount", "items", "from.name", "a[0].b[1].c"}
	for _, p := range paths {
		once := StripIndexes(p)
		twice := StripIndexes(once)
		if once != twice {
			t.Errorf("StripIndexes not idempotent for %q: %q != %q", p, once, twice)
		}
	}
}

func TestGroupByField(t *testing.T) {
	corrections := []llm.Correction{
		{Field: "items[0].amount", Issue: "mismatch"},
		{Field: "items[3].amount", Issue: "mismatch"},
		{Field: "items[3].quantity", Issue: "mismatch"},
		{Field: "total", Issue: "sum"},
	}
	grouped := GroupByField(corrections)
	if len(grouped["items.amount"]) != 2 {
		t.Fatalf("items.amount bucket = %d, want 2", len(grouped["items.amount"]))
	}
	if len(grouped["items.quantity"]) != 1 {
		t.Fatalf("items.quantity bucket = %d, want 1", len(grouped["items.quantity"]))
	}
	if len(grouped["total"]) != 1 {
		t.Fatalf("total bucket = %d, want 1", len(grouped["total"]))
	}
	// original paths survive grouping
	if grouped["items.amount"][0].Field != "items[0].amount" {
		t.Fatalf("grouping must not rewrite the correction's own path, got %q", grouped["items.amount"][0].Field)
	}
}
