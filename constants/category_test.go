package constants

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"receipts", Receipts, true},
		{"receipt", Receipts, true},
		{"  Receipts  ", Receipts, true},
		{"INVOICE", Invoices, true},
		{"invoices", Invoices, true},
		{"credit card statements", CardStatements, true},
		{"credit card statement", CardStatements, true},
		{"card statement", CardStatements, true},
		{"statement", CardStatements, true},
		{"", Other, false},
		{"bank letter", Other, false},
		{"other", Other, false}, // the sentinel itself is not a valid label
	}
	for _, tt := range tests {
		got, ok := Canonicalize(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Canonicalize(%q) = (%s, %v), want (%s, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOtherIsNeverFinal(t *testing.T) {
	if Other.IsFinal() {
		t.Fatal("the sentinel category must not be persistable")
	}
	for _, s := range AsStringSlice() {
		if s == string(Other) {
			t.Fatal("AsStringSlice must exclude the sentinel")
		}
		if !Category(s).IsFinal() {
			t.Errorf("category %q should be final", s)
		}
	}
}
