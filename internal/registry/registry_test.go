package registry

import (
	"errors"
	"testing"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
)

func TestGetCoversEveryFinalCategory(t *testing.T) {
	for _, cat := range constants.AsStringSlice() {
		s, err := Get(cat)
		if err != nil {
			t.Fatalf("Get(%q): %v", cat, err)
		}
		if string(s.Category) != cat {
			t.Errorf("Get(%q).Category = %q", cat, s.Category)
		}
		if len(s.Required) == 0 {
			t.Errorf("schema %q has no required fields", cat)
		}
		props, ok := s.JSON["properties"].(map[string]any)
		if !ok {
			t.Fatalf("schema %q has no properties", cat)
		}
		for _, req := range s.Required {
			if _, ok := props[req]; !ok {
				t.Errorf("schema %q requires %q but does not define it", cat, req)
			}
		}
	}
}

func TestGetRejectsUnknownAndSentinel(t *testing.T) {
	for _, cat := range []string{"other", "", "bank letter"} {
		if _, err := Get(cat); !errors.Is(err, common.ErrNotFound) {
			t.Errorf("Get(%q) = %v, want ErrNotFound", cat, err)
		}
	}
}

func TestRequiredSubFields(t *testing.T) {
	s, err := Get(string(constants.CardStatements))
	if err != nil {
		t.Fatal(err)
	}
	got := s.RequiredSubFields("credit_card")
	if len(got) != 1 || got[0] != "holder" {
		t.Errorf("RequiredSubFields(credit_card) = %v, want [holder]", got)
	}
	if s.RequiredSubFields("total_amount_due") != nil {
		t.Error("a scalar field must have no sub-fields")
	}
	if s.RequiredSubFields("nope") != nil {
		t.Error("an absent field must have no sub-fields")
	}
}
