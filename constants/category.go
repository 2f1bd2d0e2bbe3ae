package constants

import (
	"strings"
)

type Category string

const (
	Receipts       Category = "receipts"
	Invoices       Category = "invoices"
	CardStatements Category = "credit card statements"

	// Other is a sentinel used when classification confidence is too low or the
	// label is unrecognized. It forces manual selection and must never be
	// persisted as a final category.
	Other Category = "other"
)

// ClassificationConfidenceThreshold gates automatic label acceptance (0-100 scale).
const ClassificationConfidenceThreshold = 60

var allCategories = []Category{
	Receipts,
	Invoices,
	CardStatements,
}

// AsStringSlice returns the three concrete categories ("other" excluded).
func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// IsFinal reports whether cat is a persistable category.
func (c Category) IsFinal() bool {
	for _, cat := range allCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// Canonicalize maps a raw model label onto the closed category set.
// Anything unknown resolves to the Other sentinel with ok=false.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"receipt":               Receipts,
		"invoice":               Invoices,
		"credit card statement": CardStatements,
		"card statement":        CardStatements,
		"card statements":       CardStatements,
		"statement":             CardStatements,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}

	return Other, false
}
