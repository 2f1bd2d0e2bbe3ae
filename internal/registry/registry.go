// Package registry holds the static schema definitions for the three document
// categories. Schemas are pure data: the orchestrator sends them to the LLM as
// a structured-output constraint and the reconciler uses them to coerce the
// verified object before commit.
package registry

import (
	"fmt"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
)

// Schema describes one category's structured-data shape.
type Schema struct {
	Category constants.Category
	// Required lists top-level fields that must survive coercion.
	Required []string
	// JSON is a JSON-Schema (draft 2020-12 subset) as a generic map.
	JSON map[string]any
}

// Get returns the schema for a final category. An unknown category is an
// internal-consistency error: an extraction must never carry one.
func Get(category string) (Schema, error) {
	switch constants.Category(category) {
	case constants.Receipts:
		return receiptSchema(), nil
	case constants.Invoices:
		return invoiceSchema(), nil
	case constants.CardStatements:
		return cardStatementSchema(), nil
	default:
		return Schema{}, fmt.Errorf("%w: unknown category %q", common.ErrNotFound, category)
	}
}

// RequiredSubFields returns the required sub-fields of a nested object field,
// or nil when the field is not a nested object in this schema.
func (s Schema) RequiredSubFields(field string) []string {
	props, _ := s.JSON["properties"].(map[string]any)
	obj, _ := props[field].(map[string]any)
	if obj == nil || obj["type"] != "object" {
		return nil
	}
	req, _ := obj["required"].([]string)
	return req
}
