package registry

import "github.com/Lazzzer/structurizer-sub000/constants"

// ReceiptCategories is the closed expense taxonomy for receipt records.
var ReceiptCategories = []string{
	"groceries",
	"restaurant",
	"transport",
	"clothing",
	"electronics",
	"health",
	"entertainment",
	"services",
	"other",
}

// TransactionCategories is the closed taxonomy for card statement transactions.
var TransactionCategories = []string{
	"groceries",
	"restaurant",
	"transport",
	"shopping",
	"travel",
	"health",
	"entertainment",
	"subscription",
	"cash withdrawal",
	"fees",
	"other",
}

func receiptSchema() Schema {
	props := map[string]any{
		"from":     map[string]any{"type": "string", "minLength": 1},
		"category": map[string]any{"type": "string", "enum": ReceiptCategories},
		"date":     dateProp(),
		"total":    numberProp(),
		"number":   map[string]any{"type": "string"},
		"time":     map[string]any{"type": "string", "pattern": `^\d{2}:\d{2}(:\d{2})?$`},
		"subtotal": numberProp(),
		"tax":      numberProp(),
		"tip":      numberProp(),
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"description": map[string]any{"type": "string", "minLength": 1},
					"quantity":    numberProp(),
					"amount":      numberProp(),
				},
				"required": []string{"description", "quantity", "amount"},
			},
		},
	}
	required := []string{"from", "category", "date", "total", "items"}
	return Schema{
		Category: constants.Receipts,
		Required: required,
		JSON:     objectSchema(props, required),
	}
}

func invoiceSchema() Schema {
	props := map[string]any{
		"from":             partyProp(),
		"to":               partyProp(),
		"number":           map[string]any{"type": "string"},
		"date":             dateProp(),
		"due_date":         dateProp(),
		"currency":         map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"total_amount_due": numberProp(),
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"description": map[string]any{"type": "string", "minLength": 1},
					"amount":      numberProp(),
				},
				"required": []string{"description"},
			},
		},
	}
	required := []string{"from", "to", "total_amount_due", "items"}
	return Schema{
		Category: constants.Invoices,
		Required: required,
		JSON:     objectSchema(props, required),
	}
}

func cardStatementSchema() Schema {
	props := map[string]any{
		"issuer":    partyProp(),
		"recipient": partyProp(),
		"credit_card": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"holder": map[string]any{"type": "string"},
				"number": map[string]any{"type": "string"},
				"type":   map[string]any{"type": "string"},
			},
			"required": []string{"holder"},
		},
		"date":             dateProp(),
		"total_amount_due": numberProp(),
		"transactions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"description": map[string]any{"type": "string", "minLength": 1},
					"category":    map[string]any{"type": "string", "enum": TransactionCategories},
					"amount":      numberProp(),
				},
				"required": []string{"description", "category", "amount"},
			},
		},
	}
	required := []string{"issuer", "recipient", "credit_card", "total_amount_due", "transactions"}
	return Schema{
		Category: constants.CardStatements,
		Required: required,
		JSON:     objectSchema(props, required),
	}
}

func objectSchema(props map[string]any, required []string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

// partyProp is the shared shape for from/to/issuer/recipient blocks.
func partyProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "minLength": 1},
			"address": map[string]any{"type": "string"},
		},
		"required": []string{"name"},
	}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}

// numberProp accepts a JSON number or a numeric string; LLM output is not
// trusted to pick one consistently and commit-time coercion parses both.
func numberProp() map[string]any {
	return map[string]any{
		"anyOf": []map[string]any{
			{"type": "number"},
			{"type": "string", "pattern": `^-?\d+([.,]\d{1,2})?$`},
		},
	}
}
