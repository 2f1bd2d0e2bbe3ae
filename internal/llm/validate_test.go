package llm

import "testing"

func amountSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"amount": map[string]any{
				"anyOf": []map[string]any{
					{"type": "number"},
					{"type": "string", "pattern": `^-?\d+([.,]\d{1,2})?$`},
				},
			},
		},
		"required": []string{"amount"},
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		valid bool
	}{
		{"number", `{"amount": 12.5}`, true},
		{"dot string", `{"amount": "12.50"}`, true},
		{"comma string", `{"amount": "12,50"}`, true},
		{"negative", `{"amount": "-3"}`, true},
		{"word", `{"amount": "twelve"}`, false},
		{"missing", `{}`, false},
		{"extra key", `{"amount": 1, "extra": true}`, false},
		{"three decimals", `{"amount": "1.234"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(amountSchema(), []byte(tt.data))
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidateJSONAgainstSchemaRejectsGarbage(t *testing.T) {
	if err := ValidateJSONAgainstSchema(amountSchema(), []byte(`{not json`)); err == nil {
		t.Fatal("expected a decode error")
	}
}
