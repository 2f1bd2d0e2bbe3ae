package llm

import (
	"strings"
)

const maxPromptTextBytes = 6000

// BuildClassificationSystemPrompt instructs the model to pick one label from
// the closed category set and report its own confidence on a 0-100 scale.
func BuildClassificationSystemPrompt(categories []string) string {
	parts := []string{
		"You are a document classifier for financial documents.",
		"Classify the document text into exactly one of: " + strings.Join(categories, ", ") + ".",
		`Return ONLY JSON of the form {"label": "<category>", "confidence": <0-100>}.`,
		"Confidence is an integer between 0 and 100 reflecting how certain you are.",
		"If the text does not look like any of the categories, still pick the closest label and report low confidence.",
	}
	return strings.Join(parts, " ")
}

// BuildStructuringSystemPrompt composes the system message for the structuring
// stage. The JSON Schema itself is attached as a separate system message.
func BuildStructuringSystemPrompt(category string) string {
	parts := []string{
		"You are a document parser. The document is one of the category: " + category + ".",
		"Return ONLY JSON that matches the provided JSON Schema.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Amounts are plain numbers without currency symbols.",
		"Map every visible line item into the items/transactions array; keep the array empty when none are visible.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildAnalysisSystemPrompt instructs the model to review an already-extracted
// object against the original text and point at suspect fields.
func BuildAnalysisSystemPrompt() string {
	parts := []string{
		"You are reviewing structured data extracted from a document against the original text.",
		"Do NOT rewrite the data. Point at fields that look wrong.",
		`Return ONLY JSON of the form {"corrections": [{"field": "<path>", "issue": "<short>", "description": "<detail>", "suggestion": "<proposed value>"}], "narrative": "<short overall assessment>"}.`,
		"Field paths use dot notation; array elements use bracketed indexes, e.g. items[2].amount.",
		"Report an empty corrections array when the data is consistent with the text.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the document text, truncated to keep requests bounded.
func BuildUserPrompt(text string) string {
	t := strings.TrimSpace(text)

	var b strings.Builder
	b.WriteString("Document text:\n")
	if len(t) > maxPromptTextBytes {
		b.WriteString(t[:maxPromptTextBytes])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(t)
	}
	return b.String()
}
