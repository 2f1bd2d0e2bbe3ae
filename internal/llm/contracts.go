package llm

import (
	"context"
	"encoding/json"
)

// ClassificationResult is the raw model output for the classification stage.
// Confidence is on a 0-100 scale; the pipeline applies the acceptance threshold,
// not the client.
type ClassificationResult struct {
	Label      string  `json:"label"`
	Confidence float32 `json:"confidence"`
}

// Classifier labels a document's text with a category candidate.
type Classifier interface {
	Classify(ctx context.Context, text string) (ClassificationResult, error)
}

// StructureRequest carries everything the structuring capability needs to
// produce a draft object for one category.
type StructureRequest struct {
	Text     string
	Category string
	Schema   map[string]any
}

// Structurer turns confirmed text into a structured-data draft. The returned
// JSON is expected, but not guaranteed, to satisfy the schema.
type Structurer interface {
	ExtractStructured(ctx context.Context, req StructureRequest) (json.RawMessage, error)
}

// Correction is a model-proposed annotation pointing at a field path in the
// structured-data draft. It is never persisted.
type Correction struct {
	Field       string `json:"field"`
	Issue       string `json:"issue"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

type AnalyzeRequest struct {
	Text    string
	Schema  map[string]any
	Current json.RawMessage
}

// AnalysisResult bundles corrections with a free-text narrative for the
// verification UI.
type AnalysisResult struct {
	Corrections []Correction `json:"corrections"`
	Narrative   string       `json:"narrative"`
}

// Analyzer reviews the current working object against the original text.
// The call is non-mutating; it only annotates fields for user attention.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (AnalysisResult, error)
}
