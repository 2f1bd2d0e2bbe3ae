package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/llm"
	"github.com/Lazzzer/structurizer-sub000/internal/repository"
)

// Suggestion is what the classification stage presents to the user. When
// Forced is true the model's answer was rejected (low confidence or unknown
// label) and Category is the "other" sentinel, requiring a manual pick.
type Suggestion struct {
	Category   constants.Category
	RawLabel   string
	Confidence float32
	Forced     bool
}

type ClassifyStage struct {
	Extractions repository.ExtractionRepository
	Classifier  llm.Classifier
	Logger      *slog.Logger
}

func NewClassifyStage(extractions repository.ExtractionRepository, cls llm.Classifier, logger *slog.Logger) *ClassifyStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassifyStage{Extractions: extractions, Classifier: cls, Logger: logger}
}

// Run classifies the confirmed text of an extraction parked in TO_EXTRACT.
// The suggestion is never persisted; the category is only assigned when the
// structuring step is confirmed.
func (p *ClassifyStage) Run(ctx context.Context, extractionID uuid.UUID) (Suggestion, error) {
	row, err := p.Extractions.GetByID(ctx, extractionID)
	if err != nil {
		return Suggestion{}, fmt.Errorf("get extraction: %w", err)
	}
	if row.Status != constants.StatusToExtract {
		return Suggestion{}, fmt.Errorf("%w: extraction %s is %s, expected %s",
			common.ErrConflict, extractionID, row.Status, constants.StatusToExtract)
	}
	if row.Text == nil {
		return Suggestion{}, fmt.Errorf("%w: extraction %s has no confirmed text", common.ErrInternal, extractionID)
	}

	res, err := p.Classifier.Classify(ctx, *row.Text)
	if err != nil {
		p.Logger.Error("pipeline.classify.failed", "extraction_id", extractionID, "error", err)
		return Suggestion{}, fmt.Errorf("%w: classify: %v", common.ErrCapability, err)
	}

	sug := Decide(res.Label, res.Confidence)
	p.Logger.Info("pipeline.classify.ok",
		"extraction_id", extractionID,
		"label", res.Label,
		"confidence", res.Confidence,
		"category", string(sug.Category),
		"forced", sug.Forced,
	)
	return sug, nil
}

// Decide applies the acceptance rule to a raw classification: the label stands
// only when confidence reaches the threshold AND the label canonicalizes onto
// the closed category set; otherwise the "other" sentinel forces manual choice.
func Decide(label string, confidence float32) Suggestion {
	canon, known := constants.Canonicalize(label)
	if confidence < constants.ClassificationConfidenceThreshold || !known {
		return Suggestion{
			Category:   constants.Other,
			RawLabel:   label,
			Confidence: confidence,
			Forced:     true,
		}
	}
	return Suggestion{
		Category:   canon,
		RawLabel:   label,
		Confidence: confidence,
	}
}
