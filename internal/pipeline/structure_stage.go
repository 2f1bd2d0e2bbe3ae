package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/llm"
	"github.com/Lazzzer/structurizer-sub000/internal/registry"
	"github.com/Lazzzer/structurizer-sub000/internal/repository"
)

type StructureStage struct {
	Extractions repository.ExtractionRepository
	Structurer  llm.Structurer
	Logger      *slog.Logger
}

func NewStructureStage(extractions repository.ExtractionRepository, st llm.Structurer, logger *slog.Logger) *StructureStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &StructureStage{Extractions: extractions, Structurer: st, Logger: logger}
}

// Run produces a structured-data draft for the chosen category. Each run fully
// replaces any prior draft; nothing is persisted until Confirm. Retrying after
// a capability failure leaves the document parked in TO_EXTRACT.
func (p *StructureStage) Run(ctx context.Context, extractionID uuid.UUID, category string) (json.RawMessage, error) {
	if !constants.Category(category).IsFinal() {
		return nil, fmt.Errorf("%w: category %q cannot be structured", common.ErrValidation, category)
	}

	row, err := p.Extractions.GetByID(ctx, extractionID)
	if err != nil {
		return nil, fmt.Errorf("get extraction: %w", err)
	}
	if row.Status != constants.StatusToExtract {
		return nil, fmt.Errorf("%w: extraction %s is %s, expected %s",
			common.ErrConflict, extractionID, row.Status, constants.StatusToExtract)
	}
	if row.Text == nil {
		return nil, fmt.Errorf("%w: extraction %s has no confirmed text", common.ErrInternal, extractionID)
	}

	schema, err := registry.Get(category)
	if err != nil {
		return nil, err
	}

	draft, err := p.Structurer.ExtractStructured(ctx, llm.StructureRequest{
		Text:     *row.Text,
		Category: category,
		Schema:   schema.JSON,
	})
	if err != nil {
		p.Logger.Error("pipeline.structure.failed", "extraction_id", extractionID, "category", category, "error", err)
		return nil, fmt.Errorf("%w: structure: %v", common.ErrCapability, err)
	}

	p.Logger.Info("pipeline.structure.ok",
		"extraction_id", extractionID,
		"category", category,
		"draft_bytes", len(draft),
	)
	return draft, nil
}

// Confirm validates the draft against the category schema and performs the
// TO_EXTRACT -> TO_VERIFY transition, persisting category and draft together.
func (p *StructureStage) Confirm(ctx context.Context, extractionID uuid.UUID, category string, draft json.RawMessage) error {
	if !constants.Category(category).IsFinal() {
		return fmt.Errorf("%w: category %q cannot be persisted", common.ErrValidation, category)
	}

	schema, err := registry.Get(category)
	if err != nil {
		return err
	}
	if err := llm.ValidateJSONAgainstSchema(schema.JSON, draft); err != nil {
		return fmt.Errorf("%w: draft does not match %s schema: %v", common.ErrValidation, category, err)
	}

	if err := p.Extractions.ConfirmStructured(ctx, extractionID, category, draft); err != nil {
		return err
	}
	p.Logger.Info("pipeline.structure.confirmed", "extraction_id", extractionID, "category", category)
	return nil
}
