package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/internal/entity"
	"github.com/Lazzzer/structurizer-sub000/internal/repository"
	"github.com/Lazzzer/structurizer-sub000/internal/storage"
)

// Processor bundles the upload/delete bookkeeping with the three pipeline
// stages. Stages never advance automatically: every confirm is an explicit
// user action routed through here.
type Processor struct {
	Logger      *slog.Logger
	Extractions repository.ExtractionRepository
	Storage     storage.ObjectStorage
	Recognize   *RecognizeStage
	Classify    *ClassifyStage
	Structure   *StructureStage
}

func NewProcessor(
	logger *slog.Logger,
	extractions repository.ExtractionRepository,
	store storage.ObjectStorage,
	recognize *RecognizeStage,
	classify *ClassifyStage,
	structure *StructureStage,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:      logger,
		Extractions: extractions,
		Storage:     store,
		Recognize:   recognize,
		Classify:    classify,
		Structure:   structure,
	}
}

// Upload stores the document bytes and creates the pipeline row in
// TO_RECOGNIZE. The object key embeds the owner so per-user cleanup stays a
// prefix operation.
func (p *Processor) Upload(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*entity.Extraction, error) {
	key := path.Join(userID.String(), uuid.New().String()+".pdf")
	if err := p.Storage.Upload(ctx, key, data, "application/pdf"); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	row, err := p.Extractions.Create(ctx, userID, filename, key)
	if err != nil {
		// Best effort: don't leave an orphaned object behind.
		if derr := p.Storage.Delete(ctx, key); derr != nil {
			p.Logger.Warn("pipeline.upload.orphan_cleanup_failed", "key", key, "error", derr)
		}
		return nil, fmt.Errorf("create extraction: %w", err)
	}

	p.Logger.Info("pipeline.upload.ok",
		"extraction_id", row.ID,
		"user_id", userID,
		"filename", filename,
		"bytes", len(data),
	)
	return row, nil
}

// Delete removes an extraction from any state: row plus typed record first,
// then the stored object.
func (p *Processor) Delete(ctx context.Context, extractionID uuid.UUID) error {
	row, err := p.Extractions.GetByID(ctx, extractionID)
	if err != nil {
		return err
	}
	if err := p.Extractions.Delete(ctx, extractionID); err != nil {
		return err
	}
	if err := p.Storage.Delete(ctx, row.FilePath); err != nil {
		// Row is gone; an undeletable object is an operational concern, not a
		// request failure.
		p.Logger.Warn("pipeline.delete.object_left_behind", "key", row.FilePath, "error", err)
	}

	p.Logger.Info("pipeline.delete.ok", "extraction_id", extractionID)
	return nil
}
