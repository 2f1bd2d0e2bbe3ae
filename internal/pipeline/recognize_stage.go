package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/extract"
	"github.com/Lazzzer/structurizer-sub000/internal/repository"
	"github.com/Lazzzer/structurizer-sub000/internal/storage"
)

type RecognizeStage struct {
	Extractions repository.ExtractionRepository
	Storage     storage.ObjectStorage
	Recognizer  extract.TextRecognizer
	Logger      *slog.Logger
}

func NewRecognizeStage(extractions repository.ExtractionRepository, store storage.ObjectStorage, rec extract.TextRecognizer, logger *slog.Logger) *RecognizeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecognizeStage{Extractions: extractions, Storage: store, Recognizer: rec, Logger: logger}
}

// Run recognizes text for an extraction parked in TO_RECOGNIZE. The result is
// a draft only; nothing is persisted until the user confirms. A recognizer
// failure degrades to empty text so the document is never blocked on OCR.
func (p *RecognizeStage) Run(ctx context.Context, extractionID uuid.UUID) (string, error) {
	row, err := p.Extractions.GetByID(ctx, extractionID)
	if err != nil {
		return "", fmt.Errorf("get extraction: %w", err)
	}
	if row.Status != constants.StatusToRecognize {
		return "", fmt.Errorf("%w: extraction %s is %s, expected %s",
			common.ErrConflict, extractionID, row.Status, constants.StatusToRecognize)
	}

	data, err := p.Storage.Download(ctx, row.FilePath)
	if err != nil {
		p.Logger.Error("pipeline.recognize.download_failed", "extraction_id", extractionID, "error", err)
		return "", fmt.Errorf("%w: download %s: %v", common.ErrInternal, row.FilePath, err)
	}

	res, err := p.Recognizer.Recognize(ctx, data)
	if err != nil {
		// Recognition failure is non-fatal: the user types the text manually.
		p.Logger.Warn("pipeline.recognize.empty_fallback", "extraction_id", extractionID, "error", err)
		return "", nil
	}

	p.Logger.Info("pipeline.recognize.ok",
		"extraction_id", extractionID,
		"pages", res.Pages,
		"text_bytes", len(res.Text),
		"method", res.Method,
	)
	return res.Text, nil
}

// ConfirmText locks in the (possibly user-edited) recognized text and performs
// the TO_RECOGNIZE -> TO_EXTRACT transition.
func (p *RecognizeStage) ConfirmText(ctx context.Context, extractionID uuid.UUID, text string) error {
	if err := p.Extractions.ConfirmText(ctx, extractionID, text); err != nil {
		return err
	}
	p.Logger.Info("pipeline.recognize.confirmed", "extraction_id", extractionID, "text_bytes", len(text))
	return nil
}
