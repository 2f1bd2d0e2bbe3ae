package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/entity"
	"github.com/Lazzzer/structurizer-sub000/internal/llm"
	"github.com/Lazzzer/structurizer-sub000/internal/registry"
	"github.com/Lazzzer/structurizer-sub000/internal/repository"
)

// Reconciler drives a verification session end to end: loading the draft,
// applying field edits, requesting model analysis, and committing the record.
type Reconciler struct {
	logger      *slog.Logger
	extractions repository.ExtractionRepository
	records     repository.RecordRepository
	analyzer    llm.Analyzer
}

func NewReconciler(
	logger *slog.Logger,
	extractions repository.ExtractionRepository,
	records repository.RecordRepository,
	analyzer llm.Analyzer,
) *Reconciler {
	return &Reconciler{
		logger:      logger,
		extractions: extractions,
		records:     records,
		analyzer:    analyzer,
	}
}

// Session is the state a client holds while a user audits one extraction.
type Session struct {
	ExtractionID uuid.UUID
	Category     constants.Category
	Working      WorkingObject
}

// Begin loads the persisted draft of a TO_VERIFY extraction into a fresh
// working object.
func (r *Reconciler) Begin(ctx context.Context, id uuid.UUID) (*Session, error) {
	ext, err := r.extractions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ext.Status != constants.StatusToVerify {
		return nil, fmt.Errorf("%w: extraction %s is %s, expected %s",
			common.ErrConflict, id, ext.Status, constants.StatusToVerify)
	}
	if ext.Category == nil || len(ext.Data) == 0 {
		return nil, fmt.Errorf("%w: extraction %s has no structured draft", common.ErrConflict, id)
	}

	working, err := NewWorkingObject(ext.Data)
	if err != nil {
		return nil, err
	}
	return &Session{
		ExtractionID: id,
		Category:     constants.Category(*ext.Category),
		Working:      working,
	}, nil
}

// Edit applies one field edit to the session's working object. Nothing is
// persisted; the working object lives in memory until Commit.
func (r *Reconciler) Edit(s *Session, path string, value any) error {
	if err := s.Working.ApplyEdit(path, value); err != nil {
		return err
	}
	r.logger.Debug("verification.edit", "extraction_id", s.ExtractionID, "field", path)
	return nil
}

// Analyze asks the model to review the current working object against the
// original text. The working object is never modified; callers can bucket
// the returned corrections per form field with GroupByField.
func (r *Reconciler) Analyze(ctx context.Context, s *Session) (llm.AnalysisResult, error) {
	ext, err := r.extractions.GetByID(ctx, s.ExtractionID)
	if err != nil {
		return llm.AnalysisResult{}, err
	}
	if ext.Text == nil {
		return llm.AnalysisResult{}, fmt.Errorf("%w: extraction %s has no text", common.ErrConflict, s.ExtractionID)
	}
	schema, err := registry.Get(string(s.Category))
	if err != nil {
		return llm.AnalysisResult{}, err
	}

	current, err := json.Marshal(s.Working)
	if err != nil {
		return llm.AnalysisResult{}, err
	}

	start := time.Now()
	res, err := r.analyzer.Analyze(ctx, llm.AnalyzeRequest{
		Text:    *ext.Text,
		Schema:  schema.JSON,
		Current: current,
	})
	if err != nil {
		r.logger.Error("verification.analyze.failed", "extraction_id", s.ExtractionID, "error", err)
		return llm.AnalysisResult{}, fmt.Errorf("%w: analysis: %v", common.ErrCapability, err)
	}
	r.logger.Info("verification.analyze.ok",
		"extraction_id", s.ExtractionID,
		"corrections", len(res.Corrections),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// CommitResult reports what Commit produced. Exactly one record pointer is
// set, matching the extraction's category.
type CommitResult struct {
	Category      constants.Category
	Receipt       *entity.Receipt
	Invoice       *entity.Invoice
	CardStatement *entity.CardStatement
}

// Commit coerces the working object into a typed record and persists it
// atomically together with the TO_VERIFY -> PROCESSED transition. Coercion
// failures leave the extraction untouched.
func (r *Reconciler) Commit(ctx context.Context, s *Session) (*CommitResult, error) {
	ext, err := r.extractions.GetByID(ctx, s.ExtractionID)
	if err != nil {
		return nil, err
	}
	if ext.Status != constants.StatusToVerify {
		return nil, fmt.Errorf("%w: extraction %s is %s, expected %s",
			common.ErrConflict, s.ExtractionID, ext.Status, constants.StatusToVerify)
	}

	// coercion normalizes values in place, so work on a copy
	final, err := s.Working.Clone()
	if err != nil {
		return nil, err
	}

	schema, err := registry.Get(string(s.Category))
	if err != nil {
		return nil, fmt.Errorf("%w: category %q cannot be committed", common.ErrValidation, s.Category)
	}
	if err := checkNestedRequired(final, schema); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &CommitResult{Category: s.Category}

	switch s.Category {
	case constants.Receipts:
		rec, err := coerceReceipt(final)
		if err != nil {
			return nil, err
		}
		rec.UserID = ext.UserID
		rec.ExtractionID = ext.ID
		rec.FilePath = ext.FilePath
		finalJSON, err := json.Marshal(final)
		if err != nil {
			return nil, err
		}
		if result.Receipt, err = r.records.CreateReceipt(ctx, rec, finalJSON); err != nil {
			return nil, err
		}

	case constants.Invoices:
		inv, err := coerceInvoice(final)
		if err != nil {
			return nil, err
		}
		inv.UserID = ext.UserID
		inv.ExtractionID = ext.ID
		inv.FilePath = ext.FilePath
		finalJSON, err := json.Marshal(final)
		if err != nil {
			return nil, err
		}
		if result.Invoice, err = r.records.CreateInvoice(ctx, inv, finalJSON); err != nil {
			return nil, err
		}

	case constants.CardStatements:
		st, err := coerceCardStatement(final)
		if err != nil {
			return nil, err
		}
		st.UserID = ext.UserID
		st.ExtractionID = ext.ID
		st.FilePath = ext.FilePath
		finalJSON, err := json.Marshal(final)
		if err != nil {
			return nil, err
		}
		if result.CardStatement, err = r.records.CreateCardStatement(ctx, st, finalJSON); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: category %q cannot be committed", common.ErrValidation, s.Category)
	}

	r.logger.Info("verification.commit.ok",
		"extraction_id", s.ExtractionID,
		"category", string(s.Category),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
