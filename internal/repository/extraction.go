package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/gen/ent"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardtransaction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/extraction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/invoice"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/invoiceitem"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/receipt"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/receiptitem"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/entity"
	"github.com/Lazzzer/structurizer-sub000/internal/utils"
)

// ExtractionRepository owns the pipeline rows and their status transitions.
// Every transition is a conditional update on the expected source status; a
// zero-row match surfaces as common.ErrConflict (or ErrNotFound when the row
// is gone), never as a silent overwrite.
type ExtractionRepository interface {
	Create(ctx context.Context, userID uuid.UUID, filename, filePath string) (*entity.Extraction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Extraction, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Extraction, error)
	// ConfirmText performs TO_RECOGNIZE -> TO_EXTRACT, storing the confirmed text.
	ConfirmText(ctx context.Context, id uuid.UUID, text string) error
	// ConfirmStructured performs TO_EXTRACT -> TO_VERIFY, persisting category and draft.
	ConfirmStructured(ctx context.Context, id uuid.UUID, category string, data json.RawMessage) error
	// Delete removes the extraction row and any child typed record. Legal from
	// any state. The stored object is the caller's to remove.
	Delete(ctx context.Context, id uuid.UUID) error
}

type extractionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionRepository(client *ent.Client, logger *slog.Logger) ExtractionRepository {
	return &extractionRepository{
		client: client,
		logger: logger,
	}
}

func (r *extractionRepository) Create(ctx context.Context, userID uuid.UUID, filename, filePath string) (*entity.Extraction, error) {
	row, err := r.client.Extraction.
		Create().
		SetUserID(userID).
		SetFilename(filename).
		SetFilePath(filePath).
		SetStatus(string(constants.StatusToRecognize)).
		Save(ctx)
	if err != nil {
		r.logger.Error("extraction create failed", "user_id", userID, "filename", filename, "error", err)
		return nil, err
	}
	r.logger.Info("extraction created", "extraction_id", row.ID, "user_id", userID, "filename", filename)
	return utils.ToExtraction(row), nil
}

func (r *extractionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Extraction, error) {
	row, err := r.client.Extraction.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: extraction %s", common.ErrNotFound, id)
		}
		r.logger.Error("extraction get failed", "extraction_id", id, "error", err)
		return nil, err
	}
	return utils.ToExtraction(row), nil
}

func (r *extractionRepository) List(ctx context.Context, userID uuid.UUID) ([]*entity.Extraction, error) {
	rows, err := r.client.Extraction.
		Query().
		Where(extraction.UserID(userID)).
		Order(extraction.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("extraction list failed", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Extraction, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtraction(row)
	}
	return result, nil
}

func (r *extractionRepository) ConfirmText(ctx context.Context, id uuid.UUID, text string) error {
	n, err := r.client.Extraction.
		Update().
		Where(
			extraction.ID(id),
			extraction.StatusEQ(string(constants.StatusToRecognize)),
		).
		SetText(text).
		SetStatus(string(constants.StatusToExtract)).
		Save(ctx)
	if err != nil {
		r.logger.Error("confirm text failed", "extraction_id", id, "error", err)
		return err
	}
	if n == 0 {
		return statusConflict(ctx, r.client, id, constants.StatusToRecognize)
	}
	r.logger.Info("text confirmed", "extraction_id", id, "text_bytes", len(text))
	return nil
}

func (r *extractionRepository) ConfirmStructured(ctx context.Context, id uuid.UUID, category string, data json.RawMessage) error {
	if !constants.Category(category).IsFinal() {
		return fmt.Errorf("%w: category %q is not persistable", common.ErrValidation, category)
	}
	n, err := r.client.Extraction.
		Update().
		Where(
			extraction.ID(id),
			extraction.StatusEQ(string(constants.StatusToExtract)),
		).
		SetCategory(category).
		SetData(data).
		SetStatus(string(constants.StatusToVerify)).
		Save(ctx)
	if err != nil {
		r.logger.Error("confirm structured failed", "extraction_id", id, "category", category, "error", err)
		return err
	}
	if n == 0 {
		return statusConflict(ctx, r.client, id, constants.StatusToExtract)
	}
	r.logger.Info("structured draft confirmed", "extraction_id", id, "category", category, "data_bytes", len(data))
	return nil
}

func (r *extractionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	if err := deleteChildRecords(ctx, tx, id); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Extraction.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return rollback(tx, fmt.Errorf("%w: extraction %s", common.ErrNotFound, id))
		}
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	r.logger.Info("extraction deleted", "extraction_id", id)
	return nil
}

// deleteChildRecords removes whichever typed record (and its line items) the
// extraction produced. At most one variant exists.
func deleteChildRecords(ctx context.Context, tx *ent.Tx, extractionID uuid.UUID) error {
	rec, err := tx.Receipt.Query().Where(receipt.ExtractionID(extractionID)).Only(ctx)
	if err == nil {
		if _, err := tx.ReceiptItem.Delete().Where(receiptitem.ReceiptID(rec.ID)).Exec(ctx); err != nil {
			return err
		}
		return tx.Receipt.DeleteOne(rec).Exec(ctx)
	} else if !ent.IsNotFound(err) {
		return err
	}

	inv, err := tx.Invoice.Query().Where(invoice.ExtractionID(extractionID)).Only(ctx)
	if err == nil {
		if _, err := tx.InvoiceItem.Delete().Where(invoiceitem.InvoiceID(inv.ID)).Exec(ctx); err != nil {
			return err
		}
		return tx.Invoice.DeleteOne(inv).Exec(ctx)
	} else if !ent.IsNotFound(err) {
		return err
	}

	st, err := tx.CardStatement.Query().Where(cardstatement.ExtractionID(extractionID)).Only(ctx)
	if err == nil {
		if _, err := tx.CardTransaction.Delete().Where(cardtransaction.StatementID(st.ID)).Exec(ctx); err != nil {
			return err
		}
		return tx.CardStatement.DeleteOne(st).Exec(ctx)
	} else if !ent.IsNotFound(err) {
		return err
	}

	return nil
}

// statusConflict classifies a zero-row conditional update: the row either
// no longer exists or sits in a different status than the transition expects.
func statusConflict(ctx context.Context, client *ent.Client, id uuid.UUID, expected constants.ExtractionStatus) error {
	row, err := client.Extraction.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: extraction %s", common.ErrNotFound, id)
		}
		return err
	}
	return fmt.Errorf("%w: extraction %s is %s, expected %s", common.ErrConflict, id, row.Status, expected)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}
