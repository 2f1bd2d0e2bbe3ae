package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/gen/ent"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/extraction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/invoice"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/receipt"
	"github.com/Lazzzer/structurizer-sub000/internal/entity"
	"github.com/Lazzzer/structurizer-sub000/internal/utils"
)

// RecordRepository creates the typed records produced by verification. Each
// Create runs the record insert, its line items, and the TO_VERIFY -> PROCESSED
// flip (with the final data overwrite) in one transaction; if the flip matches
// zero rows the whole unit rolls back and common.ErrConflict surfaces.
type RecordRepository interface {
	CreateReceipt(ctx context.Context, rec *entity.Receipt, finalJSON json.RawMessage) (*entity.Receipt, error)
	CreateInvoice(ctx context.Context, inv *entity.Invoice, finalJSON json.RawMessage) (*entity.Invoice, error)
	CreateCardStatement(ctx context.Context, st *entity.CardStatement, finalJSON json.RawMessage) (*entity.CardStatement, error)

	ListReceipts(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error)
	ListInvoices(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error)
	ListCardStatements(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.CardStatement, error)
}

type recordRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRecordRepository(client *ent.Client, logger *slog.Logger) RecordRepository {
	return &recordRepository{
		client: client,
		logger: logger,
	}
}

func (r *recordRepository) CreateReceipt(ctx context.Context, rec *entity.Receipt, finalJSON json.RawMessage) (*entity.Receipt, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	row, err := tx.Receipt.Create().
		SetUserID(rec.UserID).
		SetExtractionID(rec.ExtractionID).
		SetFilePath(rec.FilePath).
		SetFrom(rec.From).
		SetCategory(rec.Category).
		SetTxDate(rec.TxDate).
		SetTotal(rec.Total).
		SetNillableNumber(rec.Number).
		SetNillableTime(rec.Time).
		SetNillableSubtotal(rec.Subtotal).
		SetNillableTax(rec.Tax).
		SetNillableTip(rec.Tip).
		Save(ctx)
	if err != nil {
		r.logger.Error("receipt insert failed", "extraction_id", rec.ExtractionID, "error", err)
		return nil, rollback(tx, err)
	}

	if len(rec.Items) > 0 {
		bulk := make([]*ent.ReceiptItemCreate, len(rec.Items))
		for i, it := range rec.Items {
			bulk[i] = tx.ReceiptItem.Create().
				SetReceiptID(row.ID).
				SetDescription(it.Description).
				SetQuantity(it.Quantity).
				SetAmount(it.Amount)
		}
		if _, err := tx.ReceiptItem.CreateBulk(bulk...).Save(ctx); err != nil {
			r.logger.Error("receipt items insert failed", "receipt_id", row.ID, "error", err)
			return nil, rollback(tx, err)
		}
	}

	if err := r.flipProcessed(ctx, tx, rec.ExtractionID, finalJSON); err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("receipt committed",
		"receipt_id", row.ID,
		"extraction_id", rec.ExtractionID,
		"items", len(rec.Items),
	)
	out := utils.ToReceipt(row)
	out.Items = rec.Items
	return out, nil
}

func (r *recordRepository) CreateInvoice(ctx context.Context, inv *entity.Invoice, finalJSON json.RawMessage) (*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	row, err := tx.Invoice.Create().
		SetUserID(inv.UserID).
		SetExtractionID(inv.ExtractionID).
		SetFilePath(inv.FilePath).
		SetFromName(inv.FromName).
		SetNillableFromAddress(inv.FromAddress).
		SetToName(inv.ToName).
		SetNillableToAddress(inv.ToAddress).
		SetNillableNumber(inv.Number).
		SetNillableInvoiceDate(inv.InvoiceDate).
		SetNillableDueDate(inv.DueDate).
		SetNillableCurrency(inv.Currency).
		SetTotalAmountDue(inv.TotalAmountDue).
		Save(ctx)
	if err != nil {
		r.logger.Error("invoice insert failed", "extraction_id", inv.ExtractionID, "error", err)
		return nil, rollback(tx, err)
	}

	if len(inv.Items) > 0 {
		bulk := make([]*ent.InvoiceItemCreate, len(inv.Items))
		for i, it := range inv.Items {
			bulk[i] = tx.InvoiceItem.Create().
				SetInvoiceID(row.ID).
				SetDescription(it.Description).
				SetNillableAmount(it.Amount)
		}
		if _, err := tx.InvoiceItem.CreateBulk(bulk...).Save(ctx); err != nil {
			r.logger.Error("invoice items insert failed", "invoice_id", row.ID, "error", err)
			return nil, rollback(tx, err)
		}
	}

	if err := r.flipProcessed(ctx, tx, inv.ExtractionID, finalJSON); err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("invoice committed",
		"invoice_id", row.ID,
		"extraction_id", inv.ExtractionID,
		"items", len(inv.Items),
	)
	out := utils.ToInvoice(row)
	out.Items = inv.Items
	return out, nil
}

func (r *recordRepository) CreateCardStatement(ctx context.Context, st *entity.CardStatement, finalJSON json.RawMessage) (*entity.CardStatement, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	row, err := tx.CardStatement.Create().
		SetUserID(st.UserID).
		SetExtractionID(st.ExtractionID).
		SetFilePath(st.FilePath).
		SetIssuerName(st.IssuerName).
		SetNillableIssuerAddress(st.IssuerAddress).
		SetRecipientName(st.RecipientName).
		SetNillableRecipientAddress(st.RecipientAddress).
		SetNillableCardHolder(st.CardHolder).
		SetNillableCardNumber(st.CardNumber).
		SetNillableCardType(st.CardType).
		SetNillableStatementDate(st.StatementDate).
		SetTotalAmountDue(st.TotalAmountDue).
		Save(ctx)
	if err != nil {
		r.logger.Error("card statement insert failed", "extraction_id", st.ExtractionID, "error", err)
		return nil, rollback(tx, err)
	}

	if len(st.Transactions) > 0 {
		bulk := make([]*ent.CardTransactionCreate, len(st.Transactions))
		for i, t := range st.Transactions {
			bulk[i] = tx.CardTransaction.Create().
				SetStatementID(row.ID).
				SetDescription(t.Description).
				SetCategory(t.Category).
				SetAmount(t.Amount)
		}
		if _, err := tx.CardTransaction.CreateBulk(bulk...).Save(ctx); err != nil {
			r.logger.Error("card transactions insert failed", "statement_id", row.ID, "error", err)
			return nil, rollback(tx, err)
		}
	}

	if err := r.flipProcessed(ctx, tx, st.ExtractionID, finalJSON); err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("card statement committed",
		"statement_id", row.ID,
		"extraction_id", st.ExtractionID,
		"transactions", len(st.Transactions),
	)
	out := utils.ToCardStatement(row)
	out.Transactions = st.Transactions
	return out, nil
}

// flipProcessed performs the TO_VERIFY -> PROCESSED compare-and-swap inside the
// commit transaction and overwrites the stored draft with the final object.
func (r *recordRepository) flipProcessed(ctx context.Context, tx *ent.Tx, extractionID uuid.UUID, finalJSON json.RawMessage) error {
	n, err := tx.Extraction.
		Update().
		Where(
			extraction.ID(extractionID),
			extraction.StatusEQ(string(constants.StatusToVerify)),
		).
		SetStatus(string(constants.StatusProcessed)).
		SetData(finalJSON).
		Save(ctx)
	if err != nil {
		r.logger.Error("processed flip failed", "extraction_id", extractionID, "error", err)
		return err
	}
	if n == 0 {
		return statusConflict(ctx, r.client, extractionID, constants.StatusToVerify)
	}
	return nil
}

func (r *recordRepository) ListReceipts(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	q := r.client.Receipt.Query().Where(receipt.UserID(userID))
	if fromDate != nil {
		q = q.Where(receipt.TxDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(receipt.TxDateLTE(*toDate))
	}
	rows, err := q.WithItems().Order(receipt.ByTxDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Receipt, len(rows))
	for i, row := range rows {
		result[i] = utils.ToReceipt(row)
	}
	return result, nil
}

func (r *recordRepository) ListInvoices(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().Where(invoice.UserID(userID))
	if fromDate != nil {
		q = q.Where(invoice.InvoiceDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(invoice.InvoiceDateLTE(*toDate))
	}
	rows, err := q.WithItems().Order(invoice.ByInvoiceDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

func (r *recordRepository) ListCardStatements(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.CardStatement, error) {
	q := r.client.CardStatement.Query().Where(cardstatement.UserID(userID))
	if fromDate != nil {
		q = q.Where(cardstatement.StatementDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(cardstatement.StatementDateLTE(*toDate))
	}
	rows, err := q.WithTransactions().Order(cardstatement.ByStatementDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list card statements", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.CardStatement, len(rows))
	for i, row := range rows {
		result[i] = utils.ToCardStatement(row)
	}
	return result, nil
}
