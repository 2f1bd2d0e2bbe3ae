package utils

import (
	"time"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/gen/ent"
	"github.com/Lazzzer/structurizer-sub000/internal/entity"
)

func ToExtraction(e *ent.Extraction) *entity.Extraction {
	return &entity.Extraction{
		ID:        e.ID,
		UserID:    e.UserID,
		Filename:  e.Filename,
		FilePath:  e.FilePath,
		Status:    constants.ExtractionStatus(e.Status),
		Category:  e.Category,
		Text:      e.Text,
		Data:      e.Data,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToReceipt(e *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:           e.ID,
		UserID:       e.UserID,
		ExtractionID: e.ExtractionID,
		FilePath:     e.FilePath,
		From:         e.From,
		Category:     e.Category,
		TxDate:       e.TxDate,
		Total:        e.Total,
		Number:       e.Number,
		Time:         e.Time,
		Subtotal:     e.Subtotal,
		Tax:          e.Tax,
		Tip:          e.Tip,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		Items:        toReceiptItems(e.Edges.Items),
	}
}

func toReceiptItems(rows []*ent.ReceiptItem) []entity.ReceiptItem {
	out := make([]entity.ReceiptItem, len(rows))
	for i, it := range rows {
		out[i] = entity.ReceiptItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      it.Amount,
		}
	}
	return out
}

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:             e.ID,
		UserID:         e.UserID,
		ExtractionID:   e.ExtractionID,
		FilePath:       e.FilePath,
		FromName:       e.FromName,
		FromAddress:    e.FromAddress,
		ToName:         e.ToName,
		ToAddress:      e.ToAddress,
		Number:         e.Number,
		InvoiceDate:    e.InvoiceDate,
		DueDate:        e.DueDate,
		Currency:       e.Currency,
		TotalAmountDue: e.TotalAmountDue,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		Items:          toInvoiceItems(e.Edges.Items),
	}
}

func toInvoiceItems(rows []*ent.InvoiceItem) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, len(rows))
	for i, it := range rows {
		out[i] = entity.InvoiceItem{
			Description: it.Description,
			Amount:      it.Amount,
		}
	}
	return out
}

func ToCardStatement(e *ent.CardStatement) *entity.CardStatement {
	return &entity.CardStatement{
		ID:               e.ID,
		UserID:           e.UserID,
		ExtractionID:     e.ExtractionID,
		FilePath:         e.FilePath,
		IssuerName:       e.IssuerName,
		IssuerAddress:    e.IssuerAddress,
		RecipientName:    e.RecipientName,
		RecipientAddress: e.RecipientAddress,
		CardHolder:       e.CardHolder,
		CardNumber:       e.CardNumber,
		CardType:         e.CardType,
		StatementDate:    e.StatementDate,
		TotalAmountDue:   e.TotalAmountDue,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		Transactions:     toCardTransactions(e.Edges.Transactions),
	}
}

func toCardTransactions(rows []*ent.CardTransaction) []entity.CardTransaction {
	out := make([]entity.CardTransaction, len(rows))
	for i, t := range rows {
		out[i] = entity.CardTransaction{
			Description: t.Description,
			Category:    t.Category,
			Amount:      t.Amount,
		}
	}
	return out
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
