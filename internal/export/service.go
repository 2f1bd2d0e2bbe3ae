// Package export produces XLSX workbooks from committed records.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/repository"
)

// Service is a tiny façade over the record repository that produces XLSX
// bytes for exports.
type Service struct {
	records repository.RecordRepository
	logger  *slog.Logger
}

func NewService(records repository.RecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

// ExportXLSX returns an XLSX workbook for one record category and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all records for the user.
func (s *Service) ExportXLSX(ctx context.Context, userID uuid.UUID, category constants.Category, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)

	f := excelize.NewFile()
	var rows int
	var err error

	switch category {
	case constants.Receipts:
		rows, err = s.writeReceipts(ctx, f, userID, fromDate, toDate)
	case constants.Invoices:
		rows, err = s.writeInvoices(ctx, f, userID, fromDate, toDate)
	case constants.CardStatements:
		rows, err = s.writeCardStatements(ctx, f, userID, fromDate, toDate)
	default:
		return nil, fmt.Errorf("%w: cannot export category %q", common.ErrInvalidInput, category)
	}
	if err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"category", string(category),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// normalizeWindow clamps the window to date-only UTC bounds.
func normalizeWindow(from, to *time.Time) (*time.Time, *time.Time) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	return fromDate, toDate
}

func newSheet(f *excelize.File, name string, headers []string) error {
	if index, _ := f.GetSheetIndex(name); index == -1 {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(name)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(name, cell, h)
	}
	return nil
}

func cellWriter(f *excelize.File, sheet string, row int) func(col int, v any) {
	return func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func (s *Service) writeReceipts(ctx context.Context, f *excelize.File, userID uuid.UUID, from, to *time.Time) (int, error) {
	recs, err := s.records.ListReceipts(ctx, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("query receipts: %w", err)
	}

	const sheet = "Receipts"
	headers := []string{"Date", "Merchant", "Category", "Total", "Subtotal", "Tax", "Tip", "Items", "File Path"}
	if err := newSheet(f, sheet, headers); err != nil {
		return 0, err
	}

	row := 2
	for _, r := range recs {
		write := cellWriter(f, sheet, row)
		write(1, r.TxDate.Format("2006-01-02"))
		write(2, r.From)
		write(3, r.Category)
		write(4, r.Total)
		write(5, derefFloat(r.Subtotal))
		write(6, derefFloat(r.Tax))
		write(7, derefFloat(r.Tip))
		write(8, len(r.Items))
		write(9, r.FilePath)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "D", "G", 12)
	_ = f.SetColWidth(sheet, "I", "I", 60)
	return len(recs), nil
}

func (s *Service) writeInvoices(ctx context.Context, f *excelize.File, userID uuid.UUID, from, to *time.Time) (int, error) {
	invs, err := s.records.ListInvoices(ctx, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("query invoices: %w", err)
	}

	const sheet = "Invoices"
	headers := []string{"Invoice Date", "Due Date", "Number", "From", "To", "Currency", "Total Amount Due", "Items", "File Path"}
	if err := newSheet(f, sheet, headers); err != nil {
		return 0, err
	}

	row := 2
	for _, inv := range invs {
		write := cellWriter(f, sheet, row)
		write(1, formatDate(inv.InvoiceDate))
		write(2, formatDate(inv.DueDate))
		write(3, derefString(inv.Number))
		write(4, inv.FromName)
		write(5, inv.ToName)
		write(6, derefString(inv.Currency))
		write(7, inv.TotalAmountDue)
		write(8, len(inv.Items))
		write(9, inv.FilePath)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "D", "E", 28)
	_ = f.SetColWidth(sheet, "G", "G", 16)
	_ = f.SetColWidth(sheet, "I", "I", 60)
	return len(invs), nil
}

func (s *Service) writeCardStatements(ctx context.Context, f *excelize.File, userID uuid.UUID, from, to *time.Time) (int, error) {
	stmts, err := s.records.ListCardStatements(ctx, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("query card statements: %w", err)
	}

	const sheet = "Card Statements"
	headers := []string{"Statement Date", "Issuer", "Recipient", "Card Holder", "Card Number", "Total Amount Due", "Transactions", "File Path"}
	if err := newSheet(f, sheet, headers); err != nil {
		return 0, err
	}

	row := 2
	for _, st := range stmts {
		write := cellWriter(f, sheet, row)
		write(1, formatDate(st.StatementDate))
		write(2, st.IssuerName)
		write(3, st.RecipientName)
		write(4, derefString(st.CardHolder))
		write(5, derefString(st.CardNumber))
		write(6, st.TotalAmountDue)
		write(7, len(st.Transactions))
		write(8, st.FilePath)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "C", 28)
	_ = f.SetColWidth(sheet, "D", "E", 20)
	_ = f.SetColWidth(sheet, "F", "F", 16)
	_ = f.SetColWidth(sheet, "H", "H", 60)
	return len(stmts), nil
}

func derefFloat(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
