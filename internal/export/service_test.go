package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/entity"
)

type fakeRecords struct {
	receipts   []*entity.Receipt
	invoices   []*entity.Invoice
	statements []*entity.CardStatement
	gotFrom    *time.Time
	gotTo      *time.Time
}

func (f *fakeRecords) CreateReceipt(context.Context, *entity.Receipt, json.RawMessage) (*entity.Receipt, error) {
	return nil, errors.New("not used")
}

func (f *fakeRecords) CreateInvoice(context.Context, *entity.Invoice, json.RawMessage) (*entity.Invoice, error) {
	return nil, errors.New("not used")
}

func (f *fakeRecords) CreateCardStatement(context.Context, *entity.CardStatement, json.RawMessage) (*entity.CardStatement, error) {
	return nil, errors.New("not used")
}

func (f *fakeRecords) ListReceipts(_ context.Context, _ uuid.UUID, from, to *time.Time) ([]*entity.Receipt, error) {
	f.gotFrom, f.gotTo = from, to
	return f.receipts, nil
}

func (f *fakeRecords) ListInvoices(_ context.Context, _ uuid.UUID, from, to *time.Time) ([]*entity.Invoice, error) {
	f.gotFrom, f.gotTo = from, to
	return f.invoices, nil
}

func (f *fakeRecords) ListCardStatements(_ context.Context, _ uuid.UUID, from, to *time.Time) ([]*entity.CardStatement, error) {
	f.gotFrom, f.gotTo = from, to
	return f.statements, nil
}

var testLogger = slog.New(slog.DiscardHandler)

func TestExportReceiptsXLSX(t *testing.T) {
	tax := 1.2
	records := &fakeRecords{receipts: []*entity.Receipt{
		{
			From:     "Corner Store",
			Category: "groceries",
			TxDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Total:    12.5,
			Tax:      &tax,
			Items:    []entity.ReceiptItem{{Description: "milk", Quantity: 1, Amount: 12.5}},
			FilePath: "user/doc.pdf",
		},
	}}

	svc := NewService(records, testLogger)
	out, err := svc.ExportXLSX(context.Background(), uuid.New(), constants.Receipts, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Receipts")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if rows[1][0] != "2024-03-15" || rows[1][1] != "Corner Store" {
		t.Fatalf("data row = %v", rows[1])
	}
}

func TestExportWindowNormalization(t *testing.T) {
	records := &fakeRecords{}
	svc := NewService(records, testLogger)

	from := time.Date(2024, 1, 10, 15, 30, 0, 0, time.Local)
	if _, err := svc.ExportXLSX(context.Background(), uuid.New(), constants.Invoices, &from, nil); err != nil {
		t.Fatal(err)
	}
	if records.gotFrom == nil || !records.gotFrom.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v, want date-only UTC", records.gotFrom)
	}
	// a lone from-bound implies to = today
	if records.gotTo == nil {
		t.Fatal("open to-bound must default to today")
	}
}

func TestExportRejectsSentinelCategory(t *testing.T) {
	svc := NewService(&fakeRecords{}, testLogger)
	if _, err := svc.ExportXLSX(context.Background(), uuid.New(), constants.Other, nil, nil); err == nil {
		t.Fatal("the sentinel category must not be exportable")
	}
}
