package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/entity"
	"github.com/Lazzzer/structurizer-sub000/internal/llm"
	"github.com/Lazzzer/structurizer-sub000/internal/registry"
)

var testLogger = slog.New(slog.DiscardHandler)

type fakeExtractions struct {
	rows map[uuid.UUID]*entity.Extraction
}

func (f *fakeExtractions) Create(_ context.Context, userID uuid.UUID, filename, filePath string) (*entity.Extraction, error) {
	row := &entity.Extraction{
		ID:       uuid.New(),
		UserID:   userID,
		Filename: filename,
		FilePath: filePath,
		Status:   constants.StatusToRecognize,
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeExtractions) GetByID(_ context.Context, id uuid.UUID) (*entity.Extraction, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: extraction %s", common.ErrNotFound, id)
	}
	cp := *row
	return &cp, nil
}

func (f *fakeExtractions) List(context.Context, uuid.UUID) ([]*entity.Extraction, error) {
	return nil, nil
}

func (f *fakeExtractions) ConfirmText(_ context.Context, id uuid.UUID, text string) error {
	f.rows[id].Status = constants.StatusToExtract
	f.rows[id].Text = &text
	return nil
}

func (f *fakeExtractions) ConfirmStructured(_ context.Context, id uuid.UUID, category string, data json.RawMessage) error {
	f.rows[id].Status = constants.StatusToVerify
	f.rows[id].Category = &category
	f.rows[id].Data = data
	return nil
}

func (f *fakeExtractions) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

// fakeRecords mimics the commit transaction: the insert and the
// TO_VERIFY -> PROCESSED flip succeed or fail together.
type fakeRecords struct {
	extractions *fakeExtractions
	receipts    []*entity.Receipt
	invoices    []*entity.Invoice
	statements  []*entity.CardStatement
}

func (f *fakeRecords) flip(id uuid.UUID, finalJSON json.RawMessage) error {
	row, ok := f.extractions.rows[id]
	if !ok {
		return fmt.Errorf("%w: extraction %s", common.ErrNotFound, id)
	}
	if row.Status != constants.StatusToVerify {
		return fmt.Errorf("%w: extraction is %s", common.ErrConflict, row.Status)
	}
	row.Status = constants.StatusProcessed
	row.Data = finalJSON
	return nil
}

func (f *fakeRecords) CreateReceipt(_ context.Context, rec *entity.Receipt, finalJSON json.RawMessage) (*entity.Receipt, error) {
	if err := f.flip(rec.ExtractionID, finalJSON); err != nil {
		return nil, err
	}
	rec.ID = uuid.New()
	f.receipts = append(f.receipts, rec)
	return rec, nil
}

func (f *fakeRecords) CreateInvoice(_ context.Context, inv *entity.Invoice, finalJSON json.RawMessage) (*entity.Invoice, error) {
	if err := f.flip(inv.ExtractionID, finalJSON); err != nil {
		return nil, err
	}
	inv.ID = uuid.New()
	f.invoices = append(f.invoices, inv)
	return inv, nil
}

func (f *fakeRecords) CreateCardStatement(_ context.Context, st *entity.CardStatement, finalJSON json.RawMessage) (*entity.CardStatement, error) {
	if err := f.flip(st.ExtractionID, finalJSON); err != nil {
		return nil, err
	}
	st.ID = uuid.New()
	f.statements = append(f.statements, st)
	return st, nil
}

func (f *fakeRecords) ListReceipts(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return f.receipts, nil
}

func (f *fakeRecords) ListInvoices(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Invoice, error) {
	return f.invoices, nil
}

func (f *fakeRecords) ListCardStatements(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.CardStatement, error) {
	return f.statements, nil
}

type fakeAnalyzer struct {
	result llm.AnalysisResult
	err    error
	gotReq llm.AnalyzeRequest
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req llm.AnalyzeRequest) (llm.AnalysisResult, error) {
	f.gotReq = req
	return f.result, f.err
}

func setup(t *testing.T, category constants.Category, draft string) (*Reconciler, *fakeExtractions, *fakeRecords, uuid.UUID) {
	t.Helper()
	extractions := &fakeExtractions{rows: map[uuid.UUID]*entity.Extraction{}}
	records := &fakeRecords{extractions: extractions}

	row, err := extractions.Create(context.Background(), uuid.New(), "doc.pdf", "u/doc.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if err := extractions.ConfirmText(context.Background(), row.ID, "original document text"); err != nil {
		t.Fatal(err)
	}
	if err := extractions.ConfirmStructured(context.Background(), row.ID, string(category), json.RawMessage(draft)); err != nil {
		t.Fatal(err)
	}

	r := NewReconciler(testLogger, extractions, records, &fakeAnalyzer{})
	return r, extractions, records, row.ID
}

const receiptDraft = `{
	"from": "Corner Store",
	"category": "groceries",
	"date": "2024-03-15",
	"total": "12,50",
	"items": [{"description": "milk", "quantity": 1, "amount": "12,50"}]
}`

func TestCommitReceiptCoercesAndFlips(t *testing.T) {
	r, extractions, records, id := setup(t, constants.Receipts, receiptDraft)

	session, err := r.Begin(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	res, err := r.Commit(context.Background(), session)
	if err != nil {
		t.Fatal(err)
	}
	if res.Receipt == nil {
		t.Fatal("expected a receipt record")
	}
	if res.Receipt.Total != 12.5 {
		t.Errorf("Total = %v, want 12.5 (comma-decimal string coerced)", res.Receipt.Total)
	}
	if res.Receipt.TxDate.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("TxDate = %v", res.Receipt.TxDate)
	}
	if len(res.Receipt.Items) != 1 || res.Receipt.Items[0].Amount != 12.5 {
		t.Errorf("items = %+v", res.Receipt.Items)
	}

	row := extractions.rows[id]
	if row.Status != constants.StatusProcessed {
		t.Fatalf("status = %s, want PROCESSED", row.Status)
	}
	// the persisted object carries the coerced values, not the raw strings
	var final map[string]any
	if err := json.Unmarshal(row.Data, &final); err != nil {
		t.Fatal(err)
	}
	if final["total"] != 12.5 {
		t.Errorf("persisted total = %v (%T), want the coerced number", final["total"], final["total"])
	}
	if len(records.receipts) != 1 {
		t.Fatalf("receipts stored = %d", len(records.receipts))
	}
}

func TestCommitTwiceConflicts(t *testing.T) {
	r, _, records, id := setup(t, constants.Receipts, receiptDraft)

	session, err := r.Begin(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit(context.Background(), session); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit(context.Background(), session); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("second commit: got %v, want ErrConflict", err)
	}
	if len(records.receipts) != 1 {
		t.Fatalf("exactly one record must exist, got %d", len(records.receipts))
	}
}

func TestCommitRejectsUncoercibleValueWithoutWrites(t *testing.T) {
	r, extractions, records, id := setup(t, constants.Receipts, receiptDraft)

	session, err := r.Begin(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if err := session.Working.ApplyEdit("total", "not-a-number"); err != nil {
		t.Fatal(err)
	}

	_, err = r.Commit(context.Background(), session)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}

	if extractions.rows[id].Status != constants.StatusToVerify {
		t.Fatal("failed commit must leave the extraction in TO_VERIFY")
	}
	if len(records.receipts) != 0 {
		t.Fatal("failed commit must not persist a record")
	}
	// the session survives for another attempt
	if err := session.Working.ApplyEdit("total", 12.5); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit(context.Background(), session); err != nil {
		t.Fatalf("retry after fixing the field: %v", err)
	}
}

func TestCommitRejectsBadDate(t *testing.T) {
	r, _, _, id := setup(t, constants.Receipts, receiptDraft)

	session, err := r.Begin(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if err := session.Working.ApplyEdit("date", "15/03/2024"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit(context.Background(), session); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

func TestCommitInvoiceRequiresNestedNames(t *testing.T) {
	draft := `{
		"from": {"name": "ACME"},
		"to": {"address": "2 Side St"},
		"total_amount_due": 100,
		"items": []
	}`
	r, _, _, id := setup(t, constants.Invoices, draft)

	session, err := r.Begin(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Commit(context.Background(), session)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation for missing to.name", err)
	}

	if err := session.Working.ApplyEdit("to.name", "Customer Ltd"); err != nil {
		t.Fatal(err)
	}
	res, err := r.Commit(context.Background(), session)
	if err != nil {
		t.Fatal(err)
	}
	if res.Invoice == nil || res.Invoice.ToName != "Customer Ltd" {
		t.Fatalf("invoice = %+v", res.Invoice)
	}
	if len(res.Invoice.Items) != 0 {
		t.Fatal("an empty item list is legal and must stay empty")
	}
}

func TestNestedRequiredChecksSchemaSubFields(t *testing.T) {
	schema, err := registry.Get(string(constants.CardStatements))
	if err != nil {
		t.Fatal(err)
	}
	m := map[string]any{
		"issuer":           map[string]any{"name": "Big Bank"},
		"recipient":        map[string]any{"name": "J. Doe"},
		"credit_card":      map[string]any{"number": "1234"},
		"total_amount_due": 50.0,
	}
	err = checkNestedRequired(m, schema)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation for missing credit_card.holder", err)
	}
	if !strings.Contains(err.Error(), "credit_card.holder") {
		t.Fatalf("error must address the missing sub-field, got %v", err)
	}

	m["credit_card"].(map[string]any)["holder"] = "J. Doe"
	if err := checkNestedRequired(m, schema); err != nil {
		t.Fatalf("complete nested objects must pass, got %v", err)
	}
}

func TestCommitCardStatementMapsTransactions(t *testing.T) {
	draft := `{
		"issuer": {"name": "Big Bank", "address": "1 Bank Plaza"},
		"recipient": {"name": "J. Doe"},
		"credit_card": {"holder": "J. Doe", "number": "**** 4242"},
		"date": "2024-02-29",
		"total_amount_due": "321.09",
		"transactions": [
			{"description": "grocer", "category": "groceries", "amount": 21.09},
			{"description": "rail pass", "category": "transport", "amount": "300"}
		]
	}`
	r, _, records, id := setup(t, constants.CardStatements, draft)

	session, err := r.Begin(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	res, err := r.Commit(context.Background(), session)
	if err != nil {
		t.Fatal(err)
	}
	st := res.CardStatement
	if st == nil {
		t.Fatal("expected a card statement record")
	}
	if st.TotalAmountDue != 321.09 {
		t.Errorf("TotalAmountDue = %v", st.TotalAmountDue)
	}
	if len(st.Transactions) != 2 || st.Transactions[1].Amount != 300 {
		t.Errorf("transactions = %+v", st.Transactions)
	}
	if st.StatementDate == nil || st.StatementDate.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("StatementDate = %v", st.StatementDate)
	}
	if len(records.statements) != 1 {
		t.Fatalf("statements stored = %d", len(records.statements))
	}
}

func TestBeginRejectsWrongStatus(t *testing.T) {
	extractions := &fakeExtractions{rows: map[uuid.UUID]*entity.Extraction{}}
	records := &fakeRecords{extractions: extractions}
	row, _ := extractions.Create(context.Background(), uuid.New(), "doc.pdf", "u/doc.pdf")

	r := NewReconciler(testLogger, extractions, records, &fakeAnalyzer{})
	if _, err := r.Begin(context.Background(), row.ID); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict for TO_RECOGNIZE", err)
	}
	if _, err := r.Begin(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestAnalyzeIsNonMutating(t *testing.T) {
	analyzer := &fakeAnalyzer{result: llm.AnalysisResult{
		Corrections: []llm.Correction{{Field: "items[0].amount", Issue: "mismatch", Suggestion: "13.00"}},
		Narrative:   "one line item disagrees with the ticket",
	}}
	extractions := &fakeExtractions{rows: map[uuid.UUID]*entity.Extraction{}}
	records := &fakeRecords{extractions: extractions}
	row, _ := extractions.Create(context.Background(), uuid.New(), "doc.pdf", "u/doc.pdf")
	_ = extractions.ConfirmText(context.Background(), row.ID, "original text")
	_ = extractions.ConfirmStructured(context.Background(), row.ID, string(constants.Receipts), json.RawMessage(receiptDraft))

	r := NewReconciler(testLogger, extractions, records, analyzer)
	session, err := r.Begin(context.Background(), row.ID)
	if err != nil {
		t.Fatal(err)
	}

	before, _ := json.Marshal(session.Working)
	res, err := r.Analyze(context.Background(), session)
	if err != nil {
		t.Fatal(err)
	}
	after, _ := json.Marshal(session.Working)

	if string(before) != string(after) {
		t.Fatal("analysis must not modify the working object")
	}
	if len(res.Corrections) != 1 || res.Corrections[0].Field != "items[0].amount" {
		t.Fatalf("corrections = %+v", res.Corrections)
	}
	if analyzer.gotReq.Text != "original text" {
		t.Fatalf("analyzer must receive the original text, got %q", analyzer.gotReq.Text)
	}
	if extractions.rows[row.ID].Status != constants.StatusToVerify {
		t.Fatal("analysis must not advance the extraction")
	}
}
