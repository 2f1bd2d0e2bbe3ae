package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/entity"
	"github.com/Lazzzer/structurizer-sub000/internal/extract"
	"github.com/Lazzzer/structurizer-sub000/internal/llm"
)

// fakeExtractions is an in-memory ExtractionRepository that mimics the
// status-gated transitions of the real one.
type fakeExtractions struct {
	rows map[uuid.UUID]*entity.Extraction
}

func newFakeExtractions() *fakeExtractions {
	return &fakeExtractions{rows: map[uuid.UUID]*entity.Extraction{}}
}

func (f *fakeExtractions) Create(_ context.Context, userID uuid.UUID, filename, filePath string) (*entity.Extraction, error) {
	row := &entity.Extraction{
		ID:        uuid.New(),
		UserID:    userID,
		Filename:  filename,
		FilePath:  filePath,
		Status:    constants.StatusToRecognize,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
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

func (f *fakeExtractions) List(_ context.Context, userID uuid.UUID) ([]*entity.Extraction, error) {
	var out []*entity.Extraction
	for _, row := range f.rows {
		if row.UserID == userID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeExtractions) ConfirmText(_ context.Context, id uuid.UUID, text string) error {
	row, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("%w: extraction %s", common.ErrNotFound, id)
	}
	if row.Status != constants.StatusToRecognize {
		return fmt.Errorf("%w: extraction is %s", common.ErrConflict, row.Status)
	}
	row.Status = constants.StatusToExtract
	row.Text = &text
	return nil
}

func (f *fakeExtractions) ConfirmStructured(_ context.Context, id uuid.UUID, category string, data json.RawMessage) error {
	row, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("%w: extraction %s", common.ErrNotFound, id)
	}
	if row.Status != constants.StatusToExtract {
		return fmt.Errorf("%w: extraction is %s", common.ErrConflict, row.Status)
	}
	if !constants.Category(category).IsFinal() {
		return fmt.Errorf("%w: category %q", common.ErrValidation, category)
	}
	row.Status = constants.StatusToVerify
	row.Category = &category
	row.Data = data
	return nil
}

func (f *fakeExtractions) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("%w: extraction %s", common.ErrNotFound, id)
	}
	delete(f.rows, id)
	return nil
}

// fakeStorage records keys and serves canned bytes.
type fakeStorage struct {
	objects  map[string][]byte
	download error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, _ string) error {
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Download(_ context.Context, key string) ([]byte, error) {
	if f.download != nil {
		return nil, f.download
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("no object %s", key)
	}
	return data, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

type fakeRecognizer struct {
	text string
	err  error
}

func (f *fakeRecognizer) Recognize(_ context.Context, _ []byte) (extract.TextRecognitionResult, error) {
	if f.err != nil {
		return extract.TextRecognitionResult{}, f.err
	}
	return extract.TextRecognitionResult{Text: f.text, Pages: 1, Method: "fake"}, nil
}

type fakeClassifier struct {
	result llm.ClassificationResult
	err    error
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (llm.ClassificationResult, error) {
	return f.result, f.err
}

type fakeStructurer struct {
	draft json.RawMessage
	err   error
}

func (f *fakeStructurer) ExtractStructured(_ context.Context, _ llm.StructureRequest) (json.RawMessage, error) {
	return f.draft, f.err
}

var testLogger = slog.New(slog.DiscardHandler)

func seedExtraction(t *testing.T, repo *fakeExtractions, store *fakeStorage) *entity.Extraction {
	t.Helper()
	userID := uuid.New()
	key := userID.String() + "/doc.pdf"
	if err := store.Upload(context.Background(), key, []byte("%PDF-1.4"), "application/pdf"); err != nil {
		t.Fatal(err)
	}
	row, err := repo.Create(context.Background(), userID, "doc.pdf", key)
	if err != nil {
		t.Fatal(err)
	}
	return row
}

func TestRecognizeRunFallsBackToEmptyText(t *testing.T) {
	repo := newFakeExtractions()
	store := newFakeStorage()
	row := seedExtraction(t, repo, store)

	stage := NewRecognizeStage(repo, store, &fakeRecognizer{err: errors.New("garbled pdf")}, testLogger)
	text, err := stage.Run(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("recognition failure must degrade to empty text, got error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}

	// the document is not blocked: confirming typed text still advances it
	if err := stage.ConfirmText(context.Background(), row.ID, "typed by hand"); err != nil {
		t.Fatalf("confirm after empty recognition: %v", err)
	}
	got, _ := repo.GetByID(context.Background(), row.ID)
	if got.Status != constants.StatusToExtract {
		t.Fatalf("status = %s, want TO_EXTRACT", got.Status)
	}
}

func TestRecognizeRunIsRepeatable(t *testing.T) {
	repo := newFakeExtractions()
	store := newFakeStorage()
	row := seedExtraction(t, repo, store)

	stage := NewRecognizeStage(repo, store, &fakeRecognizer{text: "hello"}, testLogger)
	for i := 0; i < 3; i++ {
		text, err := stage.Run(context.Background(), row.ID)
		if err != nil || text != "hello" {
			t.Fatalf("run %d: (%q, %v)", i, text, err)
		}
	}
	got, _ := repo.GetByID(context.Background(), row.ID)
	if got.Status != constants.StatusToRecognize {
		t.Fatalf("retryable stage must not advance status, got %s", got.Status)
	}
}

func TestRecognizeRunRejectsWrongStatus(t *testing.T) {
	repo := newFakeExtractions()
	store := newFakeStorage()
	row := seedExtraction(t, repo, store)
	if err := repo.ConfirmText(context.Background(), row.ID, "done"); err != nil {
		t.Fatal(err)
	}

	stage := NewRecognizeStage(repo, store, &fakeRecognizer{text: "x"}, testLogger)
	if _, err := stage.Run(context.Background(), row.ID); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestDecideForcesSentinel(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		confidence float32
		want       constants.Category
		forced     bool
	}{
		{"high confidence known label", "receipts", 91, constants.Receipts, false},
		{"synonym label", "invoice", 75, constants.Invoices, false},
		{"at threshold", "receipts", 60, constants.Receipts, false},
		{"below threshold", "receipts", 59.9, constants.Other, true},
		{"unknown label high confidence", "bank letter", 99, constants.Other, true},
		{"empty label", "", 100, constants.Other, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.label, tt.confidence)
			if got.Category != tt.want || got.Forced != tt.forced {
				t.Errorf("Decide(%q, %v) = (%s, forced=%v), want (%s, forced=%v)",
					tt.label, tt.confidence, got.Category, got.Forced, tt.want, tt.forced)
			}
			if got.RawLabel != tt.label {
				t.Errorf("RawLabel = %q, want the unmodified model label %q", got.RawLabel, tt.label)
			}
		})
	}
}

func TestClassifyRunMapsCapabilityFailure(t *testing.T) {
	repo := newFakeExtractions()
	store := newFakeStorage()
	row := seedExtraction(t, repo, store)
	if err := repo.ConfirmText(context.Background(), row.ID, "some text"); err != nil {
		t.Fatal(err)
	}

	stage := NewClassifyStage(repo, &fakeClassifier{err: errors.New("upstream 503")}, testLogger)
	if _, err := stage.Run(context.Background(), row.ID); !errors.Is(err, common.ErrCapability) {
		t.Fatalf("got %v, want ErrCapability", err)
	}

	// a capability failure leaves the document parked for retry
	got, _ := repo.GetByID(context.Background(), row.ID)
	if got.Status != constants.StatusToExtract {
		t.Fatalf("status = %s, want TO_EXTRACT", got.Status)
	}
}

func validReceiptDraft() json.RawMessage {
	return json.RawMessage(`{
		"from": "Corner Store",
		"category": "groceries",
		"date": "2024-03-15",
		"total": 12.5,
		"items": [{"description": "milk", "quantity": 1, "amount": 12.5}]
	}`)
}

func TestStructureConfirmPersistsCategoryAndDraft(t *testing.T) {
	repo := newFakeExtractions()
	store := newFakeStorage()
	row := seedExtraction(t, repo, store)
	if err := repo.ConfirmText(context.Background(), row.ID, "receipt text"); err != nil {
		t.Fatal(err)
	}

	stage := NewStructureStage(repo, &fakeStructurer{draft: validReceiptDraft()}, testLogger)
	draft, err := stage.Run(context.Background(), row.ID, string(constants.Receipts))
	if err != nil {
		t.Fatal(err)
	}
	if err := stage.Confirm(context.Background(), row.ID, string(constants.Receipts), draft); err != nil {
		t.Fatal(err)
	}

	got, _ := repo.GetByID(context.Background(), row.ID)
	if got.Status != constants.StatusToVerify {
		t.Fatalf("status = %s, want TO_VERIFY", got.Status)
	}
	if got.Category == nil || *got.Category != string(constants.Receipts) {
		t.Fatalf("category = %v, want receipts", got.Category)
	}
	if len(got.Data) == 0 {
		t.Fatal("draft must be persisted with the category")
	}
}

func TestStructureRejectsSentinelCategory(t *testing.T) {
	repo := newFakeExtractions()
	store := newFakeStorage()
	row := seedExtraction(t, repo, store)
	if err := repo.ConfirmText(context.Background(), row.ID, "text"); err != nil {
		t.Fatal(err)
	}

	stage := NewStructureStage(repo, &fakeStructurer{draft: validReceiptDraft()}, testLogger)
	if _, err := stage.Run(context.Background(), row.ID, string(constants.Other)); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("Run with sentinel: got %v, want ErrValidation", err)
	}
	if err := stage.Confirm(context.Background(), row.ID, string(constants.Other), validReceiptDraft()); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("Confirm with sentinel: got %v, want ErrValidation", err)
	}
}

func TestStructureConfirmRejectsInvalidDraft(t *testing.T) {
	repo := newFakeExtractions()
	store := newFakeStorage()
	row := seedExtraction(t, repo, store)
	if err := repo.ConfirmText(context.Background(), row.ID, "text"); err != nil {
		t.Fatal(err)
	}

	stage := NewStructureStage(repo, &fakeStructurer{}, testLogger)
	bad := json.RawMessage(`{"from": "x"}`) // missing required fields
	if err := stage.Confirm(context.Background(), row.ID, string(constants.Receipts), bad); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	got, _ := repo.GetByID(context.Background(), row.ID)
	if got.Status != constants.StatusToExtract {
		t.Fatalf("failed confirm must not advance status, got %s", got.Status)
	}
}

func TestProcessorUploadAndDelete(t *testing.T) {
	repo := newFakeExtractions()
	store := newFakeStorage()
	p := NewProcessor(testLogger, repo, store, nil, nil, nil)

	userID := uuid.New()
	row, err := p.Upload(context.Background(), userID, "march.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	if row.Status != constants.StatusToRecognize {
		t.Fatalf("fresh upload must start in TO_RECOGNIZE, got %s", row.Status)
	}
	if _, ok := store.objects[row.FilePath]; !ok {
		t.Fatal("uploaded bytes must be stored under the row's file path")
	}

	if err := p.Delete(context.Background(), row.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.objects[row.FilePath]; ok {
		t.Fatal("delete must remove the stored object")
	}
	if _, err := repo.GetByID(context.Background(), row.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
