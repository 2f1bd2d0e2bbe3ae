package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lazzzer/structurizer-sub000/internal/llm"
)

var testLogger = slog.New(slog.DiscardHandler)

// chatServer returns a httptest server answering chat/completions with the
// given message content.
func chatServer(t *testing.T, content string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Error(err)
		}
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
	}, testLogger)
}

func TestClassify(t *testing.T) {
	var captured map[string]any
	srv := chatServer(t, `{"label": "receipts", "confidence": 87}`, &captured)
	defer srv.Close()

	got, err := newTestClient(srv.URL).Classify(context.Background(), "WALMART ... TOTAL 12.50")
	if err != nil {
		t.Fatal(err)
	}
	if got.Label != "receipts" || got.Confidence != 87 {
		t.Fatalf("got %+v", got)
	}
	if captured["model"] != "test-model" {
		t.Errorf("model = %v", captured["model"])
	}
	if rf, _ := captured["response_format"].(map[string]any); rf["type"] != "json_object" {
		t.Errorf("response_format = %v", captured["response_format"])
	}
}

func structureSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"from":  map[string]any{"type": "string"},
			"total": map[string]any{"type": "number"},
		},
		"required": []string{"from", "total"},
	}
}

func TestExtractStructuredValidatesDraft(t *testing.T) {
	srv := chatServer(t, `{"from": "Corner Store", "total": 12.5}`, nil)
	defer srv.Close()

	draft, err := newTestClient(srv.URL).ExtractStructured(context.Background(), llm.StructureRequest{
		Text:     "some text",
		Category: "receipts",
		Schema:   structureSchema(),
	})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(draft, &m); err != nil {
		t.Fatal(err)
	}
	if m["from"] != "Corner Store" {
		t.Fatalf("draft = %v", m)
	}
}

func TestExtractStructuredSanitizesAlmostValidDraft(t *testing.T) {
	// unknown key plus a null would fail strict validation
	srv := chatServer(t, `{"from": "Corner Store", "total": 12.5, "vibe": null, "extra": "x"}`, nil)
	defer srv.Close()

	draft, err := newTestClient(srv.URL).ExtractStructured(context.Background(), llm.StructureRequest{
		Text:     "some text",
		Category: "receipts",
		Schema:   structureSchema(),
	})
	if err != nil {
		t.Fatalf("lenient client must rescue the draft: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(draft, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["extra"]; ok {
		t.Fatal("unknown key must be gone after sanitization")
	}
}

func TestExtractStructuredStrictRejects(t *testing.T) {
	srv := chatServer(t, `{"from": "Corner Store", "total": 12.5, "extra": "x"}`, nil)
	defer srv.Close()

	c := NewClient(Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "test-model",
		StrictDraft: true,
	}, testLogger)

	if _, err := c.ExtractStructured(context.Background(), llm.StructureRequest{
		Text:     "some text",
		Category: "receipts",
		Schema:   structureSchema(),
	}); err == nil {
		t.Fatal("strict client must reject a draft with unknown keys")
	}
}

func TestExtractStructuredRejectsHopelessDraft(t *testing.T) {
	srv := chatServer(t, `{"total": "a lot"}`, nil)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).ExtractStructured(context.Background(), llm.StructureRequest{
		Text:     "some text",
		Category: "receipts",
		Schema:   structureSchema(),
	}); err == nil {
		t.Fatal("sanitization must not rescue a draft missing required data")
	}
}

func TestAnalyze(t *testing.T) {
	srv := chatServer(t, `{
		"corrections": [{"field": "items[0].amount", "issue": "mismatch", "description": "ticket says 13", "suggestion": "13.00"}],
		"narrative": "one line item disagrees"
	}`, nil)
	defer srv.Close()

	got, err := newTestClient(srv.URL).Analyze(context.Background(), llm.AnalyzeRequest{
		Text:    "original",
		Schema:  structureSchema(),
		Current: json.RawMessage(`{"from": "x", "total": 1}`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Corrections) != 1 || got.Corrections[0].Field != "items[0].amount" {
		t.Fatalf("corrections = %+v", got.Corrections)
	}
	if got.Narrative == "" {
		t.Fatal("narrative lost")
	}
}

func TestClassifyUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Classify(context.Background(), "text"); err == nil {
		t.Fatal("expected an error on a 503")
	}
}
