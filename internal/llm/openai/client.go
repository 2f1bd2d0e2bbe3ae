package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/llm"
)

// chatCompletion is the subset of the chat/completions response we read.
type chatCompletion struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify implements llm.Classifier using text-only chat/completions.
func (c *Client) Classify(ctx context.Context, text string) (llm.ClassificationResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.classify.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(text),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildClassificationSystemPrompt(constants.AsStringSlice())},
			{"role": "user", "content": llm.BuildUserPrompt(text)},
		},
	}

	content, err := c.complete(ctx, rid, body)
	if err != nil {
		c.logger.Error("llm.classify.error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ClassificationResult{}, err
	}

	var out llm.ClassificationResult
	if err := json.Unmarshal(content, &out); err != nil {
		c.logger.Error("llm.classify.decode_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ClassificationResult{}, fmt.Errorf("decode classification: %w", err)
	}

	c.logger.Info("llm.classify.ok",
		"req_id", rid,
		"label", out.Label,
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ExtractStructured implements llm.Structurer. The returned draft is validated
// against the category schema; a lenient sanitize pass rescues drafts whose
// only offense is nulls, empties, or unknown keys.
func (c *Client) ExtractStructured(ctx context.Context, req llm.StructureRequest) (json.RawMessage, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.structure.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"category", req.Category,
		"text_len", len(req.Text),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildStructuringSystemPrompt(req.Category)},
			{"role": "user", "content": llm.BuildUserPrompt(req.Text) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(req.Schema)},
		},
	}

	content, err := c.complete(ctx, rid, body)
	if err != nil {
		c.logger.Error("llm.structure.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(req.Schema, content); err != nil {
		if c.cfg.StrictDraft {
			c.logger.Error("llm.structure.schema_validation_failed",
				"req_id", rid, "error", err, "content", string(content),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return content, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, dropped, sErr := llm.SanitizeDraft(content, req.Schema, c.logger)
		if sErr != nil {
			c.logger.Error("llm.structure.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return content, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(req.Schema, cleaned); vErr != nil {
			c.logger.Error("llm.structure.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return cleaned, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.logger.Warn("llm.structure.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		content = cleaned
	}

	c.logger.Info("llm.structure.ok",
		"req_id", rid,
		"category", req.Category,
		"bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

// Analyze implements llm.Analyzer. It never touches the working object; it
// only produces corrections and a narrative.
func (c *Client) Analyze(ctx context.Context, req llm.AnalyzeRequest) (llm.AnalysisResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.analyze.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(req.Text),
		"current_bytes", len(req.Current),
	)

	user := llm.BuildUserPrompt(req.Text) +
		"\n\nExtracted data to review:\n" + string(req.Current)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildAnalysisSystemPrompt()},
			{"role": "user", "content": user},
			{"role": "system", "content": "JSON Schema of the extracted data:\n" + mustJSON(req.Schema)},
		},
	}

	content, err := c.complete(ctx, rid, body)
	if err != nil {
		c.logger.Error("llm.analyze.error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.AnalysisResult{}, err
	}

	var out llm.AnalysisResult
	if err := json.Unmarshal(content, &out); err != nil {
		c.logger.Error("llm.analyze.decode_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.AnalysisResult{}, fmt.Errorf("decode analysis: %w", err)
	}

	c.logger.Info("llm.analyze.ok",
		"req_id", rid,
		"corrections", len(out.Corrections),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// complete posts a chat/completions body and returns the first choice content.
func (c *Client) complete(ctx context.Context, rid string, body map[string]any) ([]byte, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		return nil, err
	}

	var cc chatCompletion
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.no_choices", "req_id", rid, "raw", string(raw))
		return nil, fmt.Errorf("no choices in openai response")
	}
	return []byte(strings.TrimSpace(cc.Choices[0].Message.Content)), nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
