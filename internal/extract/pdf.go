package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFRecognizer extracts embedded text from PDF documents. Scanned PDFs with
// no text layer come back empty, which the pipeline treats as "type it in".
type PDFRecognizer struct {
	logger *slog.Logger
}

func NewPDFRecognizer(logger *slog.Logger) *PDFRecognizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFRecognizer{logger: logger}
}

func (r *PDFRecognizer) Recognize(ctx context.Context, data []byte) (TextRecognitionResult, error) {
	start := time.Now()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return TextRecognitionResult{}, fmt.Errorf("open pdf: %w", err)
	}

	var textBuilder strings.Builder
	var warnings []string
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return TextRecognitionResult{}, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	res := TextRecognitionResult{
		Text:     strings.TrimSpace(textBuilder.String()),
		Pages:    numPages,
		Method:   "pdf-text",
		Duration: time.Since(start),
		Warnings: warnings,
	}

	r.logger.Info("extract.pdf.ok",
		"pages", res.Pages,
		"bytes", len(res.Text),
		"warnings", len(res.Warnings),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
