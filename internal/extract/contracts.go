package extract

import (
	"context"
	"time"
)

// TextRecognizer is the text recognition capability: document bytes -> text.
// An empty Text with a nil error is legal; the user types the text manually.
type TextRecognizer interface {
	Recognize(ctx context.Context, data []byte) (TextRecognitionResult, error)
}

type TextRecognitionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text"
	Duration time.Duration
	Warnings []string
}
