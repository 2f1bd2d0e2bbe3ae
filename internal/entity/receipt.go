package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is the typed record committed when a "receipts" extraction is verified.
type Receipt struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	ExtractionID uuid.UUID     `json:"extraction_id"`
	FilePath     string        `json:"file_path"`
	From         string        `json:"from"`
	Category     string        `json:"category"`
	TxDate       time.Time     `json:"tx_date"`
	Total        float64       `json:"total"`
	Number       *string       `json:"number,omitempty"`
	Time         *string       `json:"time,omitempty"`
	Subtotal     *float64      `json:"subtotal,omitempty"`
	Tax          *float64      `json:"tax,omitempty"`
	Tip          *float64      `json:"tip,omitempty"`
	Items        []ReceiptItem `json:"items"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type ReceiptItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"`
}
