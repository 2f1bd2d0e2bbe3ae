package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is the typed record committed when an "invoices" extraction is verified.
type Invoice struct {
	ID             uuid.UUID     `json:"id"`
	UserID         uuid.UUID     `json:"user_id"`
	ExtractionID   uuid.UUID     `json:"extraction_id"`
	FilePath       string        `json:"file_path"`
	FromName       string        `json:"from_name"`
	FromAddress    *string       `json:"from_address,omitempty"`
	ToName         string        `json:"to_name"`
	ToAddress      *string       `json:"to_address,omitempty"`
	Number         *string       `json:"number,omitempty"`
	InvoiceDate    *time.Time    `json:"invoice_date,omitempty"`
	DueDate        *time.Time    `json:"due_date,omitempty"`
	Currency       *string       `json:"currency,omitempty"`
	TotalAmountDue float64       `json:"total_amount_due"`
	Items          []InvoiceItem `json:"items"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type InvoiceItem struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount,omitempty"`
}
