package entity

import (
	"time"

	"github.com/google/uuid"
)

// CardStatement is the typed record committed when a "credit card statements"
// extraction is verified.
type CardStatement struct {
	ID               uuid.UUID         `json:"id"`
	UserID           uuid.UUID         `json:"user_id"`
	ExtractionID     uuid.UUID         `json:"extraction_id"`
	FilePath         string            `json:"file_path"`
	IssuerName       string            `json:"issuer_name"`
	IssuerAddress    *string           `json:"issuer_address,omitempty"`
	RecipientName    string            `json:"recipient_name"`
	RecipientAddress *string           `json:"recipient_address,omitempty"`
	CardHolder       *string           `json:"card_holder,omitempty"`
	CardNumber       *string           `json:"card_number,omitempty"`
	CardType         *string           `json:"card_type,omitempty"`
	StatementDate    *time.Time        `json:"statement_date,omitempty"`
	TotalAmountDue   float64           `json:"total_amount_due"`
	Transactions     []CardTransaction `json:"transactions"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type CardTransaction struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}
