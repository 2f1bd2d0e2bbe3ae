package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
)

// Extraction represents a pipeline document for data transfer between layers.
type Extraction struct {
	ID        uuid.UUID                  `json:"id"`
	UserID    uuid.UUID                  `json:"user_id"`
	Filename  string                     `json:"filename"`
	FilePath  string                     `json:"file_path"`
	Status    constants.ExtractionStatus `json:"status"`
	Category  *string                    `json:"category,omitempty"`
	Text      *string                    `json:"text,omitempty"`
	Data      json.RawMessage            `json:"data,omitempty"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}
