package utils

import (
	"time"

	structurizerpb "github.com/Lazzzer/structurizer-sub000/gen/proto/structurizer/v1"
	"github.com/Lazzzer/structurizer-sub000/internal/entity"
)

// ToPBExtraction maps an extraction entity onto its wire representation.
func ToPBExtraction(e *entity.Extraction) *structurizerpb.Extraction {
	if e == nil {
		return nil
	}
	out := &structurizerpb.Extraction{
		Id:        e.ID.String(),
		UserId:    e.UserID.String(),
		Filename:  e.Filename,
		FilePath:  e.FilePath,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339Nano),
	}
	if e.Category != nil {
		out.Category = *e.Category
	}
	if e.Text != nil {
		out.Text = *e.Text
	}
	if len(e.Data) > 0 {
		out.DataJson = string(e.Data)
	}
	return out
}
