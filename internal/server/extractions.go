// Package server exposes the pipeline over gRPC.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	structurizerpb "github.com/Lazzzer/structurizer-sub000/gen/proto/structurizer/v1"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/pipeline"
	"github.com/Lazzzer/structurizer-sub000/internal/repository"
	"github.com/Lazzzer/structurizer-sub000/internal/utils"
)

type ExtractionService struct {
	structurizerpb.UnimplementedExtractionServiceServer
	processor   *pipeline.Processor
	recognize   *pipeline.RecognizeStage
	classify    *pipeline.ClassifyStage
	structure   *pipeline.StructureStage
	extractions repository.ExtractionRepository
	logger      *slog.Logger
}

func NewExtractionService(
	processor *pipeline.Processor,
	recognize *pipeline.RecognizeStage,
	classify *pipeline.ClassifyStage,
	structure *pipeline.StructureStage,
	extractions repository.ExtractionRepository,
	logger *slog.Logger,
) *ExtractionService {
	return &ExtractionService{
		processor:   processor,
		recognize:   recognize,
		classify:    classify,
		structure:   structure,
		extractions: extractions,
		logger:      logger,
	}
}

func parseID(field, raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func (s *ExtractionService) UploadDocument(ctx context.Context, req *structurizerpb.UploadDocumentRequest) (*structurizerpb.UploadDocumentResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetFilename()) == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	ext, err := s.processor.Upload(ctx, userID, req.GetFilename(), req.GetContent())
	if err != nil {
		s.logger.Error("upload failed", "user_id", userID, "filename", req.GetFilename(), "error", err)
		return nil, common.ToStatusError(err)
	}
	return &structurizerpb.UploadDocumentResponse{Extraction: utils.ToPBExtraction(ext)}, nil
}

func (s *ExtractionService) ListExtractions(ctx context.Context, req *structurizerpb.ListExtractionsRequest) (*structurizerpb.ListExtractionsResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	exts, err := s.extractions.List(ctx, userID)
	if err != nil {
		s.logger.Error("list extractions failed", "user_id", userID, "error", err)
		return nil, common.ToStatusError(err)
	}

	out := make([]*structurizerpb.Extraction, 0, len(exts))
	for _, e := range exts {
		out = append(out, utils.ToPBExtraction(e))
	}
	return &structurizerpb.ListExtractionsResponse{Extractions: out}, nil
}

func (s *ExtractionService) GetExtraction(ctx context.Context, req *structurizerpb.GetExtractionRequest) (*structurizerpb.GetExtractionResponse, error) {
	id, err := parseID("id", req.GetId())
	if err != nil {
		return nil, err
	}

	ext, err := s.extractions.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &structurizerpb.GetExtractionResponse{Extraction: utils.ToPBExtraction(ext)}, nil
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, req *structurizerpb.DeleteExtractionRequest) (*structurizerpb.DeleteExtractionResponse, error) {
	id, err := parseID("id", req.GetId())
	if err != nil {
		return nil, err
	}

	if err := s.processor.Delete(ctx, id); err != nil {
		s.logger.Error("delete extraction failed", "extraction_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	return &structurizerpb.DeleteExtractionResponse{}, nil
}

func (s *ExtractionService) RecognizeText(ctx context.Context, req *structurizerpb.RecognizeTextRequest) (*structurizerpb.RecognizeTextResponse, error) {
	id, err := parseID("id", req.GetId())
	if err != nil {
		return nil, err
	}

	text, err := s.recognize.Run(ctx, id)
	if err != nil {
		s.logger.Error("recognize failed", "extraction_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	return &structurizerpb.RecognizeTextResponse{Text: text}, nil
}

func (s *ExtractionService) ConfirmText(ctx context.Context, req *structurizerpb.ConfirmTextRequest) (*structurizerpb.ConfirmTextResponse, error) {
	id, err := parseID("id", req.GetId())
	if err != nil {
		return nil, err
	}

	if err := s.recognize.ConfirmText(ctx, id, req.GetText()); err != nil {
		s.logger.Error("confirm text failed", "extraction_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	ext, err := s.extractions.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &structurizerpb.ConfirmTextResponse{Extraction: utils.ToPBExtraction(ext)}, nil
}

func (s *ExtractionService) ClassifyDocument(ctx context.Context, req *structurizerpb.ClassifyDocumentRequest) (*structurizerpb.ClassifyDocumentResponse, error) {
	id, err := parseID("id", req.GetId())
	if err != nil {
		return nil, err
	}

	sug, err := s.classify.Run(ctx, id)
	if err != nil {
		s.logger.Error("classify failed", "extraction_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	return &structurizerpb.ClassifyDocumentResponse{
		Category:   string(sug.Category),
		RawLabel:   sug.RawLabel,
		Confidence: sug.Confidence,
		Forced:     sug.Forced,
	}, nil
}

func (s *ExtractionService) StructureDocument(ctx context.Context, req *structurizerpb.StructureDocumentRequest) (*structurizerpb.StructureDocumentResponse, error) {
	id, err := parseID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetCategory()) == "" {
		return nil, status.Error(codes.InvalidArgument, "category is required")
	}

	draft, err := s.structure.Run(ctx, id, req.GetCategory())
	if err != nil {
		s.logger.Error("structure failed", "extraction_id", id, "category", req.GetCategory(), "error", err)
		return nil, common.ToStatusError(err)
	}
	return &structurizerpb.StructureDocumentResponse{DraftJson: string(draft)}, nil
}

func (s *ExtractionService) ConfirmStructured(ctx context.Context, req *structurizerpb.ConfirmStructuredRequest) (*structurizerpb.ConfirmStructuredResponse, error) {
	id, err := parseID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetCategory()) == "" {
		return nil, status.Error(codes.InvalidArgument, "category is required")
	}
	if !json.Valid([]byte(req.GetDraftJson())) {
		return nil, status.Error(codes.InvalidArgument, "draft_json must be valid JSON")
	}

	if err := s.structure.Confirm(ctx, id, req.GetCategory(), json.RawMessage(req.GetDraftJson())); err != nil {
		s.logger.Error("confirm structured failed", "extraction_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	ext, err := s.extractions.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &structurizerpb.ConfirmStructuredResponse{Extraction: utils.ToPBExtraction(ext)}, nil
}
