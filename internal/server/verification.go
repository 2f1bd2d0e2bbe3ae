package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	structurizerpb "github.com/Lazzzer/structurizer-sub000/gen/proto/structurizer/v1"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/verification"
)

// VerificationService is stateless: the client holds the working object
// between calls and sends it back with each request.
type VerificationService struct {
	structurizerpb.UnimplementedVerificationServiceServer
	reconciler *verification.Reconciler
	logger     *slog.Logger
}

func NewVerificationService(reconciler *verification.Reconciler, logger *slog.Logger) *VerificationService {
	return &VerificationService{reconciler: reconciler, logger: logger}
}

func (s *VerificationService) GetDraft(ctx context.Context, req *structurizerpb.GetDraftRequest) (*structurizerpb.GetDraftResponse, error) {
	id, err := parseID("id", req.GetId())
	if err != nil {
		return nil, err
	}

	session, err := s.reconciler.Begin(ctx, id)
	if err != nil {
		s.logger.Error("get draft failed", "extraction_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}

	working, err := json.Marshal(session.Working)
	if err != nil {
		return nil, common.ToStatusError(common.WrapError(err, "encode working object"))
	}
	return &structurizerpb.GetDraftResponse{
		Category:    string(session.Category),
		WorkingJson: string(working),
	}, nil
}

// session rebuilds a server-side session around the client's working object.
func (s *VerificationService) session(ctx context.Context, rawID, workingJSON string) (*verification.Session, error) {
	id, err := parseID("id", rawID)
	if err != nil {
		return nil, err
	}

	session, err := s.reconciler.Begin(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	if workingJSON != "" {
		working, err := verification.NewWorkingObject(json.RawMessage(workingJSON))
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "working_json must be a JSON object")
		}
		session.Working = working
	}
	return session, nil
}

func (s *VerificationService) AnalyzeDraft(ctx context.Context, req *structurizerpb.AnalyzeDraftRequest) (*structurizerpb.AnalyzeDraftResponse, error) {
	session, err := s.session(ctx, req.GetId(), req.GetWorkingJson())
	if err != nil {
		return nil, err
	}

	res, err := s.reconciler.Analyze(ctx, session)
	if err != nil {
		s.logger.Error("analyze draft failed", "extraction_id", session.ExtractionID, "error", err)
		return nil, common.ToStatusError(err)
	}

	out := make([]*structurizerpb.Correction, 0, len(res.Corrections))
	for _, c := range res.Corrections {
		out = append(out, &structurizerpb.Correction{
			Field:       c.Field,
			FieldGroup:  verification.StripIndexes(c.Field),
			Issue:       c.Issue,
			Description: c.Description,
			Suggestion:  c.Suggestion,
		})
	}
	return &structurizerpb.AnalyzeDraftResponse{
		Corrections: out,
		Narrative:   res.Narrative,
	}, nil
}

func (s *VerificationService) CommitRecord(ctx context.Context, req *structurizerpb.CommitRecordRequest) (*structurizerpb.CommitRecordResponse, error) {
	session, err := s.session(ctx, req.GetId(), req.GetWorkingJson())
	if err != nil {
		return nil, err
	}

	res, err := s.reconciler.Commit(ctx, session)
	if err != nil {
		s.logger.Error("commit record failed", "extraction_id", session.ExtractionID, "error", err)
		return nil, common.ToStatusError(err)
	}

	var recordID string
	var record any
	switch {
	case res.Receipt != nil:
		recordID, record = res.Receipt.ID.String(), res.Receipt
	case res.Invoice != nil:
		recordID, record = res.Invoice.ID.String(), res.Invoice
	case res.CardStatement != nil:
		recordID, record = res.CardStatement.ID.String(), res.CardStatement
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, common.ToStatusError(common.WrapError(err, "encode record"))
	}
	return &structurizerpb.CommitRecordResponse{
		Category:   string(res.Category),
		RecordId:   recordID,
		RecordJson: string(recordJSON),
	}, nil
}
