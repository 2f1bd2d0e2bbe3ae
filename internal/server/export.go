package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Lazzzer/structurizer-sub000/constants"
	structurizerpb "github.com/Lazzzer/structurizer-sub000/gen/proto/structurizer/v1"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/export"
	"github.com/Lazzzer/structurizer-sub000/internal/utils"
)

type ExportService struct {
	structurizerpb.UnimplementedExportServiceServer
	exporter *export.Service
	logger   *slog.Logger
}

func NewExportService(exporter *export.Service, logger *slog.Logger) *ExportService {
	return &ExportService{exporter: exporter, logger: logger}
}

func (s *ExportService) ExportRecords(ctx context.Context, req *structurizerpb.ExportRecordsRequest) (*structurizerpb.ExportRecordsResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	category, ok := constants.Canonicalize(req.GetCategory())
	if !ok || !category.IsFinal() {
		return nil, status.Errorf(codes.InvalidArgument, "category %q is not exportable", req.GetCategory())
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	xlsx, err := s.exporter.ExportXLSX(ctx, userID, category, fromDate, toDate)
	if err != nil {
		s.logger.Error("export failed", "user_id", userID, "category", string(category), "error", err)
		return nil, common.ToStatusError(err)
	}

	filename := fmt.Sprintf("%s-%s.xlsx",
		strings.ReplaceAll(string(category), " ", "-"),
		time.Now().UTC().Format("20060102"),
	)
	return &structurizerpb.ExportRecordsResponse{Xlsx: xlsx, Filename: filename}, nil
}
