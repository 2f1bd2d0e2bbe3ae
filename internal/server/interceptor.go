package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/Lazzzer/structurizer-sub000/internal/common"
)

// UnaryLoggingInterceptor tags every RPC with a request id and logs its
// outcome. The id travels in the context so lower layers can pick it up.
func UnaryLoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)
		start := time.Now()

		resp, err := handler(ctx, req)

		attrs := []any{
			"req_id", rid,
			"method", info.FullMethod,
			"elapsed_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			attrs = append(attrs, "code", status.Code(err).String(), "error", err)
			logger.Warn("grpc.request.failed", attrs...)
			return resp, err
		}
		logger.Info("grpc.request.ok", attrs...)
		return resp, nil
	}
}
