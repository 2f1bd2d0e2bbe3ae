// structurizerd is the gRPC daemon serving the document pipeline.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	structurizerpb "github.com/Lazzzer/structurizer-sub000/gen/proto/structurizer/v1"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/export"
	"github.com/Lazzzer/structurizer-sub000/internal/extract"
	"github.com/Lazzzer/structurizer-sub000/internal/llm/openai"
	"github.com/Lazzzer/structurizer-sub000/internal/pipeline"
	"github.com/Lazzzer/structurizer-sub000/internal/repository"
	"github.com/Lazzzer/structurizer-sub000/internal/server"
	"github.com/Lazzzer/structurizer-sub000/internal/storage"
	"github.com/Lazzzer/structurizer-sub000/internal/verification"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	objectStore, err := storage.NewS3Storage(cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	llmClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	extractions := repository.NewExtractionRepository(entc, logger)
	records := repository.NewRecordRepository(entc, logger)

	recognizeStage := pipeline.NewRecognizeStage(extractions, objectStore, extract.NewPDFRecognizer(logger), logger)
	classifyStage := pipeline.NewClassifyStage(extractions, llmClient, logger)
	structureStage := pipeline.NewStructureStage(extractions, llmClient, logger)
	processor := pipeline.NewProcessor(logger, extractions, objectStore, recognizeStage, classifyStage, structureStage)
	reconciler := verification.NewReconciler(logger, extractions, records, llmClient)
	exporter := export.NewService(records, logger)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.UnaryLoggingInterceptor(logger)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	structurizerpb.RegisterExtractionServiceServer(grpcServer,
		server.NewExtractionService(processor, recognizeStage, classifyStage, structureStage, extractions, logger))
	structurizerpb.RegisterVerificationServiceServer(grpcServer,
		server.NewVerificationService(reconciler, logger))
	structurizerpb.RegisterExportServiceServer(grpcServer,
		server.NewExportService(exporter, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc server listening", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
