// structurize runs the pipeline end to end for one local PDF without a human
// in the loop: upload, recognize, classify, structure, commit. Every stage
// output is auto-confirmed, so it is only suitable for trusted documents and
// smoke testing.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/internal/common"
	"github.com/Lazzzer/structurizer-sub000/internal/extract"
	"github.com/Lazzzer/structurizer-sub000/internal/llm/openai"
	"github.com/Lazzzer/structurizer-sub000/internal/pipeline"
	repo "github.com/Lazzzer/structurizer-sub000/internal/repository"
	"github.com/Lazzzer/structurizer-sub000/internal/storage"
	"github.com/Lazzzer/structurizer-sub000/internal/verification"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "structurize <user-id-uuid> <path-to-pdf>")
		os.Exit(2)
	}
	userID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid user id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}
	pdfPath := os.Args[2]

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		logger.Error("read file", "path", pdfPath, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	objectStore, err := storage.NewS3Storage(cfg.Storage, logger)
	if err != nil {
		logger.Error("object storage", "error", err)
		os.Exit(1)
	}

	llmClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	extractions := repo.NewExtractionRepository(entc, logger)
	records := repo.NewRecordRepository(entc, logger)

	recognizeStage := pipeline.NewRecognizeStage(extractions, objectStore, extract.NewPDFRecognizer(logger), logger)
	classifyStage := pipeline.NewClassifyStage(extractions, llmClient, logger)
	structureStage := pipeline.NewStructureStage(extractions, llmClient, logger)
	processor := pipeline.NewProcessor(logger, extractions, objectStore, recognizeStage, classifyStage, structureStage)
	reconciler := verification.NewReconciler(logger, extractions, records, llmClient)

	start := time.Now()

	ext, err := processor.Upload(ctx, userID, filepath.Base(pdfPath), data)
	if err != nil {
		logger.Error("upload failed", "error", err)
		os.Exit(1)
	}
	logger.Info("uploaded", "extraction_id", ext.ID)

	text, err := recognizeStage.Run(ctx, ext.ID)
	if err != nil {
		logger.Error("recognize failed", "extraction_id", ext.ID, "error", err)
		os.Exit(1)
	}
	if err := recognizeStage.ConfirmText(ctx, ext.ID, text); err != nil {
		logger.Error("confirm text failed", "extraction_id", ext.ID, "error", err)
		os.Exit(1)
	}

	sug, err := classifyStage.Run(ctx, ext.ID)
	if err != nil {
		logger.Error("classify failed", "extraction_id", ext.ID, "error", err)
		os.Exit(1)
	}
	if sug.Category == constants.Other {
		logger.Error("document did not classify into a known category",
			"extraction_id", ext.ID, "raw_label", sug.RawLabel, "confidence", sug.Confidence)
		os.Exit(1)
	}
	logger.Info("classified", "extraction_id", ext.ID, "category", string(sug.Category), "confidence", sug.Confidence)

	draft, err := structureStage.Run(ctx, ext.ID, string(sug.Category))
	if err != nil {
		logger.Error("structure failed", "extraction_id", ext.ID, "error", err)
		os.Exit(1)
	}
	if err := structureStage.Confirm(ctx, ext.ID, string(sug.Category), draft); err != nil {
		logger.Error("confirm structured failed", "extraction_id", ext.ID, "error", err)
		os.Exit(1)
	}

	session, err := reconciler.Begin(ctx, ext.ID)
	if err != nil {
		logger.Error("begin verification failed", "extraction_id", ext.ID, "error", err)
		os.Exit(1)
	}
	res, err := reconciler.Commit(ctx, session)
	if err != nil {
		logger.Error("commit failed", "extraction_id", ext.ID, "error", err)
		os.Exit(1)
	}

	logger.Info("document processed",
		"extraction_id", ext.ID,
		"category", string(res.Category),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
