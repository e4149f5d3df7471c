package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/restoledger/invoice-pipeline/constants"
	"github.com/restoledger/invoice-pipeline/gen/ent"
	"github.com/restoledger/invoice-pipeline/internal/category"
	"github.com/restoledger/invoice-pipeline/internal/common"
	"github.com/restoledger/invoice-pipeline/internal/core"
	"github.com/restoledger/invoice-pipeline/internal/export"
	"github.com/restoledger/invoice-pipeline/internal/extract"
	"github.com/restoledger/invoice-pipeline/internal/ingest"
	"github.com/restoledger/invoice-pipeline/internal/llm/gemini"
	"github.com/restoledger/invoice-pipeline/internal/normalize"
	"github.com/restoledger/invoice-pipeline/internal/repository"
	"github.com/restoledger/invoice-pipeline/internal/segment"
	"github.com/restoledger/invoice-pipeline/internal/vendor"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory to process invoices from (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(!*inmem); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Database: Postgres by default, throwaway SQLite with --inmem.
	entc, cleanup, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Two model clients: the main model derives vendors and templates,
	// the lighter one categorizes line items.
	mainModel, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:        cfg.LLM.APIKey,
		Model:         cfg.LLM.Model,
		MaxRetries:    cfg.LLM.MaxRetries,
		RetryBaseWait: cfg.LLM.RetryBaseWait,
		Timeout:       cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize model client", "error", err)
		os.Exit(1)
	}
	defer mainModel.Close()

	categoryModel, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:        cfg.LLM.APIKey,
		Model:         cfg.LLM.CategoryModel,
		MaxRetries:    cfg.LLM.MaxRetries,
		RetryBaseWait: cfg.LLM.RetryBaseWait,
		Timeout:       cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize category model client", "error", err)
		os.Exit(1)
	}
	defer categoryModel.Close()

	// Wire repositories and services
	vendorsRepo := repository.NewVendorRepository(entc, logger)
	templatesRepo := repository.NewTemplateRepository(entc, logger)
	invoicesRepo := repository.NewInvoiceRepository(entc, logger)
	categoryStore := repository.NewCategoryStore(entc, logger)

	resolver := vendor.NewResolver(vendorsRepo, templatesRepo, mainModel, logger)
	categorizer := category.NewService(categoryStore, categoryModel, logger)
	builder := normalize.NewBuilder(categorizer, logger)
	extractor := extract.NewPDFExtractor(logger)
	processor := core.NewProcessor(logger, extractor, resolver, vendorsRepo, builder, invoicesRepo)

	splitter := segment.NewSplitter(cfg.Paths.ProcessedDir, logger)
	stager := ingest.NewStager(cfg.Paths.StagingDir, cfg.Paths.ProcessedDir, splitter, logger)

	// Stage: copy the source tree in, then route every file to the
	// processed directory, splitting multi-invoice PDFs.
	if err := stager.Reset(); err != nil {
		logger.Error("failed to reset staging", "error", err)
		os.Exit(1)
	}
	copyStats, err := stager.CopyIn(*dir)
	if err != nil {
		logger.Error("failed to stage source files", "dir", *dir, "error", err)
		os.Exit(1)
	}
	regStats, err := stager.Regularize()
	if err != nil {
		logger.Error("failed to regularize staged files", "error", err)
		os.Exit(1)
	}
	logger.Info("staging complete",
		"copied", copyStats.Copied,
		"moved", regStats.Moved,
		"split", regStats.Split,
		"failed", copyStats.Failed+regStats.Failed,
	)

	// Process each regularized PDF, one at a time. A failed document is
	// skipped, not fatal to the batch.
	entries, err := os.ReadDir(cfg.Paths.ProcessedDir)
	if err != nil {
		logger.Error("failed to read processed directory", "error", err)
		os.Exit(1)
	}

	processed := 0
	failures := 0
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(cfg.Paths.ProcessedDir, entry.Name())
		if constants.NormalizeExt(filepath.Ext(path)) != "pdf" {
			logger.Debug("skipping non-pdf file", "file", path)
			skipped++
			continue
		}

		logger.Info("processing file", "file", path)
		if _, err := processor.ProcessFile(ctx, path); err != nil {
			logger.Error("failed to process file", "file", path, "error", err)
			failures++
			continue
		}
		processed++
	}

	// Clean staging after the run, matching the reset at the start.
	if err := stager.Reset(); err != nil {
		logger.Warn("failed to clean staging", "error", err)
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(invoicesRepo, logger)
	xlsxBytes, err := exportService.ExportXLSX(ctx)
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_processed", processed,
		"failures", failures,
		"skipped", skipped,
		"output_file", *out,
	)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}

func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		client, err := repository.OpenSQLite(ctx, logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { repository.Close(client, nil, logger) }, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		repository.Close(client, pool, logger)
		return nil, nil, err
	}
	return client, func() { repository.Close(client, pool, logger) }, nil
}
