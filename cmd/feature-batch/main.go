package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chartpull/clinical-features/gen/ent"
	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/dedup"
	"github.com/chartpull/clinical-features/internal/export"
	"github.com/chartpull/clinical-features/internal/extract"
	"github.com/chartpull/clinical-features/internal/ingest"
	repo "github.com/chartpull/clinical-features/internal/repository"
	"github.com/chartpull/clinical-features/internal/runner"
	"github.com/chartpull/clinical-features/internal/services/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory of JSON chart documents to process (required)")
		cohort   = flag.String("cohort", "Local Batch", "cohort name to run against")
		interval = flag.Int("interval", 0, "checkpoint interval in completed units (0 = config default)")
		out      = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr  = flag.String("from", "", "from effective date YYYY-MM-DD")
		toStr    = flag.String("to", "", "to effective date YYYY-MM-DD")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "features.xlsx")
	}

	// Parse date filters
	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()

	// Initialize database: Postgres by default, in-memory SQLite for dry runs
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if *inmem {
		entc, err = repo.OpenSQLite(ctx, "", logger)
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL env var is required (or pass --inmem)\n")
			os.Exit(1)
		}
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	}
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// Wire repositories
	cohortsRepo := repo.NewCohortRepository(entc, logger)
	featuresRepo := repo.NewFeatureRepository(entc, logger)
	checkpointsRepo := repo.NewCheckpointRepository(entc, logger)

	// Create or fetch the cohort
	c, err := cohortsRepo.GetOrCreateByName(ctx, *cohort)
	if err != nil {
		logger.Error("failed to get or create cohort", "error", err)
		os.Exit(1)
	}
	logger.Info("using cohort", "id", c.ID, "name", c.Name)

	// Wire pipeline
	extractor := extract.NewChartExtractor(c.ID, cfg.Pipeline.ValidateCharts)
	importer := dedup.NewImporter(featuresRepo, dedup.DefaultKeyFields(), logger)
	coordinator := runner.New(checkpointsRepo, logger)
	svc := pipeline.NewService(coordinator, extractor, importer, cohortsRepo, logger)

	checkpointInterval := *interval
	if checkpointInterval <= 0 {
		checkpointInterval = cfg.Pipeline.CheckpointInterval
	}

	logger.Info("starting batch extraction", "dir", *dir, "cohort", c.ID, "checkpoint_interval", checkpointInterval)
	summary, err := svc.RunExtraction(ctx, pipeline.RunRequest{
		CohortID:           c.ID.String(),
		Source:             ingest.NewDirectorySource(*dir),
		CheckpointInterval: checkpointInterval,
	})
	if err != nil {
		logger.Error("extraction run failed", "error", err)
		os.Exit(1)
	}

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(featuresRepo, logger)

	xlsxBytes, err := exportService.ExportFeaturesXLSX(ctx, c.ID, from, to)
	if err != nil {
		logger.Error("failed to export features", "error", err)
		os.Exit(1)
	}

	err = os.WriteFile(*out, xlsxBytes, 0644)
	if err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	// Log summary
	logger.Info("batch extraction complete",
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"derived_count", summary.DerivedCount,
		"output_file", *out)

	fmt.Printf("Batch extraction complete!\n")
	fmt.Printf("- Units processed: %d\n", summary.Processed)
	fmt.Printf("- Units skipped (already complete): %d\n", summary.Skipped)
	fmt.Printf("- Units failed: %d\n", summary.Failed)
	fmt.Printf("- Derived records: %d\n", summary.DerivedCount)
	fmt.Printf("- Output: %s\n", *out)
}
