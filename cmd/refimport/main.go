package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chartpull/clinical-features/gen/ent"
	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/dedup"
	repo "github.com/chartpull/clinical-features/internal/repository"
)

func main() {
	var (
		inmem  = flag.Bool("inmem", false, "use in-memory SQLite database")
		file   = flag.String("file", "", "XLSX workbook of reference rows (required)")
		cohort = flag.String("cohort", "", "cohort name to import into (required)")
	)
	flag.Parse()

	if *file == "" || *cohort == "" {
		fmt.Fprintln(os.Stderr, "Error: --file and --cohort are required")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if *inmem {
		entc, err = repo.OpenSQLite(ctx, "", logger)
	} else {
		if cfg.Database.DSN == "" {
			fmt.Fprintln(os.Stderr, "Error: DB_URL env var is required (or pass --inmem)")
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

	cohortsRepo := repo.NewCohortRepository(entc, logger)
	featuresRepo := repo.NewFeatureRepository(entc, logger)
	importer := dedup.NewImporter(featuresRepo, dedup.DefaultKeyFields(), logger)

	c, err := cohortsRepo.GetOrCreateByName(ctx, *cohort)
	if err != nil {
		logger.Error("failed to get or create cohort", "error", err)
		os.Exit(1)
	}

	rows, err := dedup.ReadReferenceRows(*file, c.ID)
	if err != nil {
		logger.Error("failed to read reference workbook", "file", *file, "error", err)
		os.Exit(1)
	}
	logger.Info("importing reference rows", "cohort_id", c.ID, "rows", len(rows))

	summary, err := importer.ImportBatch(ctx, rows)
	if err != nil {
		logger.Error("reference import aborted", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Reference import complete!\n")
	fmt.Printf("- Rows read: %d\n", len(rows))
	fmt.Printf("- Added: %d\n", summary.Added)
	fmt.Printf("- Skipped (duplicates): %d\n", summary.Skipped)
	fmt.Printf("- Errored: %d\n", summary.Errored)
}
