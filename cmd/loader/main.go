package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"wordbot/internal/config"
	"wordbot/internal/loader"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "dict.txt", "dictionary file: text with \"english russian\" lines or .xlsx")
	sheet := flag.String("sheet", "", "sheet name for .xlsx files, defaults to the active sheet")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	err = run(*file, *sheet, logger)
	if err != nil {
		logger.Error("Loader failed", zap.Error(err), zap.String("file", *file))
	}
	logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

// run loads one dictionary file into the shared words table
func run(file, sheet string, logger *zap.Logger) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result, err := loader.ReadFile(file, sheet)
	if err != nil {
		return err
	}

	logger.Info("Dictionary parsed",
		zap.String("file", file),
		zap.Int("pairs", len(result.Pairs)),
		zap.Int("skipped", result.Skipped),
	)

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	inserted, err := loader.NewStore(db, logger).Insert(result.Pairs)
	if err != nil {
		return fmt.Errorf("failed to store words: %w", err)
	}

	logger.Info("Words loaded",
		zap.Int64("inserted", inserted),
		zap.Int("already_present", len(result.Pairs)-int(inserted)),
		zap.Int("skipped", result.Skipped),
	)
	return nil
}
