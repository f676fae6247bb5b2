package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"listing-api/internal/config"
	"listing-api/internal/importer"
	"listing-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	file       string
	configPath string

	rootCmd = &cobra.Command{
		Use:   "importer",
		Short: "Manage the listing catalog",
	}

	loadCmd = &cobra.Command{
		Use:   "load",
		Short: "Import listings from a CSV file",
		Long: fmt.Sprintf("Import listings from a CSV file with the header %q. Images are separated by '|'.",
			strings.Join(importer.Columns, ",")),
		RunE: func(cmd *cobra.Command, args []string) error {
			return load(cmd.Context(), file)
		},
	}

	countCmd = &cobra.Command{
		Use:   "count",
		Short: "Print the number of listings in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			n, err := repo.CountListings(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs", "Directory containing app.env")

	loadCmd.Flags().StringVar(&file, "file", "", "Path to the CSV file to import")
	_ = loadCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(countCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("importer failed")
	}
}

func openRepository(ctx context.Context) (*repository.Repository, func(), error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return repository.NewRepository(pool), pool.Close, nil
}

func load(ctx context.Context, path string) error {
	log.Info().Str("file", path).Msg("starting import")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	items, err := importer.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("error parsing CSV: %w", err)
	}
	log.Info().Int("records", len(items)).Msg("parsed listings")

	repo, closeDB, err := openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	before, err := repo.CountListings(ctx)
	if err != nil {
		return err
	}

	n, err := repo.ImportListings(ctx, items)
	if err != nil {
		return err
	}

	// Verify data
	after, err := repo.CountListings(ctx)
	if err != nil {
		return err
	}
	if after-before != int64(len(items)) {
		return fmt.Errorf("record count mismatch: expected %d new rows, got %d", len(items), after-before)
	}

	log.Info().Int64("imported", n).Int64("total", after).Msg("import finished")
	return nil
}
