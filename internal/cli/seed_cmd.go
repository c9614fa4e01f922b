package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ragavendra192/barani-report-system/internal/storage"
)

func newSeedCmd() *cobra.Command {
	var (
		path  string
		rows  int
		start string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a SQLite development database with sample log rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rows < 0 {
				return fmt.Errorf("rows must not be negative")
			}
			at, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}

			if err := storage.Seed(cmd.Context(), path, rows, at); err != nil {
				return fmt.Errorf("seed %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d rows into %s\n", rows, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "dev.db", "SQLite database file")
	cmd.Flags().IntVar(&rows, "rows", 1000, "Number of sample rows")
	cmd.Flags().StringVar(&start, "start", "2024-01-01", "Date of the first sample row")

	return cmd
}
