// Package cli implements reportctl, the command-line companion of the report
// server.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Ragavendra192/barani-report-system/internal/config"
	"github.com/Ragavendra192/barani-report-system/internal/logger"
	"github.com/Ragavendra192/barani-report-system/internal/report"
	"github.com/Ragavendra192/barani-report-system/internal/storage"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd(os.Getenv)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type globalOptions struct {
	configPath string
	driver     string
	server     string
	database   string
	dsn        string

	cfg config.Config
}

func newRootCmd(getenv func(string) string) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "reportctl",
		Short:         "Barani production log report tool",
		Long:          "Inspect the production log table, list filter values and export reports without the web UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Precedence: flag > env > config file > default
			cfg, err := config.Load(opts.configPath, getenv)
			if err != nil {
				return err
			}

			opts.overrideDataSource(cmd.Flags(), &cfg.DB)

			logger.InitWriter(cmd.ErrOrStderr(), cfg.LogFormat, cfg.SlogLevel())
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "Database driver: sqlserver, sqlite3 or pgx")
	rootCmd.PersistentFlags().StringVar(&opts.server, "server", "", "Database host (HOST or HOST\\INSTANCE)")
	rootCmd.PersistentFlags().StringVar(&opts.database, "database", "", "Database name (file path for sqlite3)")
	rootCmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "Full DSN, overrides driver-specific settings")

	rootCmd.AddCommand(
		newColumnsCmd(opts),
		newDimensionsCmd(opts),
		newExportCmd(opts),
		newSeedCmd(),
	)

	return rootCmd
}

// overrideDataSource copies the data source flags that were set explicitly.
func (o *globalOptions) overrideDataSource(flags *pflag.FlagSet, ds *config.DataSource) {
	values := map[string]struct {
		src string
		dst *string
	}{
		"driver":   {o.driver, &ds.Driver},
		"server":   {o.server, &ds.Server},
		"database": {o.database, &ds.Database},
		"dsn":      {o.dsn, &ds.DSN},
	}

	flags.Visit(func(f *pflag.Flag) {
		if v, ok := values[f.Name]; ok {
			*v.dst = v.src
		}
	})
}

// withConn opens one connection to the configured data source and runs fn.
func (o *globalOptions) withConn(ctx context.Context, fn func(*storage.Conn, *report.Reporter) error) error {
	if err := o.cfg.Validate(); err != nil {
		return err
	}

	dialect, err := report.DialectFor(o.cfg.DB.Driver)
	if err != nil {
		return err
	}
	gw, err := storage.NewGateway(o.cfg.DB)
	if err != nil {
		return err
	}

	reporter := report.NewReporter(dialect, o.cfg.ExportDir)
	return gw.With(ctx, func(conn *storage.Conn) error {
		return fn(conn, reporter)
	})
}

func kindFlag(name string, needDimension bool) (report.Kind, error) {
	kind, ok := report.KindByName(name)
	if !ok {
		return report.Kind{}, fmt.Errorf("unknown report %q", name)
	}
	if needDimension && !kind.HasDimension() {
		return report.Kind{}, fmt.Errorf("report %q has no database-backed filter values", name)
	}
	return kind, nil
}
