package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ragavendra192/barani-report-system/internal/report"
	"github.com/Ragavendra192/barani-report-system/internal/storage"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var (
		reportName string
		criteria   report.Criteria
		shift      string
		format     string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a report to an xlsx or csv file",
		Long:  "Runs the same query as the web report, capped at the same row limit, and writes the rows to a file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := kindFlag(reportName, false)
			if err != nil {
				return err
			}

			write := report.WriteXLSX
			switch format {
			case "xlsx":
			case "csv":
				write = report.WriteCSV
			default:
				return fmt.Errorf("unsupported format %q, use xlsx or csv", format)
			}

			criteria.Shift = report.Shift(shift)
			if out == "" {
				out = report.FileName(kind, format, time.Now())
			}

			return opts.withConn(cmd.Context(), func(conn *storage.Conn, r *report.Reporter) error {
				res, err := r.Search(cmd.Context(), conn, kind, criteria)
				if err != nil {
					return err
				}

				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("%w: %w", report.ErrExportFailed, err)
				}
				if err := write(f, res); err != nil {
					f.Close()
					os.Remove(out)
					return fmt.Errorf("%w: %w", report.ErrExportFailed, err)
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("%w: %w", report.ErrExportFailed, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", res.Len(), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&reportName, "report", report.ShiftReport.Name, "Report to export: shift, operator or product")
	cmd.Flags().StringVar(&criteria.From, "from", "", "First date (inclusive)")
	cmd.Flags().StringVar(&criteria.To, "to", "", "Last date (inclusive)")
	cmd.Flags().StringVar(&shift, "shift", "", "Shift-1, Shift-2, Shift-3 or \"All Shift\"")
	cmd.Flags().StringVar(&criteria.Operator, "operator", "", "Operator name")
	cmd.Flags().StringVar(&criteria.Product, "product", "", "Recipe name")
	cmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx or csv")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default <Prefix>_<timestamp>.<format>)")

	return cmd
}
