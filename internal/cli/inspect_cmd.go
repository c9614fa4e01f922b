package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ragavendra192/barani-report-system/internal/report"
	"github.com/Ragavendra192/barani-report-system/internal/storage"
)

func newColumnsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "Print the column names of the log table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withConn(cmd.Context(), func(conn *storage.Conn, r *report.Reporter) error {
				cols, err := r.InspectColumns(cmd.Context(), conn)
				if err != nil {
					return fmt.Errorf("inspect columns: %w", err)
				}
				for _, col := range cols {
					fmt.Fprintln(cmd.OutOrStdout(), col)
				}
				return nil
			})
		},
	}
}

func newDimensionsCmd(opts *globalOptions) *cobra.Command {
	var reportName string

	cmd := &cobra.Command{
		Use:   "dimensions",
		Short: "Print the distinct filter values of a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := kindFlag(reportName, true)
			if err != nil {
				return err
			}

			return opts.withConn(cmd.Context(), func(conn *storage.Conn, r *report.Reporter) error {
				values, err := r.Dimension(cmd.Context(), conn, kind)
				if err != nil {
					return fmt.Errorf("load %s values: %w", kind.Name, err)
				}
				for _, v := range values {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&reportName, "report", report.OperatorReport.Name, "Report whose values to list: operator or product")

	return cmd
}
