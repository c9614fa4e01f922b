package report

import "errors"

var (
	// ErrQueryFailed wraps failures of a query on an open connection.
	ErrQueryFailed = errors.New("query execution failed")
	// ErrExportFailed wraps spreadsheet generation and file write failures.
	ErrExportFailed = errors.New("export write failed")
)
