package report

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/Ragavendra192/barani-report-system/internal/logtable"
)

// Querier is the part of a connection the reports need.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Result is a materialized report: column names in result order and one
// column-to-value map per row.
type Result struct {
	Columns []string
	Rows    []map[string]any
}

// Len returns the number of rows.
func (r *Result) Len() int {
	return len(r.Rows)
}

// Values returns row i in column order.
func (r *Result) Values(i int) []any {
	vals := make([]any, len(r.Columns))
	for j, col := range r.Columns {
		vals[j] = r.Rows[i][col]
	}
	return vals
}

// Cell formats the value of col in row i for display.
func (r *Result) Cell(i int, col string) string {
	return CellString(r.Rows[i][col])
}

// CellString formats a normalized value.
func CellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Run executes a query and materializes at most RowCap rows.
func Run(ctx context.Context, q Querier, query string, args ...any) (*Result, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: columns: %w", ErrQueryFailed, err)
	}

	res := &Result{Columns: cols, Rows: []map[string]any{}}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for rows.Next() {
		if len(res.Rows) == RowCap {
			break
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: scan: %w", ErrQueryFailed, err)
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = normalize(col, vals[i])
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	return res, nil
}

// numericColumns come back as []byte from drivers that map DECIMAL to text.
var numericColumns = map[string]bool{
	logtable.ColAckKW:  true,
	logtable.ColAckKWH: true,
}

// normalize turns driver-specific values into strings and numbers that
// render the same on the page and in the spreadsheet.
func normalize(col string, v any) any {
	switch val := v.(type) {
	case []byte:
		if numericColumns[col] {
			if f, err := strconv.ParseFloat(string(val), 64); err == nil {
				return f
			}
		}
		return string(val)
	case time.Time:
		switch col {
		case logtable.ColDate:
			return val.Format("2006-01-02")
		case logtable.ColTime:
			return val.Format("15:04:05")
		default:
			return val.Format("2006-01-02 15:04:05")
		}
	default:
		return v
	}
}
