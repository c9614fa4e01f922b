package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reporter runs report queries in one SQL dialect.
type Reporter struct {
	dialect   Dialect
	exportDir string
	now       func() time.Time
}

// NewReporter creates a reporter writing exports under exportDir.
func NewReporter(d Dialect, exportDir string) *Reporter {
	return &Reporter{
		dialect:   d,
		exportDir: exportDir,
		now:       time.Now,
	}
}

// SetClock replaces the clock used for export file names.
func (r *Reporter) SetClock(now func() time.Time) {
	r.now = now
}

// Search runs the report query for kind and c.
func (r *Reporter) Search(ctx context.Context, q Querier, kind Kind, c Criteria) (*Result, error) {
	query, args := PlanFor(kind, c).Render(r.dialect)
	return Run(ctx, q, query, args...)
}

// Export runs the same query as Search and writes the rows to a new
// spreadsheet. The download name keeps the second-resolution timestamp;
// the file on disk gets a random suffix so concurrent exports never share
// a path. The caller removes the artifact once it has been sent.
func (r *Reporter) Export(ctx context.Context, q Querier, kind Kind, c Criteria) (*Artifact, error) {
	res, err := r.Search(ctx, q, kind, c)
	if err != nil {
		return nil, err
	}

	name := FileName(kind, "xlsx", r.now())
	if err := os.MkdirAll(r.exportDir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: create export dir: %w", ErrExportFailed, err)
	}

	path := filepath.Join(r.exportDir, strings.TrimSuffix(name, ".xlsx")+"_"+uuid.NewString()+".xlsx")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrExportFailed, name, err)
	}

	if err := WriteXLSX(file, res); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w: close %s: %w", ErrExportFailed, name, err)
	}

	return &Artifact{Name: name, Path: path}, nil
}

// Dimension loads the distinct non-empty values of kind's column in
// ascending order. On failure it returns an empty slice with the error.
func (r *Reporter) Dimension(ctx context.Context, q Querier, kind Kind) ([]string, error) {
	values := []string{}
	if !kind.HasDimension() {
		return values, nil
	}

	col := r.dialect.Ident(kind.Column)
	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL AND %s <> '' ORDER BY %s",
		col, r.dialect.Table(), col, col, col)

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return values, fmt.Errorf("%w: load %s values: %w", ErrQueryFailed, kind.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return []string{}, fmt.Errorf("%w: scan %s value: %w", ErrQueryFailed, kind.Name, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return []string{}, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	return values, nil
}

// InspectColumns returns the column names of the log table as the database
// reports them.
func (r *Reporter) InspectColumns(ctx context.Context, q Querier) ([]string, error) {
	query := r.dialect.selectHead(1) + "* FROM " + r.dialect.Table() + r.dialect.limitTail(1)

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: columns: %w", ErrQueryFailed, err)
	}
	return cols, nil
}
