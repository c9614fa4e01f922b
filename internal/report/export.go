package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type of exported spreadsheets.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FileName returns the download name <FilePrefix>_<YYYYMMDD_HHMMSS>.<ext>.
func FileName(kind Kind, ext string, at time.Time) string {
	return kind.FilePrefix + "_" + at.Format("20060102_150405") + "." + ext
}

// Artifact is an exported spreadsheet waiting to be downloaded.
type Artifact struct {
	Name string // download name
	Path string // location on disk
}

// Remove deletes the file behind the artifact.
func (a *Artifact) Remove() error {
	return os.Remove(a.Path)
}

// WriteXLSX writes res as a single-sheet workbook: a header row with the
// column names, then one row per record in column order.
func WriteXLSX(w io.Writer, res *Result) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(res.Columns))
	for i, col := range res.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range res.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		values := res.Values(i)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteCSV writes res as CSV with a header row.
func WriteCSV(w io.Writer, res *Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(res.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(res.Columns))
	for i := range res.Rows {
		for j, col := range res.Columns {
			record[j] = res.Cell(i, col)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
