// Package report builds, runs and exports the filtered log table reports.
package report

import "github.com/Ragavendra192/barani-report-system/internal/logtable"

// FilterType selects the report-specific filter applied after the date range.
type FilterType int

const (
	// FilterShift restricts TIME1 to a shift window.
	FilterShift FilterType = iota
	// FilterEquals matches Kind.Column against the selected value.
	FilterEquals
)

// Kind describes one report type. The three report pages differ only in
// these fields.
type Kind struct {
	Name       string // short name used in URLs and the CLI
	Title      string
	Path       string // HTTP route
	FilePrefix string // export file name prefix
	Field      string // form field holding the report-specific filter
	Column     string // equality and dimension column, empty for FilterShift
	Filter     FilterType
}

var (
	ShiftReport = Kind{
		Name:       "shift",
		Title:      "Shift Report",
		Path:       "/shift-report",
		FilePrefix: "ShiftReport",
		Field:      "shift",
		Filter:     FilterShift,
	}
	OperatorReport = Kind{
		Name:       "operator",
		Title:      "Operator Report",
		Path:       "/operator-report",
		FilePrefix: "OperatorReport",
		Field:      "operator",
		Column:     logtable.ColOperator,
		Filter:     FilterEquals,
	}
	ProductReport = Kind{
		Name:       "product",
		Title:      "Product Report",
		Path:       "/product-report",
		FilePrefix: "ProductReport",
		Field:      "product",
		Column:     logtable.ColRecipe,
		Filter:     FilterEquals,
	}
)

// Kinds returns all report kinds in menu order.
func Kinds() []Kind {
	return []Kind{ShiftReport, OperatorReport, ProductReport}
}

// KindByName looks a report kind up by its short name.
func KindByName(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// HasDimension reports whether the filter choices come from the database.
func (k Kind) HasDimension() bool {
	return k.Filter == FilterEquals && k.Column != ""
}

// FilterValue returns the value of this kind's own filter field in c.
func (k Kind) FilterValue(c Criteria) string {
	switch k.Field {
	case ShiftReport.Field:
		return string(c.Shift)
	case OperatorReport.Field:
		return c.Operator
	case ProductReport.Field:
		return c.Product
	}
	return ""
}
