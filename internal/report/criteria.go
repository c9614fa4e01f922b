package report

import (
	"net/url"
	"strings"
)

// Form field names shared by all report pages.
const (
	FieldFromDate = "from_date"
	FieldToDate   = "to_date"
	FieldAction   = "action"
)

// Criteria holds the optional filters of one request. An empty field means
// no constraint. Dates are passed to the database as entered.
type Criteria struct {
	From     string
	To       string
	Shift    Shift
	Operator string
	Product  string
}

// ParseCriteria reads the filter fields from a submitted form.
func ParseCriteria(form url.Values) Criteria {
	get := func(key string) string {
		return strings.TrimSpace(form.Get(key))
	}

	return Criteria{
		From:     get(FieldFromDate),
		To:       get(FieldToDate),
		Shift:    Shift(get(ShiftReport.Field)),
		Operator: get(OperatorReport.Field),
		Product:  get(ProductReport.Field),
	}
}

// Action selects between rendering and downloading a report.
type Action string

const (
	ActionSearch Action = "search"
	ActionExcel  Action = "excel"
)

// ParseAction maps the action field; anything but "excel" searches.
func ParseAction(v string) Action {
	if strings.TrimSpace(v) == string(ActionExcel) {
		return ActionExcel
	}
	return ActionSearch
}
