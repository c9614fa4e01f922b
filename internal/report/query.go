package report

import (
	"strings"

	"github.com/Ragavendra192/barani-report-system/internal/logtable"
)

// RowCap is the most rows any report returns or exports.
const RowCap = 500

// PredicateKind tags a Predicate variant.
type PredicateKind int

const (
	PredDateFrom PredicateKind = iota
	PredDateTo
	PredShiftWindow
	PredEquals
)

// Predicate is one WHERE condition of a report query.
type Predicate struct {
	Kind   PredicateKind
	Column string // PredEquals only
	Value  string // bound parameter, unused by PredShiftWindow
	Shift  Shift  // PredShiftWindow only
}

func DateFrom(v string) Predicate { return Predicate{Kind: PredDateFrom, Value: v} }
func DateTo(v string) Predicate   { return Predicate{Kind: PredDateTo, Value: v} }

func ShiftWindow(s Shift) Predicate { return Predicate{Kind: PredShiftWindow, Shift: s} }

// Equals matches column against v. column must be one of the logtable
// column constants, never user input.
func Equals(column, v string) Predicate {
	return Predicate{Kind: PredEquals, Column: column, Value: v}
}

// Plan is the ordered predicate list of a report query.
type Plan struct {
	Predicates []Predicate
}

// PlanFor builds the plan for kind from c. Predicates are added in the order
// date-from, date-to, then the kind's own filter, and only for present values.
func PlanFor(kind Kind, c Criteria) Plan {
	var p Plan

	if c.From != "" {
		p.Predicates = append(p.Predicates, DateFrom(c.From))
	}
	if c.To != "" {
		p.Predicates = append(p.Predicates, DateTo(c.To))
	}

	switch kind.Filter {
	case FilterShift:
		if _, ok := c.Shift.Window(); ok {
			p.Predicates = append(p.Predicates, ShiftWindow(c.Shift))
		}
	case FilterEquals:
		if v := kind.FilterValue(c); v != "" && kind.Column != "" {
			p.Predicates = append(p.Predicates, Equals(kind.Column, v))
		}
	}

	return p
}

// Render produces the query text and its positional arguments. Every value
// is bound; only shift window literals appear in the text.
func (p Plan) Render(d Dialect) (string, []any) {
	cols := make([]string, len(logtable.Columns))
	for i, c := range logtable.Columns {
		cols[i] = d.Ident(c)
	}

	var sb strings.Builder
	sb.WriteString(d.selectHead(RowCap))
	sb.WriteString(strings.Join(cols, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(d.Table())
	sb.WriteString(" WHERE 1 = 1")

	args := make([]any, 0, len(p.Predicates))
	bind := func(v string) string {
		args = append(args, v)
		return d.Placeholder(len(args))
	}

	for _, pr := range p.Predicates {
		switch pr.Kind {
		case PredDateFrom:
			sb.WriteString(" AND " + d.Ident(logtable.ColDate) + " >= " + bind(pr.Value))
		case PredDateTo:
			sb.WriteString(" AND " + d.Ident(logtable.ColDate) + " <= " + bind(pr.Value))
		case PredShiftWindow:
			if w, ok := pr.Shift.Window(); ok {
				sb.WriteString(" AND " + w.fragment(d.Ident(logtable.ColTime)))
			}
		case PredEquals:
			sb.WriteString(" AND " + d.Ident(pr.Column) + " = " + bind(pr.Value))
		}
	}

	sb.WriteString(" ORDER BY " + d.Ident(logtable.ColDate) + ", " + d.Ident(logtable.ColTime))
	sb.WriteString(d.limitTail(RowCap))

	return sb.String(), args
}
