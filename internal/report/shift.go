package report

import (
	"fmt"

	"github.com/Ragavendra192/barani-report-system/internal/logtable"
)

// Shift names a work shift as submitted by the shift report form.
type Shift string

const (
	Shift1    Shift = "Shift-1"
	Shift2    Shift = "Shift-2"
	Shift3    Shift = "Shift-3"
	AllShifts Shift = "All Shift"
)

// ShiftOptions returns the shift choices in form order.
func ShiftOptions() []string {
	return []string{string(Shift1), string(Shift2), string(Shift3), string(AllShifts)}
}

// Window is a half-open clock range [Start, End). When Wraps is set the
// range crosses midnight: [Start, 24:00) ∪ [00:00, End).
type Window struct {
	Start string
	End   string
	Wraps bool
}

var shiftWindows = map[Shift]Window{
	Shift1: {Start: "06:00:00", End: "14:00:00"},
	Shift2: {Start: "14:00:00", End: "22:00:00"},
	Shift3: {Start: "22:00:00", End: "06:00:00", Wraps: true},
}

// Window returns the clock range of s. All Shift, empty and unknown names
// have no window.
func (s Shift) Window() (Window, bool) {
	w, ok := shiftWindows[s]
	return w, ok
}

// Contains reports whether an HH:MM:SS clock value falls inside w, using the
// same comparisons as the SQL fragment.
func (w Window) Contains(clock string) bool {
	if w.Wraps {
		return clock >= w.Start || clock < w.End
	}
	return clock >= w.Start && clock < w.End
}

// fragment renders w as a predicate on col. Only the fixed window literals
// are interpolated.
func (w Window) fragment(col string) string {
	if w.Wraps {
		return fmt.Sprintf("(%s >= '%s' OR %s < '%s')", col, w.Start, col, w.End)
	}
	return fmt.Sprintf("(%s >= '%s' AND %s < '%s')", col, w.Start, col, w.End)
}

// ResolveShift returns the TIME1 predicate for a shift name in dialect d, or
// false when the name selects no window.
func ResolveShift(name string, d Dialect) (string, bool) {
	w, ok := Shift(name).Window()
	if !ok {
		return "", false
	}
	return w.fragment(d.Ident(logtable.ColTime)), true
}
