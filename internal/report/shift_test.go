package report

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftWindows_PartitionDay(t *testing.T) {
	shifts := []Shift{Shift1, Shift2, Shift3}

	for sec := 0; sec < 24*60*60; sec++ {
		clock := fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec/60)%60, sec%60)

		matched := 0
		for _, s := range shifts {
			w, ok := s.Window()
			require.True(t, ok)
			if w.Contains(clock) {
				matched++
			}
		}
		if matched != 1 {
			t.Fatalf("clock %s matched %d shifts", clock, matched)
		}
	}
}

func TestShiftWindows_Boundaries(t *testing.T) {
	tests := []struct {
		clock string
		want  Shift
	}{
		{"00:00:00", Shift3},
		{"05:59:59", Shift3},
		{"06:00:00", Shift1},
		{"13:59:59", Shift1},
		{"14:00:00", Shift2},
		{"21:59:59", Shift2},
		{"22:00:00", Shift3},
		{"23:59:59", Shift3},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			for _, s := range []Shift{Shift1, Shift2, Shift3} {
				w, _ := s.Window()
				assert.Equal(t, s == tt.want, w.Contains(tt.clock), "%s in %s", tt.clock, s)
			}
		})
	}
}

func TestResolveShift(t *testing.T) {
	frag, ok := ResolveShift("Shift-1", SQLServer)
	require.True(t, ok)
	assert.Equal(t, "(TIME1 >= '06:00:00' AND TIME1 < '14:00:00')", frag)

	frag, ok = ResolveShift("Shift-3", SQLite)
	require.True(t, ok)
	assert.Equal(t, "(TIME1 >= '22:00:00' OR TIME1 < '06:00:00')", frag)

	frag, ok = ResolveShift("Shift-2", Postgres)
	require.True(t, ok)
	assert.Equal(t, `("TIME1" >= '14:00:00' AND "TIME1" < '22:00:00')`, frag)

	for _, name := range []string{"All Shift", "", "shift-1", "Shift-4"} {
		_, ok := ResolveShift(name, SQLServer)
		assert.False(t, ok, name)
	}
}

func TestShiftOptions(t *testing.T) {
	assert.Equal(t, []string{"Shift-1", "Shift-2", "Shift-3", "All Shift"}, ShiftOptions())
}

func TestParseCriteria(t *testing.T) {
	form := url.Values{
		"from_date": {" 2024-01-01 "},
		"to_date":   {"2024-01-31"},
		"shift":     {"Shift-2"},
		"operator":  {"Arun"},
	}

	c := ParseCriteria(form)
	assert.Equal(t, Criteria{From: "2024-01-01", To: "2024-01-31", Shift: Shift2, Operator: "Arun"}, c)
	assert.Equal(t, "Shift-2", ShiftReport.FilterValue(c))
	assert.Equal(t, "Arun", OperatorReport.FilterValue(c))
	assert.Equal(t, "", ProductReport.FilterValue(c))
}

func TestParseAction(t *testing.T) {
	assert.Equal(t, ActionExcel, ParseAction("excel"))
	assert.Equal(t, ActionSearch, ParseAction("search"))
	assert.Equal(t, ActionSearch, ParseAction(""))
	assert.Equal(t, ActionSearch, ParseAction("pdf"))
}
