package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ragavendra192/barani-report-system/internal/config"
	"github.com/Ragavendra192/barani-report-system/internal/logtable"
)

// Dialect captures the SQL differences between the supported backends.
type Dialect struct {
	Name   string
	schema string
	top    bool // SELECT TOP n instead of LIMIT n
	param  func(n int) string
	quote  bool
}

var (
	SQLServer = Dialect{
		Name:   config.DriverSQLServer,
		schema: "dbo",
		top:    true,
		param:  func(n int) string { return "@p" + strconv.Itoa(n) },
	}
	SQLite = Dialect{
		Name:  config.DriverSQLite,
		param: func(int) string { return "?" },
	}
	Postgres = Dialect{
		Name:  config.DriverPostgres,
		param: func(n int) string { return "$" + strconv.Itoa(n) },
		quote: true,
	}
)

// DialectFor returns the dialect of a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	for _, d := range []Dialect{SQLServer, SQLite, Postgres} {
		if d.Name == driver {
			return d, nil
		}
	}
	return Dialect{}, fmt.Errorf("no SQL dialect for driver %q", driver)
}

// Placeholder returns the marker for the n-th bound parameter, 1-based.
func (d Dialect) Placeholder(n int) string {
	return d.param(n)
}

// Ident renders a column or table name.
func (d Dialect) Ident(name string) string {
	if d.quote {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

// Table returns the qualified log table name.
func (d Dialect) Table() string {
	if d.schema != "" {
		return d.schema + "." + d.Ident(logtable.Table)
	}
	return d.Ident(logtable.Table)
}

// selectHead and limitTail place the row cap where the dialect expects it.
func (d Dialect) selectHead(limit int) string {
	if d.top {
		return "SELECT TOP " + strconv.Itoa(limit) + " "
	}
	return "SELECT "
}

func (d Dialect) limitTail(limit int) string {
	if d.top {
		return ""
	}
	return " LIMIT " + strconv.Itoa(limit)
}
