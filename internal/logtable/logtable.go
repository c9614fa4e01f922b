// Package logtable describes the production log table the reports read from.
package logtable

// Table is the unqualified name of the production log table.
const Table = "ActualLog"

// Column names of the log table. RECEIPENAME keeps the spelling used by the
// production schema.
const (
	ColID       = "ID"
	ColDate     = "DATE1"
	ColTime     = "TIME1"
	ColBatchNo  = "BATCHNO"
	ColRecipe   = "RECEIPENAME"
	ColOperator = "OPERATORNAME"
	ColAckKW    = "ACKKW"
	ColAckKWH   = "ACKKWH"
)

// Columns is the fixed report projection, in display and export order.
var Columns = []string{
	ColID,
	ColDate,
	ColTime,
	ColBatchNo,
	ColRecipe,
	ColOperator,
	ColAckKW,
	ColAckKWH,
}

// Record is one row of the log table. Rows are written by the plant systems
// and never modified here.
type Record struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Time     string  `json:"time"` // HH:MM:SS
	BatchNo  string  `json:"batchNo"`
	Recipe   string  `json:"recipe"`
	Operator string  `json:"operator"`
	AckKW    float64 `json:"ackKw"`
	AckKWH   float64 `json:"ackKwh"`
}
