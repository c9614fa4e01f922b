package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Ragavendra192/barani-report-system/internal/logtable"
)

var (
	sampleOperators = []string{"Arun", "Bala", "Chitra", "Devi"}
	sampleRecipes   = []string{"RCP-100", "RCP-200", "RCP-300"}
)

// SampleInterval is the spacing between generated sample records.
const SampleInterval = 17 * time.Minute

// SampleRecords generates n deterministic log records starting at start and
// spaced SampleInterval apart, so every shift of every day gets rows. Every
// tenth record has no operator.
func SampleRecords(n int, start time.Time) []logtable.Record {
	records := make([]logtable.Record, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * SampleInterval)

		operator := sampleOperators[i%len(sampleOperators)]
		if i%10 == 9 {
			operator = ""
		}

		records = append(records, logtable.Record{
			Date:     ts.Format("2006-01-02"),
			Time:     ts.Format("15:04:05"),
			BatchNo:  fmt.Sprintf("B%05d", i+1),
			Recipe:   sampleRecipes[(i/3)%len(sampleRecipes)],
			Operator: operator,
			AckKW:    float64(i%50) + 0.5,
			AckKWH:   float64(i) * 1.25,
		})
	}
	return records
}

// InsertRecords writes records into a database created by CreateDevDatabase
// in a single transaction. A zero ID lets SQLite assign one.
func InsertRecords(ctx context.Context, db *sql.DB, records []logtable.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO ActualLog
		(ID, DATE1, TIME1, BATCHNO, RECEIPENAME, OPERATORNAME, ACKKW, ACKKWH)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		var id interface{}
		if r.ID != 0 {
			id = r.ID
		}
		if _, err := stmt.ExecContext(ctx, id, r.Date, r.Time, r.BatchNo, r.Recipe, r.Operator, r.AckKW, r.AckKWH); err != nil {
			return fmt.Errorf("insert batch %s: %w", r.BatchNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Seed creates a development database at path and fills it with n sample
// records starting at start.
func Seed(ctx context.Context, path string, n int, start time.Time) error {
	db, err := CreateDevDatabase(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	return InsertRecords(ctx, db, SampleRecords(n, start))
}
