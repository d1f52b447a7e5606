package export

import (
	"database/sql"
	"fmt"

	"github.com/sheetr/sheetr/internal/timesheet"
	_ "modernc.org/sqlite"
)

// DB is a write-only SQLite output sink for generated timesheets.
// Nothing is ever read back from it; it exists so other tooling can
// consume the generated span as structured data.
type DB struct {
	*sql.DB
}

func OpenSQLite(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	out := &DB{db}
	if err := out.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return out, nil
}

func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS days (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL UNIQUE,
			project TEXT NOT NULL,
			total_hours TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day_id INTEGER NOT NULL REFERENCES days(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			task TEXT NOT NULL,
			hours TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}

	return nil
}

// WriteDays inserts the generated span in one transaction, replacing
// any previous export for the same dates.
func (db *DB) WriteDays(records []timesheet.DayRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		date := rec.Date.Format("2006-01-02")

		if _, err := tx.Exec(
			"DELETE FROM entries WHERE day_id IN (SELECT id FROM days WHERE date = ?)", date,
		); err != nil {
			return fmt.Errorf("clearing entries for %s: %w", date, err)
		}
		if _, err := tx.Exec("DELETE FROM days WHERE date = ?", date); err != nil {
			return fmt.Errorf("clearing day %s: %w", date, err)
		}

		result, err := tx.Exec(
			"INSERT INTO days (date, project, total_hours) VALUES (?, ?, ?)",
			date, rec.Project, rec.Total.String(),
		)
		if err != nil {
			return fmt.Errorf("inserting day %s: %w", date, err)
		}
		dayID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading day id: %w", err)
		}

		for i, entry := range rec.Entries {
			if _, err := tx.Exec(
				"INSERT INTO entries (day_id, position, task, hours) VALUES (?, ?, ?, ?)",
				dayID, i, entry.Task, entry.Hours.String(),
			); err != nil {
				return fmt.Errorf("inserting entry %s/%s: %w", date, entry.Task, err)
			}
		}
	}

	return tx.Commit()
}
