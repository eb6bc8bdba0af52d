package cmudict

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// Compile parses a CMU text dictionary and writes it to a SQLite database,
// returning the number of entries written. Compiled databases load much
// faster than the ~130k-line text format.
func Compile(srcPath, dbPath string) (int, error) {
	dict := New()
	if err := dict.LoadFile(srcPath); err != nil {
		return 0, err
	}

	// Start from a clean file so stale entries never survive.
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("removing old database: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE entries (word TEXT PRIMARY KEY, phonemes TEXT NOT NULL)`); err != nil {
		return 0, fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO entries (word, phonemes) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for word, phonemes := range dict.entries {
		if _, err := stmt.Exec(word, strings.Join(phonemes, " ")); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting %q: %w", word, err)
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}

	return count, nil
}

// loadSQLite loads all entries from a compiled database.
func (d *Dictionary) loadSQLite(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("opening dictionary database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening dictionary database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word, phonemes FROM entries`)
	if err != nil {
		return fmt.Errorf("querying dictionary database: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var word, phonemes string
		if err := rows.Scan(&word, &phonemes); err != nil {
			return fmt.Errorf("scanning dictionary row: %w", err)
		}
		d.Add(word, strings.Fields(phonemes))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading dictionary rows: %w", err)
	}
	return nil
}
