package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens a SQLite database in read-only mode. The source
// application may have the file open; read-only access keeps us from ever
// touching its live state.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ArtifactError{Path: path, Op: "open", Err: err}
	}

	return db, nil
}

// KeyValuePair is one row from a key-value table.
type KeyValuePair struct {
	Key   string
	Value string
}

// TableExists reports whether the named table is present.
func TableExists(db *sql.DB, table string) (bool, error) {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS (
			SELECT name FROM sqlite_master
			WHERE type='table' AND name=?
		)
	`, table).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for %s table: %w", table, err)
	}
	return exists, nil
}

// QueryKeyValues scans a key-value table for keys matching a LIKE pattern.
// NULL values are dropped; scan failures skip the row rather than aborting
// the scan.
func QueryKeyValues(db *sql.DB, table, pattern string) ([]KeyValuePair, error) {
	query := fmt.Sprintf("SELECT key, value FROM %s WHERE key LIKE ? AND value IS NOT NULL", table)
	rows, err := db.Query(query, pattern)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var pairs []KeyValuePair
	for rows.Next() {
		var pair KeyValuePair
		var value sql.NullString
		if err := rows.Scan(&pair.Key, &value); err != nil {
			LogWarn("Failed to scan %s row: %v", table, err)
			continue
		}
		if value.Valid {
			pair.Value = value.String
			pairs = append(pairs, pair)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return pairs, nil
}

// QueryKeyValue fetches a single key from a key-value table. A missing key
// yields ("", false, nil).
func QueryKeyValue(db *sql.DB, table, key string) (string, bool, error) {
	query := fmt.Sprintf("SELECT value FROM %s WHERE key = ?", table)
	var value sql.NullString
	err := db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query failed: %w", err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}
