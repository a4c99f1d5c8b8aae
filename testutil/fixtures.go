// Package testutil provides on-disk fixtures for parser and pipeline tests.
package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateGlobalStorageDB creates a state database with a cursorDiskKV table
// holding the given key/value rows.
func CreateGlobalStorageDB(t *testing.T, dbPath string, rows map[string]string) {
	t.Helper()
	createKVDB(t, dbPath, "cursorDiskKV", rows)
}

// CreateWorkspaceDB creates a state database with an ItemTable holding the
// given key/value rows.
func CreateWorkspaceDB(t *testing.T, dbPath string, rows map[string]string) {
	t.Helper()
	createKVDB(t, dbPath, "ItemTable", rows)
}

func createKVDB(t *testing.T, dbPath, table string, rows map[string]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS " + table + " (key TEXT PRIMARY KEY, value TEXT)"); err != nil {
		t.Fatalf("Failed to create %s table: %v", table, err)
	}

	for key, value := range rows {
		if _, err := db.Exec("INSERT INTO "+table+" (key, value) VALUES (?, ?)", key, value); err != nil {
			t.Fatalf("Failed to insert row %s: %v", key, err)
		}
	}
}

// WriteJSONL writes a JSONL fixture file, one line per entry.
func WriteJSONL(t *testing.T, path string, lines []string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
}

// WriteWorkspaceJSON writes a workspace.json next to a workspace state db.
func WriteWorkspaceJSON(t *testing.T, storageDir, folderURI string) {
	t.Helper()
	if err := os.MkdirAll(storageDir, 0755); err != nil {
		t.Fatalf("Failed to create workspace directory: %v", err)
	}
	content := `{"folder": "` + folderURI + `"}`
	if err := os.WriteFile(filepath.Join(storageDir, "workspace.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write workspace.json: %v", err)
	}
}
