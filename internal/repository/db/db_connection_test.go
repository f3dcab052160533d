package db

import (
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = db.Close() }()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='forecast_events'`).Scan(&name)
	if err != nil || name != "forecast_events" {
		t.Fatalf("forecast_events table missing: name=%q err=%v", name, err)
	}

	// Re-opening an existing file must be idempotent.
	db2, err := InitDB(path)
	if err != nil {
		t.Fatalf("second InitDB: %v", err)
	}
	_ = db2.Close()
}
