// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/coursepilot/internal/config"
)

// testDBSemaphore serializes DuckDB usage across tests. It is held for the
// whole test, not only while the database is created, because concurrent
// CGO calls from several in-memory databases can hang under CI load.
var testDBSemaphore = make(chan struct{}, 1)

// testDBMutex serializes the New() call itself.
var testDBMutex sync.Mutex

// setupTestDB creates a migrated in-memory database that is closed when the
// test finishes.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	cfg := &config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "512MB",
		Threads:   1,
	}

	type result struct {
		db  *DB
		err error
	}

	resultCh := make(chan result, 1)
	go func() {
		testDBMutex.Lock()
		db, err := New(cfg)
		testDBMutex.Unlock()
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s")
		return nil
	}
}

// setupSeededDB returns a test database loaded with the demo curriculum.
func setupSeededDB(t *testing.T) *DB {
	t.Helper()

	db := setupTestDB(t)
	seeded, err := db.SeedDemoData(context.Background(), "$2a$10$test-hash")
	if err != nil {
		t.Fatalf("SeedDemoData() error = %v", err)
	}
	if !seeded {
		t.Fatal("SeedDemoData() = false on an empty database")
	}
	return db
}

func TestNew_Migrations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	version, err := db.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	want := migrations()[len(migrations())-1].Version
	if version != want {
		t.Errorf("SchemaVersion() = %d, want %d", version, want)
	}

	history, err := db.MigrationHistory(ctx)
	if err != nil {
		t.Fatalf("MigrationHistory() error = %v", err)
	}
	if len(history) != len(migrations()) {
		t.Fatalf("MigrationHistory() returned %d rows, want %d", len(history), len(migrations()))
	}
	for i, m := range history {
		if m.Version != i+1 {
			t.Errorf("history[%d].Version = %d, want %d", i, m.Version, i+1)
		}
		if m.Name == "" {
			t.Errorf("history[%d].Name is empty", i)
		}
		if m.AppliedAt.IsZero() {
			t.Errorf("history[%d].AppliedAt is zero", i)
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := db.migrate(); err != nil {
		t.Fatalf("second migrate() error = %v", err)
	}

	history, err := db.MigrationHistory(context.Background())
	if err != nil {
		t.Fatalf("MigrationHistory() error = %v", err)
	}
	if len(history) != len(migrations()) {
		t.Errorf("MigrationHistory() returned %d rows after re-run, want %d", len(history), len(migrations()))
	}
}

func TestMigrations_VersionsAscending(t *testing.T) {
	t.Parallel()

	prev := 0
	for _, m := range migrations() {
		if m.Version != prev+1 {
			t.Errorf("migration %q has version %d, want %d", m.Name, m.Version, prev+1)
		}
		if len(m.Statements) == 0 {
			t.Errorf("migration v%d has no statements", m.Version)
		}
		prev = m.Version
	}
}

func TestNew_FileDatabase(t *testing.T) {
	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	path := filepath.Join(t.TempDir(), "nested", "coursepilot.duckdb")
	db, err := New(&config.DatabaseConfig{Path: path, Threads: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening keeps the schema and applies nothing new
	db, err = New(&config.DatabaseConfig{Path: path, Threads: 1})
	if err != nil {
		t.Fatalf("reopen New() error = %v", err)
	}
	defer db.Close()

	version, err := db.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	if version != len(migrations()) {
		t.Errorf("SchemaVersion() = %d, want %d", version, len(migrations()))
	}
}

func TestEnsureContext(t *testing.T) {
	t.Parallel()

	t.Run("adds deadline", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := ensureContext(context.Background())
		defer cancel()
		if _, ok := ctx.Deadline(); !ok {
			t.Error("ensureContext() returned a context without deadline")
		}
	})

	t.Run("keeps caller deadline", func(t *testing.T) {
		t.Parallel()
		parent, parentCancel := context.WithTimeout(context.Background(), time.Second)
		defer parentCancel()
		ctx, cancel := ensureContext(parent)
		defer cancel()
		want, _ := parent.Deadline()
		got, _ := ctx.Deadline()
		if !got.Equal(want) {
			t.Errorf("deadline = %v, want %v", got, want)
		}
	})
}
