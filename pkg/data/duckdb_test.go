package data

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "maniverse-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	repo, err := NewDuckDBRepository(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init DB: %v", err)
	}

	cleanup := func() {
		repo.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func TestSetAndGet(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	if err := repo.Set("selectedShape", `{"id":"almond"}`); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	value, ok, err := repo.Get("selectedShape")
	if err != nil {
		t.Fatalf("Failed to get value: %v", err)
	}
	if !ok {
		t.Fatal("Expected value to be found")
	}
	if value != `{"id":"almond"}` {
		t.Errorf("Expected stored payload, got %s", value)
	}
}

func TestGetMissingKey(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	value, ok, err := repo.Get("missing")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ok {
		t.Errorf("Expected missing key, got %q", value)
	}
}

func TestSetOverwrites(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	repo.Set("selectedColor", "first")
	if err := repo.Set("selectedColor", "second"); err != nil {
		t.Fatalf("Failed to overwrite value: %v", err)
	}

	value, _, _ := repo.Get("selectedColor")
	if value != "second" {
		t.Errorf("Expected 'second', got '%s'", value)
	}
}

func TestDelete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	repo.Set("selectedShape", "x")
	if err := repo.Delete("selectedShape"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}

	if _, ok, _ := repo.Get("selectedShape"); ok {
		t.Error("Expected key to be deleted")
	}

	// Deleting again is not an error
	if err := repo.Delete("selectedShape"); err != nil {
		t.Errorf("Expected no error deleting a missing key, got: %v", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	repo, err := NewDuckDBRepository(dbPath)
	if err != nil {
		t.Fatalf("Failed to open DB: %v", err)
	}
	repo.Set("selectedShape", "persisted")
	repo.Close()

	reopened, err := NewDuckDBRepository(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen DB: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("selectedShape")
	if err != nil || !ok {
		t.Fatalf("Expected value after reopen, ok=%v err=%v", ok, err)
	}
	if value != "persisted" {
		t.Errorf("Expected 'persisted', got '%s'", value)
	}
}
