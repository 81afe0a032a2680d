package badger

import (
	"errors"
	"path/filepath"
	"testing"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/ScottTolleback1/portfolio/storage"
)

func TestOpenBackendInMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open in-memory backend: %v", err)
	}
	if backend.IsClosed() {
		t.Fatal("Expected backend to be open")
	}
	if err := backend.Close(); err != nil {
		t.Fatalf("Failed to close backend: %v", err)
	}
	if !backend.IsClosed() {
		t.Fatal("Expected backend to be closed")
	}
}

func TestOpenBackendCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	backend, err := OpenBackend(path, false)
	if err != nil {
		t.Fatalf("Failed to open backend at %s: %v", path, err)
	}
	defer backend.Close()
}

func TestWithTxAfterClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open in-memory backend: %v", err)
	}
	backend.Close()

	err = backend.WithTx(func(tx *badgerdb.Txn) error { return nil }, false)
	if !errors.Is(err, storage.ErrStorageClosed) {
		t.Fatalf("Expected ErrStorageClosed, got %v", err)
	}
}
