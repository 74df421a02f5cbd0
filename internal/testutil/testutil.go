// Package testutil provides shared test helpers for setting up vaults and databases.
package testutil

import (
	"os"
	"testing"

	"github.com/starford/ansuz/internal/ftsindex"
	"github.com/starford/ansuz/internal/vault"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *ftsindex.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "ansuz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := ftsindex.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestVault creates a temporary vault directory with populated files and
// returns its path together with a scanner rooted there.
func TestVault(t *testing.T, files map[string]string) (string, *vault.FS) {
	t.Helper()
	vaultDir := t.TempDir()
	scanner, err := vault.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	for path, content := range files {
		if err := scanner.Write(path, []byte(content)); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return vaultDir, scanner
}
