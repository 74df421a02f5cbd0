// Package vault implements the document scanner over a vault directory tree.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/models"
)

// Scanner enumerates and reads eligible vault documents. Consumers should
// depend on this interface rather than the concrete *FS type.
type Scanner interface {
	// List returns every eligible document under the vault root. The file
	// set is re-enumerated on every call; nothing is cached.
	List() ([]models.Document, error)
	// Read returns the raw bytes of the file at path (relative to root).
	Read(rel string) ([]byte, error)
	// Root returns the canonical vault root.
	Root() string
}

// FS implements Scanner backed by the local file system.
type FS struct {
	root string // canonical absolute path to the vault directory
}

var _ Scanner = (*FS)(nil)

// NewFS creates a scanner rooted at the given directory. The directory must
// already exist; a missing or invalid root is a configuration error that is
// fatal for every vault operation.
func NewFS(root string) (*FS, error) {
	if root == "" {
		return nil, fmt.Errorf("vault: %w", apperr.ErrVaultRoot)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("vault: resolve root: %w", apperr.ErrVaultRoot)
	}
	// Canonicalize so that eligibility checks compare resolved paths, not
	// string prefixes (case/symlink mismatches).
	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: %q: %w", root, apperr.ErrVaultRoot)
	}
	info, err := os.Stat(canon)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("vault: %q: %w", root, apperr.ErrVaultRoot)
	}
	return &FS{root: canon}, nil
}

// Root returns the canonical vault root.
func (f *FS) Root() string { return f.root }

// List walks the vault root and returns every eligible document.
// Traversal errors on individual entries are skipped; only a missing root
// aborts the scan.
func (f *FS) List() ([]models.Document, error) {
	if _, err := os.Stat(f.root); err != nil {
		return nil, fmt.Errorf("vault: %q: %w", f.root, apperr.ErrVaultRoot)
	}
	var out []models.Document
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".trash" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, ok := f.eligible(p)
		if !ok {
			return nil
		}
		out = append(out, models.Document{Path: p, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault: list: %w", err)
	}
	return out, nil
}

// eligible reports whether the file at abs is an eligible document and
// returns its slash-separated relative path. The eligibility contract:
// extension "md", canonically under the root, no ".trash" path segment,
// and no "~" in the relative path.
func (f *FS) eligible(abs string) (string, bool) {
	if filepath.Ext(abs) != ".md" {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(f.root, resolved)
	if err != nil || rel == "." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) || rel == ".." {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".trash" {
			return "", false
		}
	}
	if strings.Contains(rel, "~") {
		return "", false
	}
	return rel, true
}

// Read returns the raw bytes of a vault file. Content is read on demand and
// never cached across calls.
func (f *FS) Read(rel string) ([]byte, error) {
	abs, err := f.safePath(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: read %s: %w", rel, err)
	}
	return data, nil
}

// Write atomically writes content: tmp file, fsync, rename. The core treats
// the vault as read-only; Write exists for the capture collaborator and
// tests.
func (f *FS) Write(rel string, content []byte) error {
	abs, err := f.safePath(rel)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("vault: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ansuz-tmp-*")
	if err != nil {
		return fmt.Errorf("vault: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("vault: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("vault: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("vault: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("vault: rename: %w", err)
	}
	success = true
	return nil
}

// safePath resolves a relative path against the vault root and rejects any
// result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("vault: absolute paths not allowed: %s", rel)
	}
	joined := filepath.Join(f.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("vault: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("vault: path escapes vault root: %s", rel)
	}
	return abs, nil
}
