package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func tempVault(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	f, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return f
}

func relPaths(t *testing.T, f *FS) []string {
	t.Helper()
	docs, err := f.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.RelPath
	}
	return out
}

func TestNewFS_MissingRoot(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing root")
	}
	if _, err := NewFS(""); err == nil {
		t.Fatal("expected error for empty root")
	}
}

func TestWriteAndRead(t *testing.T) {
	f := tempVault(t)
	content := []byte("# Hello\nWorld\n")
	if err := f.Write("note.md", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := f.Read("note.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestList_OnlyMarkdown(t *testing.T) {
	f := tempVault(t)
	_ = f.Write("a.md", []byte("a"))
	_ = f.Write("sub/b.md", []byte("b"))
	_ = f.Write("c.txt", []byte("c"))
	got := relPaths(t, f)
	if len(got) != 2 {
		t.Fatalf("List = %v, want 2 markdown files", got)
	}
}

func TestList_SkipsTrash(t *testing.T) {
	f := tempVault(t)
	_ = f.Write("keep.md", []byte("k"))
	_ = f.Write(".trash/gone.md", []byte("g"))
	_ = f.Write("sub/.trash/gone2.md", []byte("g"))
	got := relPaths(t, f)
	if len(got) != 1 || got[0] != "keep.md" {
		t.Errorf("List = %v, want [keep.md]", got)
	}
}

func TestList_SkipsTempMarker(t *testing.T) {
	f := tempVault(t)
	_ = f.Write("note.md", []byte("n"))
	_ = f.Write("note.md~", []byte("backup"))
	_ = f.Write("lock~dir/other.md", []byte("o"))
	got := relPaths(t, f)
	if len(got) != 1 || got[0] != "note.md" {
		t.Errorf("List = %v, want [note.md]", got)
	}
}

func TestList_SymlinkOutsideVault(t *testing.T) {
	f := tempVault(t)
	_ = f.Write("in.md", []byte("in"))

	outside := t.TempDir()
	target := filepath.Join(outside, "out.md")
	if err := os.WriteFile(target, []byte("out"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(f.Root(), "escape.md")); err != nil {
		t.Skipf("symlink unsupported: %v", err)
	}

	got := relPaths(t, f)
	if len(got) != 1 || got[0] != "in.md" {
		t.Errorf("List = %v, want [in.md]", got)
	}
}

func TestSafePath_RejectsEscape(t *testing.T) {
	f := tempVault(t)
	if _, err := f.Read("../secret.md"); err == nil {
		t.Error("expected error for traversal path")
	}
	if err := f.Write("/abs.md", []byte("x")); err == nil {
		t.Error("expected error for absolute path")
	}
}
