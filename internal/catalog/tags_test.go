package catalog

import (
	"io"
	"log/slog"
	"reflect"
	"sort"
	"testing"

	"github.com/starford/ansuz/internal/vault"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tagVault(t *testing.T, files map[string]string) *vault.FS {
	t.Helper()
	f, err := vault.NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	for path, content := range files {
		if err := f.Write(path, []byte(content)); err != nil {
			t.Fatalf("Write %s: %v", path, err)
		}
	}
	return f
}

func TestTagIndex_Update(t *testing.T) {
	f := tagVault(t, map[string]string{
		"a.md":     "text #go and #vault",
		"sub/b.md": "more #go plus #notes/daily",
		"skip.txt": "#ignored",
	})
	ix := NewTagIndex()
	if err := ix.Update(f, discard()); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got := ix.Tags()
	want := []string{"#go", "#notes/daily", "#vault"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
}

func TestTagIndex_UpdateReplacesWholesale(t *testing.T) {
	f := tagVault(t, map[string]string{"a.md": "#old"})
	ix := NewTagIndex()
	if err := ix.Update(f, discard()); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := f.Write("a.md", []byte("#new")); err != nil {
		t.Fatal(err)
	}
	if err := ix.Update(f, discard()); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got := ix.Tags()
	if !reflect.DeepEqual(got, []string{"#new"}) {
		t.Errorf("Tags = %v, want [#new]", got)
	}
}

func TestExpandForCompletion(t *testing.T) {
	got := ExpandForCompletion([]string{"#project-a"})
	want := []string{"#Project-A", "#project-a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expand = %v, want %v", got, want)
	}
}

func TestExpandForCompletion_Idempotent(t *testing.T) {
	base := []string{"#Project-A", "#work/Notes", "#c++"}
	once := ExpandForCompletion(base)
	twice := ExpandForCompletion(once)
	sort.Strings(once)
	sort.Strings(twice)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("not idempotent:\nonce  = %v\ntwice = %v", once, twice)
	}
}

func TestComplete_Prefix(t *testing.T) {
	f := tagVault(t, map[string]string{"a.md": "#project-a #other"})
	ix := NewTagIndex()
	if err := ix.Update(f, discard()); err != nil {
		t.Fatal(err)
	}
	got := ix.Complete("#Pro")
	if !reflect.DeepEqual(got, []string{"#Project-A"}) {
		t.Errorf("Complete = %v, want [#Project-A]", got)
	}
}
