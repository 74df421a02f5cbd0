package search

import (
	"reflect"
	"testing"

	"github.com/starford/ansuz/internal/vault"
)

func searchVault(t *testing.T, files map[string]string) *vault.FS {
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

func TestRun_CaseInsensitive(t *testing.T) {
	f := searchVault(t, map[string]string{
		"a.md":     "The QUICK brown fox",
		"b.md":     "nothing relevant",
		"sub/c.md": "quick thinking",
	})
	got, err := Run("quick", f)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"a.md", "sub/c.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Run = %v, want %v", got, want)
	}
}

func TestRun_RegexPattern(t *testing.T) {
	f := searchVault(t, map[string]string{
		"a.md": "version 1.2.3 released",
		"b.md": "no versions here",
	})
	got, err := Run(`version \d+\.\d+\.\d+`, f)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.md"}) {
		t.Errorf("Run = %v, want [a.md]", got)
	}
}

func TestRun_InvalidPattern(t *testing.T) {
	f := searchVault(t, nil)
	if _, err := Run("([", f); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestRun_ExcludesIneligible(t *testing.T) {
	f := searchVault(t, map[string]string{
		"hit.md":           "needle",
		".trash/gone.md":   "needle",
		"backup~/again.md": "needle",
	})
	got, err := Run("needle", f)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"hit.md"}) {
		t.Errorf("Run = %v, want [hit.md]", got)
	}
}

func TestByTag(t *testing.T) {
	f := searchVault(t, map[string]string{
		"a.md": "work on #c++ bindings",
		"b.md": "plain c code",
	})
	got, err := ByTag("#c++", f)
	if err != nil {
		t.Fatalf("ByTag: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.md"}) {
		t.Errorf("ByTag = %v, want [a.md]", got)
	}
}
