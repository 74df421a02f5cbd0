package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/starford/ansuz/internal/ftsindex"
	"github.com/starford/ansuz/internal/testutil"
	"github.com/starford/ansuz/internal/vault"
	"github.com/starford/ansuz/internal/vaultservice"
)

type fixture struct {
	router  http.Handler
	svc     *vaultservice.Service
	scanner *vault.FS
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()

	_, scanner := testutil.TestVault(t, files)
	db := testutil.TestDB(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := vaultservice.NewService(scanner, logger)
	if err := svc.Reindex(context.Background()); err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if err := ftsindex.Sync(db, scanner, logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	return &fixture{
		router:  NewRouter(svc, db, scanner, false, "", nil),
		svc:     svc,
		scanner: scanner,
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestListFiles(t *testing.T) {
	f := newFixture(t, map[string]string{
		"notes/a.md":     "",
		"b.md":           "",
		".trash/gone.md": "",
	})
	rec := f.do(t, "GET", "/files", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[FileListResponse](t, rec)
	if resp.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Total)
	}
}

func TestTagsAndCompletion(t *testing.T) {
	f := newFixture(t, map[string]string{"a.md": "body #project-a"})

	resp := decode[TagListResponse](t, f.do(t, "GET", "/tags", ""))
	if len(resp.Tags) != 1 || resp.Tags[0] != "#project-a" {
		t.Errorf("tags = %v", resp.Tags)
	}

	resp = decode[TagListResponse](t, f.do(t, "GET", "/tags?expanded=true", ""))
	if len(resp.Tags) != 2 {
		t.Errorf("expanded tags = %v", resp.Tags)
	}

	resp = decode[TagListResponse](t, f.do(t, "GET", "/tags/complete?prefix=%23Pro", ""))
	if len(resp.Tags) != 1 || resp.Tags[0] != "#Project-A" {
		t.Errorf("completion = %v", resp.Tags)
	}
}

func TestResolveAliasEndpoint(t *testing.T) {
	f := newFixture(t, map[string]string{"a.md": "---\nalias: front\n---\n"})

	rec := f.do(t, "GET", "/aliases/front", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = f.do(t, "GET", "/aliases/absent", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing alias status = %d, want 404", rec.Code)
	}
}

func TestResolveEndpoint_Kinds(t *testing.T) {
	f := newFixture(t, map[string]string{
		"notes/a.md":   "",
		"archive/a.md": "",
		"notes/x.md":   "",
	})

	resp := decode[ResolveResponse](t, f.do(t, "POST", "/resolve", `{"target":"x"}`))
	if string(resp.Kind) != "document" || resp.Document.RelPath != "notes/x.md" {
		t.Errorf("resolve x = %+v", resp)
	}

	resp = decode[ResolveResponse](t, f.do(t, "POST", "/resolve", `{"target":"a"}`))
	if string(resp.Kind) != "ambiguous" || len(resp.Candidates) != 2 {
		t.Errorf("resolve a = %+v", resp)
	}

	resp = decode[ResolveResponse](t, f.do(t, "POST", "/resolve", `{"target":"https://example.org"}`))
	if string(resp.Kind) != "external" {
		t.Errorf("resolve url = %+v", resp)
	}

	rec := f.do(t, "POST", "/resolve", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty resolve status = %d, want 400", rec.Code)
	}
}

func TestResolveEndpoint_AtCursor(t *testing.T) {
	f := newFixture(t, map[string]string{"notes/self.md": ""})

	body := `{"text":"go to [[self]] now","cursor":9,"current":"notes/self.md"}`
	resp := decode[ResolveResponse](t, f.do(t, "POST", "/resolve", body))
	if resp.Recognized {
		t.Errorf("self-link must not be recognized: %+v", resp)
	}

	body = `{"text":"go to [[self]] now","cursor":9,"current":"notes/other.md"}`
	resp = decode[ResolveResponse](t, f.do(t, "POST", "/resolve", body))
	if !resp.Recognized || resp.Document.RelPath != "notes/self.md" {
		t.Errorf("resolve at cursor = %+v", resp)
	}
}

func TestSearchEndpoints(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a.md": "the QUICK fox #work",
		"b.md": "slow snail",
	})

	resp := decode[SearchResponse](t, f.do(t, "GET", "/search?q=quick", ""))
	if len(resp.Paths) != 1 || resp.Paths[0] != "a.md" {
		t.Errorf("search = %v", resp.Paths)
	}

	resp = decode[SearchResponse](t, f.do(t, "GET", "/search/tag?tag=%23work", ""))
	if len(resp.Paths) != 1 || resp.Paths[0] != "a.md" {
		t.Errorf("tag search = %v", resp.Paths)
	}

	rec := f.do(t, "GET", "/search?q=([", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid pattern status = %d, want 400", rec.Code)
	}

	ft := decode[FulltextResponse](t, f.do(t, "GET", "/fulltext?q=snail", ""))
	if len(ft.Results) != 1 || ft.Results[0].Path != "b.md" {
		t.Errorf("fulltext = %v", ft.Results)
	}
}

func TestBacklinksEndpoint(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a.md": "see [[target]]",
		"b.md": "also [[target]]",
		"c.md": "nothing",
	})
	resp := decode[BacklinksResponse](t, f.do(t, "GET", "/backlinks?target=target", ""))
	if len(resp.Backlinks) != 2 {
		t.Errorf("backlinks = %v", resp.Backlinks)
	}
}

func TestReindexEndpoint(t *testing.T) {
	f := newFixture(t, nil)
	if err := f.scanner.Write("late.md", []byte("#late")); err != nil {
		t.Fatal(err)
	}
	rec := f.do(t, "POST", "/reindex", "")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[TagListResponse](t, f.do(t, "GET", "/tags", ""))
	if len(resp.Tags) != 1 || resp.Tags[0] != "#late" {
		t.Errorf("tags after reindex = %v", resp.Tags)
	}
}

func TestAuthMiddleware(t *testing.T) {
	_, scanner := testutil.TestVault(t, nil)
	db := testutil.TestDB(t)

	svc := vaultservice.NewService(scanner, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := NewRouter(svc, db, scanner, true, "secret", nil)

	req := httptest.NewRequest("GET", "/files", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest("GET", "/files", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}
}
