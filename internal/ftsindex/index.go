package ftsindex

// DocIndex defines the sidecar operations the server layers depend on.
// Consumers should use this interface rather than the concrete *DB type.
type DocIndex interface {
	UpsertDocument(d DocRow, body string, links []string) error
	DeleteDocument(path string) error
	AllChecksums() (map[string]string, error)
	Backlinks(target string) ([]string, error)
	Search(query string, limit int) ([]SearchResult, error)
	Close() error
}

// Verify *DB satisfies DocIndex at compile time.
var _ DocIndex = (*DB)(nil)
