package ftsindex

import (
	"log/slog"
	"time"

	"github.com/starford/ansuz/internal/checksum"
	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/vault"
)

// Sync walks the vault and brings the sidecar up to date:
//   - new/changed documents are parsed and upserted
//   - documents removed from disk are deleted from the sidecar
func Sync(db *DB, scanner vault.Scanner, logger *slog.Logger) error {
	docs, err := scanner.List()
	if err != nil {
		return err
	}

	stored, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		disk[doc.RelPath] = struct{}{}

		data, err := scanner.Read(doc.RelPath)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", doc.RelPath), slog.String("error", err.Error()))
			continue
		}
		if stored[doc.RelPath] == checksum.Sum(data) {
			continue
		}
		if err := indexDocument(db, doc.RelPath, data); err != nil {
			logger.Warn("sync: index failed", slog.String("path", doc.RelPath), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", doc.RelPath), slog.String("checksum", checksum.Short(data)))
		}
	}

	// Remove stale entries.
	for p := range stored {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteDocument(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// indexDocument parses raw document bytes and upserts the row. Malformed
// front matter only costs the aliases; the document still gets indexed.
func indexDocument(db *DB, path string, data []byte) error {
	text := string(data)

	var aliases []string
	if fm, err := parser.ExtractFrontMatter(text); err == nil {
		aliases = fm.Aliases()
	}

	var links []string
	for _, ref := range parser.FindLinks(text) {
		links = append(links, ref.Target)
	}

	row := DocRow{
		Path:      path,
		Checksum:  checksum.Sum(data),
		Tags:      parser.FindTags(text),
		Aliases:   aliases,
		UpdatedAt: time.Now(),
	}
	return db.UpsertDocument(row, text, links)
}
