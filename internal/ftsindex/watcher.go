package ftsindex

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/ansuz/internal/checksum"
	"github.com/starford/ansuz/internal/vault"
)

// EventCallback is called after a watcher-driven sidecar change.
// kind is one of "created", "updated", "deleted".
type EventCallback func(kind string, path string)

// Watch starts an fsnotify watcher on the vault root and keeps the sidecar
// in step with file changes until ctx is cancelled. It calls cb (if non-nil)
// after each successful mutation.
//
// New directories created at runtime are added to the watch list. Rename
// events trigger a debounced reconciliation pass that removes sidecar
// entries whose files no longer exist on disk.
func Watch(ctx context.Context, db *DB, scanner vault.Scanner, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	root := scanner.Root()
	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	var reconcileTimer *time.Timer
	var reconcileCh <-chan time.Time

	scheduleReconcile := func() {
		if reconcileTimer == nil {
			reconcileTimer = time.NewTimer(200 * time.Millisecond)
			reconcileCh = reconcileTimer.C
		} else {
			reconcileTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reconcileTimer != nil {
				reconcileTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reconcileCh:
			reconcile(db, scanner, logger, cb)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			absPath := ev.Name

			// New directories: add to the watch list and index contents.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watcher: watching new dir", slog.String("path", absPath))
					}
					indexNewDir(db, scanner, absPath, logger, cb)
					continue
				}
			}

			rel, ok := eligibleRel(root, absPath)
			if !ok {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				data, readErr := scanner.Read(rel)
				if readErr != nil {
					logger.Warn("watcher: read failed", slog.String("path", rel), slog.String("error", readErr.Error()))
					continue
				}
				if idxErr := indexDocument(db, rel, data); idxErr != nil {
					logger.Warn("watcher: index failed", slog.String("path", rel), slog.String("error", idxErr.Error()))
					continue
				}
				kind := "updated"
				if ev.Op&fsnotify.Create != 0 {
					kind = "created"
				}
				logger.Debug("watcher: indexed", slog.String("path", rel), slog.String("op", kind))
				if cb != nil {
					cb(kind, rel)
				}

			case ev.Op&fsnotify.Remove != 0:
				if delErr := db.DeleteDocument(rel); delErr != nil {
					logger.Warn("watcher: delete failed", slog.String("path", rel), slog.String("error", delErr.Error()))
					continue
				}
				logger.Debug("watcher: deleted", slog.String("path", rel))
				if cb != nil {
					cb("deleted", rel)
				}

			case ev.Op&fsnotify.Rename != 0:
				// fsnotify fires Rename on the OLD path only; the new
				// path arrives as a separate Create event when it stays
				// inside a watched dir. Delete the old entry now and
				// schedule a reconciliation pass for stragglers.
				if delErr := db.DeleteDocument(rel); delErr != nil {
					logger.Warn("watcher: rename delete failed", slog.String("path", rel), slog.String("error", delErr.Error()))
				} else {
					logger.Debug("watcher: rename old deleted", slog.String("path", rel))
					if cb != nil {
						cb("deleted", rel)
					}
				}
				scheduleReconcile()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// eligibleRel maps an absolute event path onto an eligible relative path,
// applying the same filter as the scanner: .md extension, no ".trash"
// segment, no "~" in the relative path.
func eligibleRel(root, abs string) (string, bool) {
	if filepath.Ext(abs) != ".md" {
		return "", false
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
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

// reconcile does a lightweight sync using batch lookups: removes sidecar
// entries without a file on disk and indexes on-disk files the sidecar
// missed or has stale.
func reconcile(db *DB, scanner vault.Scanner, logger *slog.Logger, cb EventCallback) {
	stored, err := db.AllChecksums()
	if err != nil {
		logger.Warn("reconcile: all checksums failed", slog.String("error", err.Error()))
		return
	}

	docs, err := scanner.List()
	if err != nil {
		logger.Warn("reconcile: list failed", slog.String("error", err.Error()))
		return
	}

	disk := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		disk[doc.RelPath] = struct{}{}
	}

	for p := range stored {
		if _, ok := disk[p]; !ok {
			if delErr := db.DeleteDocument(p); delErr == nil {
				logger.Debug("reconcile: removed stale", slog.String("path", p))
				if cb != nil {
					cb("deleted", p)
				}
			}
		}
	}

	for _, doc := range docs {
		data, readErr := scanner.Read(doc.RelPath)
		if readErr != nil {
			continue
		}
		if stored[doc.RelPath] == checksum.Sum(data) {
			continue
		}
		if idxErr := indexDocument(db, doc.RelPath, data); idxErr == nil {
			logger.Debug("reconcile: indexed", slog.String("path", doc.RelPath))
			if cb != nil {
				cb("created", doc.RelPath)
			}
		}
	}
}

// indexNewDir indexes any eligible files found in a newly created directory.
func indexNewDir(db *DB, scanner vault.Scanner, dirPath string, logger *slog.Logger, cb EventCallback) {
	root := scanner.Root()
	_ = filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, ok := eligibleRel(root, path)
		if !ok {
			return nil
		}
		data, readErr := scanner.Read(rel)
		if readErr != nil {
			return nil
		}
		if idxErr := indexDocument(db, rel, data); idxErr == nil {
			logger.Debug("watcher: indexed from new dir", slog.String("path", rel))
			if cb != nil {
				cb("created", rel)
			}
		}
		return nil
	})
}

// addDirsRecursive adds root and all its subdirectories to the watcher,
// skipping trash directories.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".trash" {
				return filepath.SkipDir
			}
			return w.Add(path)
		}
		return nil
	})
}
