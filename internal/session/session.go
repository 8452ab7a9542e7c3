// Package session implements the scoped-write cycle every config patch runs
// in: load the document, mutate it, re-read the file, and write back only
// when the mutation actually changed something.
package session

import "log/slog"

// Store loads, compares, and persists one document type.
type Store[D any] interface {
	// Load reads the document at path, returning a fresh empty document
	// when the file does not exist.
	Load(path string) (D, error)

	// Equal reports whether two documents hold the same values.
	Equal(a, b D) bool

	// Write serializes doc and replaces the file at path.
	Write(path string, doc D) error
}

// Apply runs one load-mutate-compare-write cycle against the file at path.
//
// The document is loaded (or created empty), the steps run in order, and on
// clean completion the file is re-read and compared against the mutated
// document. The file is rewritten only when the two differ, so a repeated
// run is a no-op and an unchanged file keeps its timestamp. Any step error
// aborts the session before the compare; nothing is written on an error
// path. At most one write happens per session, strictly at the end.
//
// The re-read is a best-effort guard against concurrent external edits;
// there is no locking, so a lost update is still possible under true
// concurrency.
func Apply[D any](store Store[D], path, description string, logger *slog.Logger, steps ...func(D) error) error {
	doc, err := store.Load(path)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if step == nil {
			continue
		}

		if err := step(doc); err != nil {
			return err
		}
	}

	onDisk, err := store.Load(path)
	if err != nil {
		return err
	}

	if store.Equal(doc, onDisk) {
		return nil
	}

	logger.Info("updating", "file", path, "section", description)

	return store.Write(path, doc)
}
