// This file implements saving a registry to a document file.
package document

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Save writes instructors, courses and students to path, choosing the
// encoding from the extension. The document is written to a temporary file
// in the same directory and renamed over path, so a failed save leaves any
// previous document intact. Failures wrap types.ErrIO.
func Save(path string, instructors []*types.Instructor, courses []*types.Course, students []*types.Student) error {
	return writeDocument(path, Flatten(instructors, courses, students))
}

// SaveRegistry writes every entity in r to path, in insertion order.
func SaveRegistry(path string, r *types.Registry) error {
	return writeDocument(path, FlattenRegistry(r))
}

func writeDocument(path string, doc Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".document-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w: %w", dir, types.ErrIO, err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	w := bufio.NewWriter(tmp)
	if err := Encode(w, FormatFor(path), doc); err != nil {
		return fail(fmt.Errorf("writing %s: %w", path, err))
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("flushing %s: %w: %w", path, types.ErrIO, err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing %s: %w: %w", path, types.ErrIO, err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w: %w", path, types.ErrIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into %s: %w: %w", path, types.ErrIO, err)
	}
	return nil
}
