// Loading and saving the registry through the configured backend.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/internal/sqlite"
	"github.com/mesh-intelligence/registrar/pkg/document"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// loadRegistry reads the registry from cfg's backend. A document that does
// not exist yet loads as an empty registry.
func loadRegistry(cfg types.Config) (*types.Registry, error) {
	if cfg.Backend == types.BackendSQLite {
		s, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		logger.Debug("reading registry", "db", s.Path())
		return s.Read()
	}

	path := cfg.DocumentPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no document yet, starting empty", "path", path)
		return types.NewRegistry(), nil
	}
	logger.Debug("loading registry", "path", path)
	return document.Load(path)
}

// saveRegistry writes reg to cfg's backend, creating the data directory if
// needed.
func saveRegistry(cfg types.Config, reg *types.Registry) error {
	if cfg.Backend == types.BackendSQLite {
		s, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		if err := s.Write(reg); err != nil {
			s.Close()
			return err
		}
		logger.Debug("wrote registry", "db", s.Path())
		return s.Close()
	}

	path := cfg.DocumentPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w: %w", filepath.Dir(path), types.ErrIO, err)
	}
	logger.Debug("saving registry", "path", path)
	return document.Save(path, reg)
}

// mutation applies one change to a loaded registry. It returns the value
// printed in --json mode and a one-line summary for text mode.
type mutation func(reg *types.Registry) (result any, summary string, err error)

// mutate loads the registry, applies fn, and saves it back. Nothing is saved
// if fn fails.
func mutate(cmd *cobra.Command, fn mutation) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	result, summary, err := fn(reg)
	if err != nil {
		return err
	}

	if err := saveRegistry(cfg, reg); err != nil {
		return err
	}
	return emit(cmd.OutOrStdout(), result, summary)
}

// emit prints result as JSON in --json mode, otherwise the summary line.
func emit(w io.Writer, result any, summary string) error {
	if flags.jsonMode {
		return printJSON(w, result)
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
