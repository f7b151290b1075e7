package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/internal/sqlite"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize registrar storage",
		Long: "Create the configuration and data directories, write a default config.yaml,\n" +
			"and create an empty registry in the configured backend. Existing data is kept.",
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w: %w", types.ErrIO, err)
	}

	var location string
	switch cfg.Backend {
	case types.BackendSQLite:
		s, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		location = s.Path()
		if err := s.Close(); err != nil {
			return fmt.Errorf("finalize storage: %w: %w", types.ErrIO, err)
		}
	default:
		location = cfg.DocumentPath()
		if _, err := os.Stat(location); errors.Is(err, fs.ErrNotExist) {
			if err := saveRegistry(cfg, types.NewRegistry()); err != nil {
				return err
			}
		}
	}

	logger.Info("initialized", "backend", cfg.Backend, "location", location)
	return emit(cmd.OutOrStdout(),
		map[string]string{"backend": cfg.Backend, "location": location},
		fmt.Sprintf("Registrar initialized (%s): %s", cfg.Backend, location))
}
