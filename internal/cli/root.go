// Package cli implements the registrar command-line interface.
package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// logger is replaced per invocation once --verbose is known.
var logger = slog.Default()

// NewRootCmd creates the top-level "registrar" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "registrar",
		Short: "Manage students, instructors and courses",
		Long: "Registrar keeps a registry of students, instructors and courses,\n" +
			"links registrations and assignments by ID, and persists the registry\n" +
			"as a JSON or YAML document or in a SQLite database.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flags.verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.registrar-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newStudentCmd())
	root.AddCommand(newInstructorCmd())
	root.AddCommand(newCourseCmd())
	root.AddCommand(newRegisterCmd())
	root.AddCommand(newAssignCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to a process exit code: storage failures are system
// errors, everything else (validation, lookup, duplicates, bad input) is the
// user's.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrIO):
		return exitSysError
	default:
		return exitUserError
	}
}
