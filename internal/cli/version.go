package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the registrar release.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/registrar"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the registrar version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd.OutOrStdout(),
				map[string]string{"version": Version, "module": modulePath},
				fmt.Sprintf("registrar v%s\nmodule: %s", Version, modulePath))
		},
	}
}
