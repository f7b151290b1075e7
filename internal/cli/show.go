package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one student, instructor or course",
		Long: `Show prints one entity and the IDs it is linked to. The kind is found from
the ID: 9 digits for a student, 4 digits for an instructor, otherwise a course.

Example:
  registrar show 202202056
  registrar show CSE101 --json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	e, err := reg.Find(args[0])
	if err != nil {
		return err
	}

	row := types.Row(e)
	out := cmd.OutOrStdout()
	if flags.jsonMode {
		return printJSON(out, row)
	}

	fmt.Fprintf(out, "Kind:        %s\n", row.Kind)
	fmt.Fprintf(out, "ID:          %s\n", row.ID)
	fmt.Fprintf(out, "Name:        %s\n", row.Name)
	switch v := e.(type) {
	case *types.Student:
		fmt.Fprintf(out, "Age:         %d\n", v.Age)
		printLinks(out, "Courses:", row.Links)
		fmt.Fprintln(out, v.Introduce())
	case *types.Instructor:
		fmt.Fprintf(out, "Age:         %d\n", v.Age)
		printLinks(out, "Courses:", row.Links)
		fmt.Fprintln(out, v.Introduce())
	case *types.Course:
		fmt.Fprintf(out, "Instructor:  %s\n", row.Instructor)
		printLinks(out, "Students:", row.Links)
	}
	return nil
}

func printLinks(w io.Writer, label string, ids []string) {
	if len(ids) == 0 {
		fmt.Fprintf(w, "%-12s (none)\n", label)
		return
	}
	fmt.Fprintf(w, "%-12s %s\n", label, strings.Join(ids, ", "))
}
