package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// listKinds maps the list command's argument to entity kinds.
var listKinds = map[string]types.Kind{
	"students":    types.KindStudent,
	"instructors": types.KindInstructor,
	"courses":     types.KindCourse,
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [students|instructors|courses]",
		Short: "List registry entities",
		Long: `List prints every entity, or only those of one kind, with the IDs it is
linked to: a student's registered courses, an instructor's assigned courses,
a course's enrolled students. Email addresses are not shown.

Example:
  registrar list
  registrar list courses --json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"students", "instructors", "courses"},
		RunE:      runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	var kinds []types.Kind
	if len(args) == 1 {
		k, ok := listKinds[args[0]]
		if !ok {
			return fmt.Errorf("unknown kind %q (valid: students, instructors, courses)", args[0])
		}
		kinds = append(kinds, k)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	rows := reg.Listing(kinds...)
	out := cmd.OutOrStdout()
	if flags.jsonMode {
		if rows == nil {
			rows = []types.ListingRow{}
		}
		return printJSON(out, rows)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tID\tNAME\tAGE\tINSTRUCTOR\tLINKS")
	for _, r := range rows {
		age := ""
		if r.Kind != types.KindCourse {
			age = strconv.Itoa(r.Age)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Kind, r.ID, r.Name, age, r.Instructor, strings.Join(r.Links, ","))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Total: %d record(s)\n", len(rows))
	return nil
}
