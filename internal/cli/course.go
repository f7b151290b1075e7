package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

func newCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	var id, name, instructor string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a course owned by an instructor",
		Long: `Add creates a course owned by an existing instructor and assigns it to
that instructor.

Example:
  registrar course add --id CSE101 --name "Intro to Computer Science" --instructor 1000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(reg *types.Registry) (any, string, error) {
				c, err := reg.CreateCourse(id, name, instructor)
				if err != nil {
					return nil, "", err
				}
				return types.Row(c), fmt.Sprintf("Added course %s: %s (instructor %s)", c.CourseID, c.CourseName, c.InstructorID()), nil
			})
		},
	}
	add.Flags().StringVar(&id, "id", "", "course ID, e.g. CSE101 or EECE435L (required)")
	add.Flags().StringVar(&name, "name", "", "course name")
	add.Flags().StringVar(&instructor, "instructor", "", "owning instructor ID (required)")
	_ = add.MarkFlagRequired("id")
	_ = add.MarkFlagRequired("instructor")

	cmd.AddCommand(add)
	return cmd
}
