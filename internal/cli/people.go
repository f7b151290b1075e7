// Student and instructor commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// personOpts holds the flags shared by "student add" and "instructor add".
// Age is taken as text so malformed input is reported as a validation error.
type personOpts struct {
	name  string
	age   string
	email string
	id    string
}

func (o *personOpts) bind(cmd *cobra.Command, idHelp string) {
	cmd.Flags().StringVar(&o.name, "name", "", "full name (required)")
	cmd.Flags().StringVar(&o.age, "age", "", "age in years (required)")
	cmd.Flags().StringVar(&o.email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&o.id, "id", "", idHelp)
	for _, name := range []string{"name", "age", "email", "id"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func newStudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students",
	}

	var o personOpts
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		Long: `Add validates and stores a new student.

Example:
  registrar student add --name Sammy --age 20 --email sna61@aub.edu --id 202202056`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(reg *types.Registry) (any, string, error) {
				age, err := types.ParseAge(o.age)
				if err != nil {
					return nil, "", err
				}
				s, err := types.NewStudent(o.name, age, o.email, o.id)
				if err != nil {
					return nil, "", err
				}
				if err := reg.AddStudent(s); err != nil {
					return nil, "", err
				}
				return types.Row(s), fmt.Sprintf("Added student %s: %s", s.StudentID, s.Name), nil
			})
		},
	}
	o.bind(add, "9-digit student ID (required)")

	cmd.AddCommand(add)
	return cmd
}

func newInstructorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instructor",
		Short: "Manage instructors",
	}

	var o personOpts
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an instructor",
		Long: `Add validates and stores a new instructor.

Example:
  registrar instructor add --name "Alice Smith" --age 45 --email alice@aub.edu --id 1000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(reg *types.Registry) (any, string, error) {
				age, err := types.ParseAge(o.age)
				if err != nil {
					return nil, "", err
				}
				i, err := types.NewInstructor(o.name, age, o.email, o.id)
				if err != nil {
					return nil, "", err
				}
				if err := reg.AddInstructor(i); err != nil {
					return nil, "", err
				}
				return types.Row(i), fmt.Sprintf("Added instructor %s: %s", i.InstructorID, i.Name), nil
			})
		},
	}
	o.bind(add, "4-digit instructor ID (required)")

	cmd.AddCommand(add)
	return cmd
}
