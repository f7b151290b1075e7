// Register and assign commands link entities by ID.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// linkResult is the --json output of register and assign.
type linkResult struct {
	Student    string `json:"student,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	Course     string `json:"course"`
}

func newRegisterCmd() *cobra.Command {
	var student, course string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a student in a course",
		Long: `Register links a student and a course in both directions: the course is
appended to the student's registered courses and the student to the course's
enrolled students.

Example:
  registrar register --student 202202056 --course CSE101`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(reg *types.Registry) (any, string, error) {
				if err := reg.Register(student, course); err != nil {
					return nil, "", err
				}
				return linkResult{Student: student, Course: course},
					fmt.Sprintf("Registered %s in %s", student, course), nil
			})
		},
	}
	cmd.Flags().StringVar(&student, "student", "", "student ID (required)")
	cmd.Flags().StringVar(&course, "course", "", "course ID (required)")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("course")
	return cmd
}

func newAssignCmd() *cobra.Command {
	var instructor, course string
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign a course to the instructor who owns it",
		Long: `Assign appends a course to an instructor's assigned courses. The instructor
must own the course.

Example:
  registrar assign --instructor 1000 --course CSE101`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(reg *types.Registry) (any, string, error) {
				if err := reg.Assign(instructor, course); err != nil {
					return nil, "", err
				}
				return linkResult{Instructor: instructor, Course: course},
					fmt.Sprintf("Assigned %s to %s", course, instructor), nil
			})
		},
	}
	cmd.Flags().StringVar(&instructor, "instructor", "", "instructor ID (required)")
	cmd.Flags().StringVar(&course, "course", "", "course ID (required)")
	_ = cmd.MarkFlagRequired("instructor")
	_ = cmd.MarkFlagRequired("course")
	return cmd
}
