package types

import "slices"

// Instructor is a person with a four-digit instructor ID and an ordered
// index of assigned course IDs.
type Instructor struct {
	Person
	InstructorID string

	assigned []string
}

// NewInstructor validates every field and returns an instructor with no
// assigned courses.
func NewInstructor(name string, age int, email, instructorID string) (*Instructor, error) {
	p, err := newPerson(name, age, email)
	if err != nil {
		return nil, err
	}
	id, err := ValidateInstructorID(instructorID)
	if err != nil {
		return nil, err
	}
	return &Instructor{Person: p, InstructorID: id}, nil
}

// Kind returns KindInstructor.
func (*Instructor) Kind() Kind { return KindInstructor }

// ID returns the instructor ID.
func (i *Instructor) ID() string { return i.InstructorID }

// AssignedCourses returns a copy of the assigned course IDs in assignment
// order.
func (i *Instructor) AssignedCourses() []string {
	return slices.Clone(i.assigned)
}

// Assign appends the course to the instructor's assigned list. The course is
// not modified: its owning instructor is fixed at construction, so this list
// is an index the caller keeps in step with ownership.
func (i *Instructor) Assign(course *Course) error {
	c, err := ValidateCourse(course)
	if err != nil {
		return err
	}
	i.assigned = append(i.assigned, c.CourseID)
	return nil
}
