package types

import "slices"

// Course is identified by a course ID such as "CSE101" or "EECE435L". It is
// owned by exactly one instructor, chosen at construction.
type Course struct {
	CourseID   string
	CourseName string

	instructorID string
	enrolled     []string
}

// NewCourse validates the course ID, the name and the owning instructor. Enrollment
// starts empty. The instructor's assigned list is left alone; use
// Instructor.Assign or Registry.CreateCourse to index the course there.
func NewCourse(courseID, courseName string, instructor *Instructor) (*Course, error) {
	id, err := ValidateCourseID(courseID)
	if err != nil {
		return nil, err
	}
	name, err := ValidateCourseName(courseName)
	if err != nil {
		return nil, err
	}
	owner, err := ValidateInstructor(instructor)
	if err != nil {
		return nil, err
	}
	return &Course{
		CourseID:     id,
		CourseName:   name,
		instructorID: owner.InstructorID,
	}, nil
}

// Kind returns KindCourse.
func (*Course) Kind() Kind { return KindCourse }

// ID returns the course ID.
func (c *Course) ID() string { return c.CourseID }

// InstructorID returns the ID of the owning instructor.
func (c *Course) InstructorID() string { return c.instructorID }

// EnrolledStudents returns a copy of the enrolled student IDs in
// enrollment order.
func (c *Course) EnrolledStudents() []string {
	return slices.Clone(c.enrolled)
}

// addStudent is the course half of Student.Register.
func (c *Course) addStudent(student *Student) error {
	s, err := ValidateStudent(student)
	if err != nil {
		return err
	}
	c.enrolled = append(c.enrolled, s.StudentID)
	return nil
}
