package types

import "slices"

// Student is a person with a nine-digit student ID and an ordered list of
// registered course IDs. The list references courses; it does not own them.
type Student struct {
	Person
	StudentID string

	registered []string
}

// NewStudent validates every field and returns a student with no courses.
func NewStudent(name string, age int, email, studentID string) (*Student, error) {
	p, err := newPerson(name, age, email)
	if err != nil {
		return nil, err
	}
	id, err := ValidateStudentID(studentID)
	if err != nil {
		return nil, err
	}
	return &Student{Person: p, StudentID: id}, nil
}

// Kind returns KindStudent.
func (*Student) Kind() Kind { return KindStudent }

// ID returns the student ID.
func (s *Student) ID() string { return s.StudentID }

// RegisteredCourses returns a copy of the registered course IDs in
// registration order.
func (s *Student) RegisteredCourses() []string {
	return slices.Clone(s.registered)
}

// Register links the student and course in both directions: the course ID
// is appended to the student's list and the student ID to the course's
// enrolled list. Repeated calls append repeated entries.
func (s *Student) Register(course *Course) error {
	c, err := ValidateCourse(course)
	if err != nil {
		return err
	}
	if err := c.addStudent(s); err != nil {
		return err
	}
	s.registered = append(s.registered, c.CourseID)
	return nil
}
