package types

import "fmt"

// Registry is the in-memory arena of all entities: one ID-keyed map per
// kind plus insertion order. Relationship lists on entities hold IDs that
// resolve through the registry. A Registry is not safe for concurrent use.
type Registry struct {
	instructors     map[string]*Instructor
	instructorOrder []string
	courses         map[string]*Course
	courseOrder     []string
	students        map[string]*Student
	studentOrder    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		instructors: make(map[string]*Instructor),
		courses:     make(map[string]*Course),
		students:    make(map[string]*Student),
	}
}

// AddInstructor indexes an instructor by ID.
// Returns ErrDuplicateID if the ID is already taken.
func (r *Registry) AddInstructor(i *Instructor) error {
	i, err := ValidateInstructor(i)
	if err != nil {
		return err
	}
	if _, ok := r.instructors[i.InstructorID]; ok {
		return fmt.Errorf("instructor %s: %w", i.InstructorID, ErrDuplicateID)
	}
	r.instructors[i.InstructorID] = i
	r.instructorOrder = append(r.instructorOrder, i.InstructorID)
	return nil
}

// AddCourse indexes a course by ID. The owning instructor must already be
// in the registry. The course is not assigned to the instructor.
func (r *Registry) AddCourse(c *Course) error {
	c, err := ValidateCourse(c)
	if err != nil {
		return err
	}
	if _, ok := r.courses[c.CourseID]; ok {
		return fmt.Errorf("course %s: %w", c.CourseID, ErrDuplicateID)
	}
	if _, ok := r.instructors[c.InstructorID()]; !ok {
		return &LookupError{Kind: KindInstructor, ID: c.InstructorID(), Context: "course " + c.CourseID}
	}
	r.courses[c.CourseID] = c
	r.courseOrder = append(r.courseOrder, c.CourseID)
	return nil
}

// AddStudent indexes a student by ID.
func (r *Registry) AddStudent(s *Student) error {
	s, err := ValidateStudent(s)
	if err != nil {
		return err
	}
	if _, ok := r.students[s.StudentID]; ok {
		return fmt.Errorf("student %s: %w", s.StudentID, ErrDuplicateID)
	}
	r.students[s.StudentID] = s
	r.studentOrder = append(r.studentOrder, s.StudentID)
	return nil
}

// Instructor returns the instructor with the given ID or a *LookupError.
func (r *Registry) Instructor(id string) (*Instructor, error) {
	i, ok := r.instructors[id]
	if !ok {
		return nil, &LookupError{Kind: KindInstructor, ID: id}
	}
	return i, nil
}

// Course returns the course with the given ID or a *LookupError.
func (r *Registry) Course(id string) (*Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, &LookupError{Kind: KindCourse, ID: id}
	}
	return c, nil
}

// Student returns the student with the given ID or a *LookupError.
func (r *Registry) Student(id string) (*Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, &LookupError{Kind: KindStudent, ID: id}
	}
	return s, nil
}

// Instructors returns all instructors in insertion order.
func (r *Registry) Instructors() []*Instructor {
	out := make([]*Instructor, 0, len(r.instructorOrder))
	for _, id := range r.instructorOrder {
		out = append(out, r.instructors[id])
	}
	return out
}

// Courses returns all courses in insertion order.
func (r *Registry) Courses() []*Course {
	out := make([]*Course, 0, len(r.courseOrder))
	for _, id := range r.courseOrder {
		out = append(out, r.courses[id])
	}
	return out
}

// Students returns all students in insertion order.
func (r *Registry) Students() []*Student {
	out := make([]*Student, 0, len(r.studentOrder))
	for _, id := range r.studentOrder {
		out = append(out, r.students[id])
	}
	return out
}

// Len returns the number of instructors, courses and students.
func (r *Registry) Len() (instructors, courses, students int) {
	return len(r.instructors), len(r.courses), len(r.students)
}

// Find resolves an ID of any kind. Student, instructor and course ID
// formats do not overlap, so at most one kind can match.
func (r *Registry) Find(id string) (Entity, error) {
	if s, ok := r.students[id]; ok {
		return s, nil
	}
	if i, ok := r.instructors[id]; ok {
		return i, nil
	}
	if c, ok := r.courses[id]; ok {
		return c, nil
	}
	return nil, &LookupError{Kind: kindForID(id), ID: id}
}

// kindForID guesses the kind an ID was meant to name from its shape.
func kindForID(id string) Kind {
	switch {
	case studentIDPattern.MatchString(id):
		return KindStudent
	case instructorIDPattern.MatchString(id):
		return KindInstructor
	default:
		return KindCourse
	}
}

// Register resolves a student and a course by ID and links them in both
// directions with Student.Register.
func (r *Registry) Register(studentID, courseID string) error {
	s, err := r.Student(studentID)
	if err != nil {
		return err
	}
	c, err := r.Course(courseID)
	if err != nil {
		return err
	}
	return s.Register(c)
}

// Assign resolves an instructor and a course by ID and appends the course to
// the instructor's assigned list. The instructor must own the course.
func (r *Registry) Assign(instructorID, courseID string) error {
	i, err := r.Instructor(instructorID)
	if err != nil {
		return err
	}
	c, err := r.Course(courseID)
	if err != nil {
		return err
	}
	if c.InstructorID() != i.InstructorID {
		return fmt.Errorf("course %s is owned by %s, not %s: %w",
			c.CourseID, c.InstructorID(), i.InstructorID, ErrNotOwner)
	}
	return i.Assign(c)
}

// CreateCourse builds a course owned by instructorID, adds it to the
// registry and assigns it to the instructor, so both sides of ownership are
// in step after one call.
func (r *Registry) CreateCourse(courseID, courseName, instructorID string) (*Course, error) {
	i, err := r.Instructor(instructorID)
	if err != nil {
		return nil, err
	}
	c, err := NewCourse(courseID, courseName, i)
	if err != nil {
		return nil, err
	}
	if err := r.AddCourse(c); err != nil {
		return nil, err
	}
	if err := i.Assign(c); err != nil {
		return nil, err
	}
	return c, nil
}
