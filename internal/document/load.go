// This file implements loading a document and rebuilding the registry.
package document

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Load reads the document at path and rebuilds a fresh registry from it.
// Open and read failures wrap types.ErrIO.
func Load(path string) (*types.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %w", path, types.ErrIO, err)
	}
	defer f.Close()

	doc, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Build(doc)
}

// Build reconstructs entities and relationships from doc. The passes run in
// dependency order: a course needs its instructor to exist, and a student's
// registrations need their courses to exist.
//
//  1. Instructors, indexed by ID.
//  2. Courses, each resolving its owning instructor by ID.
//  3. Students, each registering into its listed courses, which also fills
//     the courses' enrolled lists.
//  4. Every course is assigned to its owning instructor.
//
// The document's "Assigned Courses" and "Enrolled Students" lists are not
// read back: both are derived from course ownership and student
// registrations. Any failure aborts the whole load.
func Build(doc Document) (*types.Registry, error) {
	reg := types.NewRegistry()

	for n, rec := range doc.Instructors {
		i, err := types.NewInstructor(rec.Name, rec.Age, rec.Email, rec.InstructorID)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", SectionInstructors, n, err)
		}
		if err := reg.AddInstructor(i); err != nil {
			return nil, fmt.Errorf("%s record %d: %w", SectionInstructors, n, err)
		}
	}

	for n, rec := range doc.Courses {
		owner, err := reg.Instructor(rec.InstructorID)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", SectionCourses, n,
				&types.LookupError{Kind: types.KindInstructor, ID: rec.InstructorID, Context: "course " + rec.CourseID})
		}
		c, err := types.NewCourse(rec.CourseID, rec.CourseName, owner)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", SectionCourses, n, err)
		}
		if err := reg.AddCourse(c); err != nil {
			return nil, fmt.Errorf("%s record %d: %w", SectionCourses, n, err)
		}
	}

	for n, rec := range doc.Students {
		s, err := types.NewStudent(rec.Name, rec.Age, rec.Email, rec.StudentID)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", SectionStudents, n, err)
		}
		for _, courseID := range rec.RegisteredCourses {
			c, err := reg.Course(courseID)
			if err != nil {
				return nil, fmt.Errorf("%s record %d: %w", SectionStudents, n,
					&types.LookupError{Kind: types.KindCourse, ID: courseID, Context: "student " + rec.StudentID})
			}
			if err := s.Register(c); err != nil {
				return nil, fmt.Errorf("%s record %d: %w", SectionStudents, n, err)
			}
		}
		if err := reg.AddStudent(s); err != nil {
			return nil, fmt.Errorf("%s record %d: %w", SectionStudents, n, err)
		}
	}

	for _, c := range reg.Courses() {
		if err := reg.Assign(c.InstructorID(), c.CourseID); err != nil {
			return nil, fmt.Errorf("assigning %s: %w", c.CourseID, err)
		}
	}

	return reg, nil
}
