// This file implements reading the mirror back into a registry.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/registrar/internal/document"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Read rebuilds a fresh registry from the stored rows. Rows are gathered
// into document records and rebuilt with document.Build, so the mirror
// follows the same dependency-ordered passes as a document load.
func (s *Store) Read() (*types.Registry, error) {
	if s.db == nil {
		return nil, ErrStoreClosed
	}
	var doc document.Document

	instructors, err := s.db.Query("SELECT instructor_id, name, age, email FROM instructors ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying instructors: %w: %w", types.ErrIO, err)
	}
	err = scanAll(instructors, func(rows *sql.Rows) error {
		var rec document.InstructorRecord
		if err := rows.Scan(&rec.InstructorID, &rec.Name, &rec.Age, &rec.Email); err != nil {
			return err
		}
		doc.Instructors = append(doc.Instructors, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading instructors: %w: %w", types.ErrIO, err)
	}

	courses, err := s.db.Query("SELECT course_id, course_name, instructor_id FROM courses ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w: %w", types.ErrIO, err)
	}
	err = scanAll(courses, func(rows *sql.Rows) error {
		var rec document.CourseRecord
		if err := rows.Scan(&rec.CourseID, &rec.CourseName, &rec.InstructorID); err != nil {
			return err
		}
		doc.Courses = append(doc.Courses, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading courses: %w: %w", types.ErrIO, err)
	}

	students, err := s.db.Query("SELECT student_id, name, age, email FROM students ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying students: %w: %w", types.ErrIO, err)
	}
	index := make(map[string]int)
	err = scanAll(students, func(rows *sql.Rows) error {
		var rec document.StudentRecord
		if err := rows.Scan(&rec.StudentID, &rec.Name, &rec.Age, &rec.Email); err != nil {
			return err
		}
		index[rec.StudentID] = len(doc.Students)
		doc.Students = append(doc.Students, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading students: %w: %w", types.ErrIO, err)
	}

	registrations, err := s.db.Query("SELECT student_id, course_id FROM registrations ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying registrations: %w: %w", types.ErrIO, err)
	}
	err = scanAll(registrations, func(rows *sql.Rows) error {
		var studentID, courseID string
		if err := rows.Scan(&studentID, &courseID); err != nil {
			return err
		}
		n, ok := index[studentID]
		if !ok {
			return fmt.Errorf("registration for unknown student %s", studentID)
		}
		doc.Students[n].RegisteredCourses = append(doc.Students[n].RegisteredCourses, courseID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading registrations: %w: %w", types.ErrIO, err)
	}

	return document.Build(doc)
}

// scanAll calls fn for each row and closes rows.
func scanAll(rows *sql.Rows, fn func(*sql.Rows) error) error {
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
