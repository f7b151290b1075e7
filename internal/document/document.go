// Package document saves a registry to, and rebuilds it from, the
// three-section school document. Entities reference each other only by ID
// in the document; Load re-establishes every link through ID lookup.
package document

import (
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Section names in the persisted document.
const (
	SectionInstructors = "Instructor"
	SectionCourses     = "Courses"
	SectionStudents    = "Students"
)

// Document is the persisted form of a registry.
type Document struct {
	Instructors []InstructorRecord `json:"Instructor" yaml:"Instructor"`
	Courses     []CourseRecord     `json:"Courses" yaml:"Courses"`
	Students    []StudentRecord    `json:"Students" yaml:"Students"`
}

// InstructorRecord is one entry of the Instructor section.
type InstructorRecord struct {
	Name            string   `json:"Name" yaml:"Name"`
	Age             int      `json:"Age" yaml:"Age"`
	Email           string   `json:"Email" yaml:"Email"`
	InstructorID    string   `json:"InstructorID" yaml:"InstructorID"`
	AssignedCourses []string `json:"Assigned Courses" yaml:"Assigned Courses"`
}

// CourseRecord is one entry of the Courses section.
type CourseRecord struct {
	CourseID         string   `json:"CourseID" yaml:"CourseID"`
	CourseName       string   `json:"Course Name" yaml:"Course Name"`
	InstructorID     string   `json:"InstructorID" yaml:"InstructorID"`
	EnrolledStudents []string `json:"Enrolled Students" yaml:"Enrolled Students"`
}

// StudentRecord is one entry of the Students section.
type StudentRecord struct {
	Name              string   `json:"Name" yaml:"Name"`
	Age               int      `json:"Age" yaml:"Age"`
	Email             string   `json:"Email" yaml:"Email"`
	StudentID         string   `json:"StudentID" yaml:"StudentID"`
	RegisteredCourses []string `json:"Registered Courses" yaml:"Registered Courses"`
}

// Flatten builds a Document from three ordered collections. Relationship
// lists become ID lists; no entity body is nested inside another.
func Flatten(instructors []*types.Instructor, courses []*types.Course, students []*types.Student) Document {
	doc := Document{
		Instructors: make([]InstructorRecord, 0, len(instructors)),
		Courses:     make([]CourseRecord, 0, len(courses)),
		Students:    make([]StudentRecord, 0, len(students)),
	}
	for _, i := range instructors {
		doc.Instructors = append(doc.Instructors, InstructorRecord{
			Name:            i.Name,
			Age:             i.Age,
			Email:           i.Email,
			InstructorID:    i.InstructorID,
			AssignedCourses: ids(i.AssignedCourses()),
		})
	}
	for _, c := range courses {
		doc.Courses = append(doc.Courses, CourseRecord{
			CourseID:         c.CourseID,
			CourseName:       c.CourseName,
			InstructorID:     c.InstructorID(),
			EnrolledStudents: ids(c.EnrolledStudents()),
		})
	}
	for _, s := range students {
		doc.Students = append(doc.Students, StudentRecord{
			Name:              s.Name,
			Age:               s.Age,
			Email:             s.Email,
			StudentID:         s.StudentID,
			RegisteredCourses: ids(s.RegisteredCourses()),
		})
	}
	return doc
}

// FlattenRegistry builds a Document from every entity in r, in insertion
// order.
func FlattenRegistry(r *types.Registry) Document {
	return Flatten(r.Instructors(), r.Courses(), r.Students())
}

// ids keeps empty lists as [] rather than null in the encoded document.
func ids(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
