package types

import "slices"

// ListingRow is one entity flattened for display. Links holds the related
// IDs: registered courses for a student, assigned courses for an
// instructor, enrolled students for a course. Email is left out.
type ListingRow struct {
	Kind       Kind     `json:"kind" yaml:"kind"`
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Age        int      `json:"age" yaml:"age"`
	Instructor string   `json:"instructor,omitempty" yaml:"instructor,omitempty"`
	Links      []string `json:"links" yaml:"links"`
}

// Row flattens a single entity.
func Row(e Entity) ListingRow {
	switch v := e.(type) {
	case *Student:
		return ListingRow{Kind: KindStudent, ID: v.StudentID, Name: v.Name, Age: v.Age, Links: nonNil(v.RegisteredCourses())}
	case *Instructor:
		return ListingRow{Kind: KindInstructor, ID: v.InstructorID, Name: v.Name, Age: v.Age, Links: nonNil(v.AssignedCourses())}
	case *Course:
		return ListingRow{Kind: KindCourse, ID: v.CourseID, Name: v.CourseName, Instructor: v.InstructorID(), Links: nonNil(v.EnrolledStudents())}
	default:
		return ListingRow{}
	}
}

// Listing flattens the registry for display: students, then instructors,
// then courses, each in insertion order. An empty kinds argument lists all
// three; otherwise only the named kinds are included, still in that order.
func (r *Registry) Listing(kinds ...Kind) []ListingRow {
	want := func(k Kind) bool {
		return len(kinds) == 0 || slices.Contains(kinds, k)
	}

	var rows []ListingRow
	if want(KindStudent) {
		for _, s := range r.Students() {
			rows = append(rows, Row(s))
		}
	}
	if want(KindInstructor) {
		for _, i := range r.Instructors() {
			rows = append(rows, Row(i))
		}
	}
	if want(KindCourse) {
		for _, c := range r.Courses() {
			rows = append(rows, Row(c))
		}
	}
	return rows
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
