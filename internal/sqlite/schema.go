// Package sqlite mirrors a registry into a SQLite database. The tables are
// the store's own layout and need not match the document sections.
package sqlite

// Schema DDL. Ordinals keep insertion order so a read rebuilds lists in the
// order they were written.
const (
	createInstructors = `CREATE TABLE IF NOT EXISTS instructors (
    instructor_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    email TEXT NOT NULL,
    ordinal INTEGER NOT NULL
);`

	createCourses = `CREATE TABLE IF NOT EXISTS courses (
    course_id TEXT PRIMARY KEY,
    course_name TEXT NOT NULL,
    instructor_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    FOREIGN KEY (instructor_id) REFERENCES instructors(instructor_id)
);`

	createStudents = `CREATE TABLE IF NOT EXISTS students (
    student_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    email TEXT NOT NULL,
    ordinal INTEGER NOT NULL
);`

	createRegistrations = `CREATE TABLE IF NOT EXISTS registrations (
    registration_id TEXT PRIMARY KEY,
    student_id TEXT NOT NULL,
    course_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    FOREIGN KEY (student_id) REFERENCES students(student_id),
    FOREIGN KEY (course_id) REFERENCES courses(course_id)
);`

	createIndexes = `
CREATE INDEX IF NOT EXISTS idx_courses_instructor ON courses(instructor_id);
CREATE INDEX IF NOT EXISTS idx_registrations_student ON registrations(student_id);
CREATE INDEX IF NOT EXISTS idx_registrations_course ON registrations(course_id);
`
)

// schemaStatements lists the DDL in dependency order.
var schemaStatements = []string{
	createInstructors,
	createCourses,
	createStudents,
	createRegistrations,
	createIndexes,
}

// clearOrder lists tables so that referencing rows go before referenced ones.
var clearOrder = []string{"registrations", "students", "courses", "instructors"}
