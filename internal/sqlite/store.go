package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "registrar.db"

// ErrStoreClosed is returned by Write and Read after Close.
var ErrStoreClosed = fmt.Errorf("store is closed: %w", types.ErrIO)

// Store persists a registry in SQLite tables. Each Write replaces the whole
// mirror inside one transaction; Read rebuilds a fresh registry.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates dataDir if needed, opens (or creates) the database in it and
// applies the schema. The caller must Close the store.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w: %w", types.ErrIO, err)
	}

	path := filepath.Join(dataDir, DatabaseFile)
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %w", path, types.ErrIO, err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w: %w", types.ErrIO, err)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database handle. Close is idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// generateUUID generates a new UUID v7 for registration rows.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// Write replaces the stored rows with the contents of reg. Either every row
// is written or the previous contents stay in place.
func (s *Store) Write(reg *types.Registry) error {
	if s.db == nil {
		return ErrStoreClosed
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning write transaction: %w: %w", types.ErrIO, err)
	}
	defer tx.Rollback()

	for _, table := range clearOrder {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w: %w", table, types.ErrIO, err)
		}
	}

	for n, i := range reg.Instructors() {
		if _, err := tx.Exec(
			"INSERT INTO instructors (instructor_id, name, age, email, ordinal) VALUES (?, ?, ?, ?, ?)",
			i.InstructorID, i.Name, i.Age, i.Email, n); err != nil {
			return fmt.Errorf("inserting instructor %s: %w: %w", i.InstructorID, types.ErrIO, err)
		}
	}

	for n, c := range reg.Courses() {
		if _, err := tx.Exec(
			"INSERT INTO courses (course_id, course_name, instructor_id, ordinal) VALUES (?, ?, ?, ?)",
			c.CourseID, c.CourseName, c.InstructorID(), n); err != nil {
			return fmt.Errorf("inserting course %s: %w: %w", c.CourseID, types.ErrIO, err)
		}
	}

	stmt, err := tx.Prepare("INSERT INTO registrations (registration_id, student_id, course_id, ordinal) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing registration insert: %w: %w", types.ErrIO, err)
	}
	defer stmt.Close()

	ordinal := 0
	for n, st := range reg.Students() {
		if _, err := tx.Exec(
			"INSERT INTO students (student_id, name, age, email, ordinal) VALUES (?, ?, ?, ?, ?)",
			st.StudentID, st.Name, st.Age, st.Email, n); err != nil {
			return fmt.Errorf("inserting student %s: %w: %w", st.StudentID, types.ErrIO, err)
		}
		for _, courseID := range st.RegisteredCourses() {
			if _, err := stmt.Exec(generateUUID(), st.StudentID, courseID, ordinal); err != nil {
				return fmt.Errorf("inserting registration %s/%s: %w: %w", st.StudentID, courseID, types.ErrIO, err)
			}
			ordinal++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing write transaction: %w: %w", types.ErrIO, err)
	}
	return nil
}
