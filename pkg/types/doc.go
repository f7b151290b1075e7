// Package types defines the registry entities (Student, Instructor, Course),
// their field validators, the Registry arena that indexes them by ID, the
// error taxonomy, and the persistence Config.
//
// Entities are built only through validated constructors and change only
// through the linking operations Student.Register and Instructor.Assign.
// Relationship lists hold IDs, resolved through a Registry.
package types
