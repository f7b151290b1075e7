package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field patterns. Digits are ASCII only; \d in Go's RE2 already means [0-9].
var (
	emailPattern        = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	studentIDPattern    = regexp.MustCompile(`^\d{9}$`)
	instructorIDPattern = regexp.MustCompile(`^\d{4}$`)
	courseIDPattern     = regexp.MustCompile(`^[A-Z]{1,4}\d{3}[A-Z]?$`)
)

// Custom validator tags registered on fieldValidate.
const (
	tagEmail        = "registrar_email"
	tagStudentID    = "studentid"
	tagInstructorID = "instructorid"
	tagCourseID     = "courseid"
	tagText         = "utf8text"
)

// fieldValidate evaluates single-value field rules. It holds no per-call
// state, so the validators stay pure.
var fieldValidate *validator.Validate

func init() {
	fieldValidate = validator.New()

	_ = fieldValidate.RegisterValidation(tagEmail, matchPattern(emailPattern))
	_ = fieldValidate.RegisterValidation(tagStudentID, matchPattern(studentIDPattern))
	_ = fieldValidate.RegisterValidation(tagInstructorID, matchPattern(instructorIDPattern))
	_ = fieldValidate.RegisterValidation(tagCourseID, matchPattern(courseIDPattern))
	_ = fieldValidate.RegisterValidation(tagText, func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})
}

func matchPattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// checkVar runs tag against value and converts a rule failure into a
// *ValidationError for field.
func checkVar(field string, value any, tag, reason string) error {
	if err := fieldValidate.Var(value, tag); err != nil {
		return newValidationError(field, value, reason)
	}
	return nil
}

// ValidateEmail accepts local@domain.ext where the local part holds letters,
// digits, '.', '_' or '-', the domain holds letters, digits or '-', and the
// extension holds letters, digits, '-' or '.'.
func ValidateEmail(email string) (string, error) {
	if err := checkVar("email", email, tagEmail, "must look like local@domain.ext"); err != nil {
		return "", err
	}
	return email, nil
}

// ValidateName accepts any non-empty, valid UTF-8 string. Invalid UTF-8
// would not survive a save and load unchanged.
func ValidateName(name string) (string, error) {
	if err := checkVar("name", name, "required,"+tagText, "must be a non-empty UTF-8 string"); err != nil {
		return "", err
	}
	return name, nil
}

// ValidateCourseName accepts any valid UTF-8 string, including "".
func ValidateCourseName(name string) (string, error) {
	if err := checkVar("course name", name, tagText, "must be a UTF-8 string"); err != nil {
		return "", err
	}
	return name, nil
}

// ValidateAge accepts non-negative integers.
func ValidateAge(age int) (int, error) {
	if err := checkVar("age", age, "gte=0", "must be a non-negative integer"); err != nil {
		return 0, err
	}
	return age, nil
}

// ParseAge converts a raw text field to an age. Surrounding whitespace is
// ignored; anything that is not a base-10 integer is rejected.
func ParseAge(raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newValidationError("age", raw, "must be a non-negative integer")
	}
	return ValidateAge(age)
}

// ValidateStudentID accepts exactly nine digits. Leading zeros are kept.
func ValidateStudentID(id string) (string, error) {
	if err := checkVar("student id", id, tagStudentID, "must be exactly 9 digits"); err != nil {
		return "", err
	}
	return id, nil
}

// ValidateInstructorID accepts exactly four digits.
func ValidateInstructorID(id string) (string, error) {
	if err := checkVar("instructor id", id, tagInstructorID, "must be exactly 4 digits"); err != nil {
		return "", err
	}
	return id, nil
}

// ValidateCourseID accepts 1-4 uppercase letters, three digits and an
// optional uppercase suffix letter, e.g. "CSE101" or "EECE435L".
func ValidateCourseID(id string) (string, error) {
	if err := checkVar("course id", id, tagCourseID, "must match [A-Z]{1,4}[0-9]{3}[A-Z]?"); err != nil {
		return "", err
	}
	return id, nil
}

// ValidateStudent checks that v is a constructed *Student.
func ValidateStudent(v any) (*Student, error) {
	s, ok := v.(*Student)
	if !ok || s == nil {
		return nil, newValidationError("student", describe(v), "not a student")
	}
	if _, err := ValidateStudentID(s.StudentID); err != nil {
		return nil, err
	}
	return s, nil
}

// ValidateInstructor checks that v is a constructed *Instructor.
func ValidateInstructor(v any) (*Instructor, error) {
	i, ok := v.(*Instructor)
	if !ok || i == nil {
		return nil, newValidationError("instructor", describe(v), "not an instructor")
	}
	if _, err := ValidateInstructorID(i.InstructorID); err != nil {
		return nil, err
	}
	return i, nil
}

// ValidateCourse checks that v is a constructed *Course.
func ValidateCourse(v any) (*Course, error) {
	c, ok := v.(*Course)
	if !ok || c == nil {
		return nil, newValidationError("course", describe(v), "not a course")
	}
	if _, err := ValidateCourseID(c.CourseID); err != nil {
		return nil, err
	}
	return c, nil
}

// describe renders a rejected entity argument for error messages without
// dumping its fields.
func describe(v any) string {
	if e, ok := v.(Entity); ok && e != nil {
		return string(e.Kind())
	}
	return fmt.Sprintf("%T", v)
}
