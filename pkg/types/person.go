package types

import "fmt"

// Kind tags the variant of a registry entity.
type Kind string

// Entity kinds.
const (
	KindStudent    Kind = "student"
	KindInstructor Kind = "instructor"
	KindCourse     Kind = "course"
)

// Entity is implemented by *Student, *Instructor and *Course.
type Entity interface {
	Kind() Kind
	ID() string
}

// Person holds the fields shared by students and instructors. It carries no
// identity of its own; the identifier lives on the variant.
type Person struct {
	Name string
	Age  int

	// Email is internal to the person record. It is persisted but listings
	// and introductions leave it out; do not show it casually.
	Email string
}

// newPerson validates the shared person fields.
func newPerson(name string, age int, email string) (Person, error) {
	var err error
	var p Person
	if p.Name, err = ValidateName(name); err != nil {
		return Person{}, err
	}
	if p.Age, err = ValidateAge(age); err != nil {
		return Person{}, err
	}
	if p.Email, err = ValidateEmail(email); err != nil {
		return Person{}, err
	}
	return p, nil
}

// Introduce returns a one-line greeting with the person's name and age.
func (p Person) Introduce() string {
	return fmt.Sprintf("Hello, my name is %s, and I am %d years old.", p.Name, p.Age)
}
