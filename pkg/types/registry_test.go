package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddAndResolve(t *testing.T) {
	r := NewRegistry()
	alice := mustInstructor(t, "alice", "1000")
	require.NoError(t, r.AddInstructor(alice))

	c := mustCourse(t, "CSE101", alice)
	require.NoError(t, r.AddCourse(c))

	s := mustStudent(t, "sammy", "202202056")
	require.NoError(t, r.AddStudent(s))

	got, err := r.Instructor("1000")
	require.NoError(t, err)
	assert.Same(t, alice, got)

	gotC, err := r.Course("CSE101")
	require.NoError(t, err)
	assert.Same(t, c, gotC)

	gotS, err := r.Student("202202056")
	require.NoError(t, err)
	assert.Same(t, s, gotS)

	ni, nc, ns := r.Len()
	assert.Equal(t, []int{1, 1, 1}, []int{ni, nc, ns})
}

func TestRegistryDuplicateIDs(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddInstructor(mustInstructor(t, "alice", "1000")))
	assert.ErrorIs(t, r.AddInstructor(mustInstructor(t, "bobby", "1000")), ErrDuplicateID)

	alice, err := r.Instructor("1000")
	require.NoError(t, err)
	assert.Equal(t, "alice", alice.Name, "first registration wins")

	require.NoError(t, r.AddCourse(mustCourse(t, "CSE101", alice)))
	assert.ErrorIs(t, r.AddCourse(mustCourse(t, "CSE101", alice)), ErrDuplicateID)

	require.NoError(t, r.AddStudent(mustStudent(t, "sammy", "202202056")))
	assert.ErrorIs(t, r.AddStudent(mustStudent(t, "tina", "202202056")), ErrDuplicateID)
}

func TestRegistryAddCourseRequiresKnownInstructor(t *testing.T) {
	r := NewRegistry()
	stranger := mustInstructor(t, "stranger", "9999")

	err := r.AddCourse(mustCourse(t, "CSE101", stranger))
	assert.ErrorIs(t, err, ErrLookup)

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindInstructor, lerr.Kind)
	assert.Equal(t, "9999", lerr.ID)
}

func TestRegistryLookupMisses(t *testing.T) {
	r := NewRegistry()

	_, err := r.Student("202202056")
	assert.ErrorIs(t, err, ErrLookup)
	_, err = r.Course("CSE101")
	assert.ErrorIs(t, err, ErrLookup)
	_, err = r.Instructor("1000")
	assert.ErrorIs(t, err, ErrLookup)

	_, err = r.Find("1000")
	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindInstructor, lerr.Kind)
}

func TestRegistryInsertionOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"1002", "1000", "1001"} {
		require.NoError(t, r.AddInstructor(mustInstructor(t, "i"+id, id)))
	}

	var ids []string
	for _, i := range r.Instructors() {
		ids = append(ids, i.InstructorID)
	}
	assert.Equal(t, []string{"1002", "1000", "1001"}, ids)
}

func TestRegistryRegisterAndAssign(t *testing.T) {
	r := NewRegistry()
	alice := mustInstructor(t, "alice", "1000")
	bobby := mustInstructor(t, "bobby", "1001")
	require.NoError(t, r.AddInstructor(alice))
	require.NoError(t, r.AddInstructor(bobby))
	require.NoError(t, r.AddCourse(mustCourse(t, "CSE101", alice)))
	require.NoError(t, r.AddStudent(mustStudent(t, "sammy", "202202056")))

	require.NoError(t, r.Register("202202056", "CSE101"))
	c, _ := r.Course("CSE101")
	assert.Equal(t, []string{"202202056"}, c.EnrolledStudents())

	assert.ErrorIs(t, r.Register("202202056", "CSE999"), ErrLookup)
	assert.ErrorIs(t, r.Register("999999999", "CSE101"), ErrLookup)

	require.NoError(t, r.Assign("1000", "CSE101"))
	assert.Equal(t, []string{"CSE101"}, alice.AssignedCourses())

	assert.ErrorIs(t, r.Assign("1001", "CSE101"), ErrNotOwner)
	assert.Empty(t, bobby.AssignedCourses())
}

func TestRegistryCreateCourseAssignsOwner(t *testing.T) {
	r := NewRegistry()
	alice := mustInstructor(t, "alice", "1000")
	require.NoError(t, r.AddInstructor(alice))

	c, err := r.CreateCourse("EECE435L", "Software Tools Lab", "1000")
	require.NoError(t, err)
	assert.Equal(t, "1000", c.InstructorID())
	assert.Equal(t, []string{"EECE435L"}, alice.AssignedCourses())

	_, err = r.CreateCourse("CSE101", "Intro", "1001")
	assert.ErrorIs(t, err, ErrLookup)

	_, err = r.CreateCourse("cse101", "Intro", "1000")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = r.CreateCourse("EECE435L", "Again", "1000")
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, []string{"EECE435L"}, alice.AssignedCourses(), "failed create must not assign")
}

func TestRegistryListing(t *testing.T) {
	r := NewRegistry()
	alice := mustInstructor(t, "alice", "1000")
	require.NoError(t, r.AddInstructor(alice))
	_, err := r.CreateCourse("CSE101", "Intro", "1000")
	require.NoError(t, err)
	require.NoError(t, r.AddStudent(mustStudent(t, "sammy", "202202056")))
	require.NoError(t, r.Register("202202056", "CSE101"))

	rows := r.Listing()
	require.Len(t, rows, 3)
	assert.Equal(t, ListingRow{Kind: KindStudent, ID: "202202056", Name: "sammy", Age: 20, Links: []string{"CSE101"}}, rows[0])
	assert.Equal(t, ListingRow{Kind: KindInstructor, ID: "1000", Name: "alice", Age: 40, Links: []string{"CSE101"}}, rows[1])
	assert.Equal(t, ListingRow{Kind: KindCourse, ID: "CSE101", Name: "Intro", Instructor: "1000", Links: []string{"202202056"}}, rows[2])

	courses := r.Listing(KindCourse)
	require.Len(t, courses, 1)
	assert.Equal(t, "CSE101", courses[0].ID)

	empty := NewRegistry().Listing()
	assert.Empty(t, empty)
}

func TestRegistryFind(t *testing.T) {
	r := NewRegistry()
	alice := mustInstructor(t, "alice", "1000")
	require.NoError(t, r.AddInstructor(alice))
	_, err := r.CreateCourse("CSE101", "Intro", "1000")
	require.NoError(t, err)

	e, err := r.Find("CSE101")
	require.NoError(t, err)
	assert.Equal(t, KindCourse, e.Kind())

	e, err = r.Find("1000")
	require.NoError(t, err)
	assert.Equal(t, KindInstructor, e.Kind())
}
