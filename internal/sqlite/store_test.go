package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func schoolRegistry(t *testing.T) *types.Registry {
	t.Helper()
	reg := types.NewRegistry()

	for _, in := range []struct{ name, email, id string }{
		{"Alice Smith", "alice@aub.edu", "1000"},
		{"Bob Johnson", "bob@aub.edu", "2000"},
	} {
		i, err := types.NewInstructor(in.name, 45, in.email, in.id)
		require.NoError(t, err)
		require.NoError(t, reg.AddInstructor(i))
	}
	for _, c := range []struct{ id, name, owner string }{
		{"CSE101", "Intro to Computer Science", "1000"},
		{"EECE435L", "Software Tools Lab", "2000"},
		{"CSE102", "Data Structures", "1000"},
	} {
		_, err := reg.CreateCourse(c.id, c.name, c.owner)
		require.NoError(t, err)
	}
	for _, st := range []struct{ name, email, id string }{
		{"Sammy", "sna61@aub.edu", "202202056"},
		{"Tala", "tk01@aub.edu", "202101234"},
	} {
		s, err := types.NewStudent(st.name, 20, st.email, st.id)
		require.NoError(t, err)
		require.NoError(t, reg.AddStudent(s))
	}
	require.NoError(t, reg.Register("202202056", "EECE435L"))
	require.NoError(t, reg.Register("202202056", "CSE101"))
	require.NoError(t, reg.Register("202101234", "CSE101"))
	return reg
}

func TestOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := Open(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, DatabaseFile))
	assert.NoError(t, err, "database file created")
	assert.Equal(t, filepath.Join(dir, DatabaseFile), s.Path())

	require.NoError(t, s.Close())
	assert.NoError(t, s.Close(), "second Close should not error")
}

func TestOpenTwiceKeepsRows(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Write(schoolRegistry(t)))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	reg, err := s.Read()
	require.NoError(t, err)
	i, c, st := reg.Len()
	assert.Equal(t, []int{2, 3, 2}, []int{i, c, st})
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := openStore(t)
	want := schoolRegistry(t)
	require.NoError(t, s.Write(want))

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, want.Listing(), got.Listing())

	cse101, err := got.Course("CSE101")
	require.NoError(t, err)
	assert.Equal(t, []string{"202202056", "202101234"}, cse101.EnrolledStudents())
	assert.Equal(t, "1000", cse101.InstructorID())

	alice, err := got.Instructor("1000")
	require.NoError(t, err)
	assert.Equal(t, []string{"CSE101", "CSE102"}, alice.AssignedCourses())

	sammy, err := got.Student("202202056")
	require.NoError(t, err)
	assert.Equal(t, []string{"EECE435L", "CSE101"}, sammy.RegisteredCourses(), "registration order preserved")
}

func TestWriteReplacesPreviousContents(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Write(schoolRegistry(t)))

	small := types.NewRegistry()
	i, err := types.NewInstructor("Carol", 50, "carol@aub.edu", "3000")
	require.NoError(t, err)
	require.NoError(t, small.AddInstructor(i))
	require.NoError(t, s.Write(small))

	got, err := s.Read()
	require.NoError(t, err)
	ni, nc, ns := got.Len()
	assert.Equal(t, []int{1, 0, 0}, []int{ni, nc, ns})
	_, err = got.Instructor("3000")
	assert.NoError(t, err)
}

func TestWriteKeepsDuplicateRegistrations(t *testing.T) {
	s := openStore(t)
	reg := schoolRegistry(t)
	require.NoError(t, reg.Register("202101234", "CSE101"))
	require.NoError(t, s.Write(reg))

	got, err := s.Read()
	require.NoError(t, err)
	tala, err := got.Student("202101234")
	require.NoError(t, err)
	assert.Equal(t, []string{"CSE101", "CSE101"}, tala.RegisteredCourses())
}

func TestReadEmpty(t *testing.T) {
	s := openStore(t)
	got, err := s.Read()
	require.NoError(t, err)
	ni, nc, ns := got.Len()
	assert.Zero(t, ni+nc+ns)
}

func TestRegistrationRowsGetDistinctIDs(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Write(schoolRegistry(t)))

	var total, distinct int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*), COUNT(DISTINCT registration_id) FROM registrations").Scan(&total, &distinct))
	assert.Equal(t, 3, total)
	assert.Equal(t, total, distinct)
}

func TestWriteAfterCloseFails(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = s.Write(types.NewRegistry())
	assert.ErrorIs(t, err, types.ErrIO)
}

func TestReadAfterCloseFails(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Read()
	assert.ErrorIs(t, err, ErrStoreClosed)
}
