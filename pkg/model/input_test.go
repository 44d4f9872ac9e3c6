package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDirectory    = "../../testdata/semesters/"
	invalidDirectory = "../../testdata/invalid/"
)

func TestParseCredits(t *testing.T) {
	scenarios := []struct {
		credits  string
		expected Credits
	}{
		{"3", Credits{Theory: 3}},
		{"3:1:2", Credits{Theory: 3, Tutorial: 1, Practical: 2}},
		{" 4 : 1 ", Credits{Theory: 4, Tutorial: 1}},
		{"0", Credits{}},
		{"abc", Credits{}},
		{"", Credits{}},
		{"abc:2:1", Credits{Tutorial: 2, Practical: 1}},
		{"-1", Credits{}},
		{"2.5", Credits{}},
		{"3:x:1:9", Credits{Theory: 3, Practical: 1}},
	}

	for _, scenario := range scenarios {
		assert.Equal(t, scenario.expected, ParseCredits(scenario.credits), "credits %q", scenario.credits)
	}
}

func TestSubjectOccupantAndSessions(t *testing.T) {
	subject := Subject{Name: "Math", Teacher: "Mr. A", Credits: "2:1:1"}

	assert.Equal(t, "Math (Theory) - Mr. A", subject.Occupant())
	assert.Equal(t, uint64(2), subject.Sessions())
	assert.Equal(t, "2:1:1", subject.ParsedCredits().String())
}

func TestSemestersFromJson(t *testing.T) {
	//** Act
	semesters, err := SemestersFromFile(testDirectory + "semesters.json")

	//** Assert
	require.NoError(t, err)
	require.Len(t, semesters, 2)

	first := semesters[0]
	assert.Equal(t, "Semester 3", first.Semester)
	assert.Equal(t, "2025-08-04", first.TermStart)
	assert.Equal(t, "LT-204", first.RoomNumber)
	assert.Equal(t, "64", first.NumStudents)
	require.Len(t, first.Subjects, 3)
	assert.Equal(t, Subject{Name: "Data Structures", Teacher: "Dr. Rao", Credits: "3:1:2"}, first.Subjects[0])
	assert.Equal(t, "4", first.Subjects[1].Credits)
	assert.Equal(t, uint64(0), first.Subjects[2].Sessions())

	assert.Equal(t, "Semester 5", semesters[1].Semester)
	assert.Empty(t, semesters[1].TermStart)
}

func TestSemesterFromYaml(t *testing.T) {
	semesters, err := SemestersFromFile(testDirectory + "semester.yaml")

	require.NoError(t, err)
	require.Len(t, semesters, 1)
	assert.Equal(t, "Semester 1", semesters[0].Semester)
	assert.Equal(t, "first-year", semesters[0].ExcelName)
	assert.Equal(t, "60", semesters[0].NumStudents)
	assert.Equal(t, []Subject{
		{Name: "Calculus", Teacher: "Prof. Menon", Credits: "3:1:0"},
		{Name: "Physics", Teacher: "Dr. Bose", Credits: "3"},
	}, semesters[0].Subjects)
}

func TestSemestersFromFileErrors(t *testing.T) {
	t.Run("Missing subject name", func(t *testing.T) {
		_, err := SemestersFromFile(invalidDirectory + "missing_name.json")
		assert.ErrorIs(t, err, ErrInvalidSemester)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		_, err := SemestersFromFile(testDirectory + "semesters.txt")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := SemestersFromFile(testDirectory + "nothing.json")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed json", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(file, []byte("{"), 0o644))
		_, err := SemestersFromFile(file)
		assert.Error(t, err)
	})

	t.Run("Empty list", func(t *testing.T) {
		_, err := DecodeSemesters([]any{})
		assert.ErrorIs(t, err, ErrNoSemesters)
	})

	t.Run("Scalar document", func(t *testing.T) {
		_, err := DecodeSemesters("semester")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
