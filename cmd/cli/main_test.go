package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDirectory = "../../testdata/semesters/"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "")

	var output bytes.Buffer
	root := newRootCommand()
	root.SetOut(&output)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return output.String(), err
}

func TestGenerateWritesEverySemester(t *testing.T) {
	//** Arrange
	out := t.TempDir()
	textfile := filepath.Join(t.TempDir(), "semtable.prom")
	t.Setenv("SEMTABLE_METRICS__TEXTFILE", textfile)

	//** Act
	output, err := run(t, "generate", "--file", testDirectory+"semesters.json", "--out", out, "--format", "xlsx,csv", "--seed", "3")

	//** Assert
	require.NoError(t, err)
	for _, file := range []string{"timetable.xlsx", "timetable.csv", "timetable-2.xlsx", "timetable-2.csv"} {
		_, statErr := os.Stat(filepath.Join(out, file))
		assert.NoError(t, statErr, file)
	}
	assert.Len(t, strings.Fields(output), 4)

	metrics, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "semtable_placement_attempts_total")
}

func TestGenerateHonoursSemesterFileName(t *testing.T) {
	out := t.TempDir()

	_, err := run(t, "generate", "--file", testDirectory+"semester.yaml", "--out", out, "--format", "ics")

	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(out, "first-year.ics"))
	assert.NoError(t, statErr)
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := run(t, "generate", "--file", testDirectory+"semesters.json", "--config", filepath.Join(t.TempDir(), "custom.yaml"))

	assert.Error(t, err)
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "generate", "--file", testDirectory+"semesters.json", "--out", t.TempDir(), "--format", "pdf")

	assert.Error(t, err)
}

func TestShowPrintsGrid(t *testing.T) {
	output, err := run(t, "show", "--file", testDirectory+"semester.yaml", "--seed", "9")

	require.NoError(t, err)
	assert.Contains(t, output, "Semester 1")
	assert.Contains(t, output, "Monday")
	assert.Contains(t, output, "15:35-16:30")
	assert.Contains(t, output, "Calculus: ")
}

func TestShowRequiresFile(t *testing.T) {
	_, err := run(t, "show")

	assert.Error(t, err)
}
