package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/semtable/pkg/model"
)

func TestSummarize(t *testing.T) {
	result := summarize(TestMetadata{Name: "t"}, []float64{2, 4, 4, 6}, []float64{0.1, 0.2, 0.2, 0.3}, 1, time.Second)

	assert.Equal(t, 4, result.Runs)
	assert.InDelta(t, 4.0, result.MeanPlaced, 1e-9)
	assert.InDelta(t, 1.632993, result.StdDevPlaced, 1e-6)
	assert.Equal(t, 2, result.MinPlaced)
	assert.Equal(t, 6, result.MaxPlaced)
	assert.InDelta(t, 0.2, result.MeanFillRate, 1e-9)
	assert.Equal(t, 1, result.ShortRuns)
}

func TestSummarizeWithoutRuns(t *testing.T) {
	result := summarize(TestMetadata{Name: "t"}, nil, nil, 0, 0)

	assert.Zero(t, result.Runs)
	assert.Zero(t, result.MeanPlaced)
}

func TestMeasureNeverExceedsRequest(t *testing.T) {
	test := TestMetadata{
		Name: "inline",
		Semester: model.Semester{Subjects: []model.Subject{
			{Name: "Math", Teacher: "Mr. A", Credits: "3"},
			{Name: "Physics", Teacher: "Ms. B", Credits: "2"},
		}},
		Requested: 5,
	}

	result := measure(test, 200)

	assert.Equal(t, 200, result.Runs)
	assert.LessOrEqual(t, result.MaxPlaced, 5)
	assert.GreaterOrEqual(t, result.MinPlaced, 1)
}

func TestBenchmarkCsv(t *testing.T) {
	tests, err := getTests(defaultTestDirectory)
	require.NoError(t, err)
	require.NotEmpty(t, tests)

	results := make([]BenchmarkResult, 0, len(tests))
	for _, test := range tests {
		results = append(results, measure(test, 10))
	}
	path := filepath.Join(t.TempDir(), defaultOutput)
	require.NoError(t, toCsv(path, results))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, len(tests)+1)
	assert.Equal(t, "Test", records[0][0])
}
