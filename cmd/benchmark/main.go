package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/limaJavier/semtable/pkg/model"
)

const (
	defaultTestDirectory = "../../testdata/semesters/"
	defaultOutput        = "benchmark_results.csv"
)

type TestMetadata struct {
	Name      string
	Semester  model.Semester
	Subjects  int
	Requested uint64
}

type BenchmarkResult struct {
	Test         TestMetadata
	Runs         int
	MeanPlaced   float64
	StdDevPlaced float64
	MinPlaced    int
	MaxPlaced    int
	MeanFillRate float64
	ShortRuns    int // Runs where at least one subject got fewer sessions than requested
	Duration     time.Duration
}

func main() {
	var (
		directory string
		output    string
		runs      int
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measure how many requested sessions the random placement manages to place",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tests, err := getTests(directory)
			if err != nil {
				return err
			}

			results := make([]BenchmarkResult, 0, len(tests))
			for _, test := range tests {
				fmt.Printf("Benchmarking test \"%v\" (semester \"%v\") over %d runs\n", test.Name, test.Semester.Semester, runs)
				results = append(results, measure(test, runs))
			}

			return toCsv(output, results)
		},
	}
	cmd.Flags().StringVarP(&directory, "dir", "d", defaultTestDirectory, "directory holding the input files")
	cmd.Flags().StringVarP(&output, "out", "o", defaultOutput, "CSV file the results are written to")
	cmd.Flags().IntVarP(&runs, "runs", "n", 1000, "generations per semester")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func getTests(directory string) ([]TestMetadata, error) {
	files, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	tests := make([]TestMetadata, 0)
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		filename := filepath.Join(directory, file.Name())
		semesters, err := model.SemestersFromFile(filename)
		if err != nil {
			return nil, fmt.Errorf("cannot parse input file %v: %w", filename, err)
		}

		for _, semester := range semesters {
			tests = append(tests, TestMetadata{
				Name:      filename,
				Semester:  semester,
				Subjects:  len(semester.Subjects),
				Requested: lo.SumBy(semester.Subjects, func(subject model.Subject) uint64 { return subject.Sessions() }),
			})
		}
	}
	return tests, nil
}

func measure(test TestMetadata, runs int) BenchmarkResult {
	placed := make([]float64, 0, runs)
	fillRates := make([]float64, 0, runs)
	shortRuns := 0

	start := time.Now()
	for run := range runs {
		timetabler := model.NewRandomTimetabler(model.NewRandomPicker(uint64(run + 1)))
		timetable := timetabler.Build(test.Semester)

		occupied := timetable.Grid.Occupied()
		placed = append(placed, float64(occupied))
		fillRates = append(fillRates, float64(occupied)/float64(timetable.Grid.Size()))
		if lo.SomeBy(timetable.Placements(), func(placement model.Placement) bool {
			return uint64(placement.Placed) < placement.Requested
		}) {
			shortRuns++
		}
	}
	duration := time.Since(start)

	return summarize(test, placed, fillRates, shortRuns, duration)
}

func summarize(test TestMetadata, placed, fillRates []float64, shortRuns int, duration time.Duration) BenchmarkResult {
	result := BenchmarkResult{
		Test:      test,
		Runs:      len(placed),
		ShortRuns: shortRuns,
		Duration:  duration,
	}
	if len(placed) == 0 {
		return result
	}

	result.MeanPlaced, result.StdDevPlaced = stat.MeanStdDev(placed, nil)
	result.MeanFillRate = stat.Mean(fillRates, nil)
	result.MinPlaced = int(lo.Min(placed))
	result.MaxPlaced = int(lo.Max(placed))
	return result
}

func toCsv(path string, results []BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{"Test", "Semester", "Subjects", "Requested", "Runs", "Placed(mean)", "Placed(stddev)", "Placed(min)", "Placed(max)", "FillRate(mean)", "ShortRuns", "Duration(ms)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Test.Name,
			result.Test.Semester.Semester,
			fmt.Sprintf("%d", result.Test.Subjects),
			fmt.Sprintf("%d", result.Test.Requested),
			fmt.Sprintf("%d", result.Runs),
			fmt.Sprintf("%.2f", result.MeanPlaced),
			fmt.Sprintf("%.2f", result.StdDevPlaced),
			fmt.Sprintf("%d", result.MinPlaced),
			fmt.Sprintf("%d", result.MaxPlaced),
			fmt.Sprintf("%.4f", result.MeanFillRate),
			fmt.Sprintf("%d", result.ShortRuns),
			fmt.Sprintf("%d", result.Duration.Milliseconds()),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
