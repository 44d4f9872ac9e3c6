package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/limaJavier/semtable/pkg/logger"
	"github.com/limaJavier/semtable/pkg/model"
)

// Target resolves the output directory and base name of a semester's files. The semester's own file location and
// excel name take precedence, and unnamed semesters after the first one get a numeric suffix to avoid clobbering.
func Target(semester model.Semester, index int, directory, name string) (string, string) {
	if semester.FileLocation != "" {
		directory = semester.FileLocation
	}
	if semester.ExcelName != "" {
		return directory, semester.ExcelName
	}
	if index > 0 {
		return directory, fmt.Sprintf("%v-%d", name, index+1)
	}
	return directory, name
}

// WriteFile exports the timetable into directory/name.<extension>. Without a generated timetable it declines to
// write anything and reports so through the returned flag.
func WriteFile(exporter Exporter, directory, name string, timetable *model.Timetable, log logger.Logger) (path string, written bool, err error) {
	if timetable == nil {
		log.Warnf("no timetable has been generated, skipping %v export", exporter.Extension())
		return "", false, nil
	}

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", false, fmt.Errorf("cannot create output directory: %w", err)
	}

	path = filepath.Join(directory, name+"."+exporter.Extension())
	file, err := os.Create(path)
	if err != nil {
		return "", false, fmt.Errorf("cannot create output file: %w", err)
	}

	if err := exporter.Export(file, *timetable); err != nil {
		file.Close()
		os.Remove(path)
		return "", false, fmt.Errorf("cannot export %v: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", false, fmt.Errorf("cannot close %v: %w", path, err)
	}

	log.Infof("timetable written to %v", path)
	return path, true, nil
}
