package export

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/limaJavier/semtable/pkg/model"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrInvalidTerm   = errors.New("invalid term dates")
	ErrInvalidSlot   = errors.New("invalid slot label")
)

const (
	DefaultSheet = "Timetable"
	DefaultName  = "timetable"
)

// Header is the column triple every tabular export starts with
var Header = []string{"Day", "Time", "Subject"}

type Exporter interface {
	Extension() string
	Export(w io.Writer, timetable model.Timetable) error
}

type Options struct {
	// Sheet names the xlsx worksheet holding the rows
	Sheet string
	// Location anchors the slot clock times of calendar exports, UTC when nil
	Location *time.Location
}

var exporters = map[string]func(options Options) Exporter{
	"xlsx": func(options Options) Exporter { return &xlsxExporter{sheet: options.Sheet} },
	"csv":  func(Options) Exporter { return &csvExporter{} },
	"json": func(Options) Exporter { return &jsonExporter{} },
	"ics":  func(options Options) Exporter { return &icsExporter{location: options.Location} },
}

func Formats() []string {
	return slices.Sorted(maps.Keys(exporters))
}

func New(format string, options Options) (Exporter, error) {
	constructor, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %v (allowed values are %v)", ErrUnknownFormat, format, Formats())
	}
	if options.Sheet == "" {
		options.Sheet = DefaultSheet
	}
	if options.Location == nil {
		options.Location = time.UTC
	}
	return constructor(options), nil
}
