package export

import (
	"encoding/csv"
	"io"

	"github.com/limaJavier/semtable/pkg/model"
)

type csvExporter struct{}

func (exporter *csvExporter) Extension() string {
	return "csv"
}

func (exporter *csvExporter) Export(w io.Writer, timetable model.Timetable) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, row := range model.Rows(timetable.Grid) {
		if err := writer.Write([]string{row.Day, row.Time, row.Subject}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
