package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/limaJavier/semtable/pkg/model"
)

type xlsxExporter struct {
	sheet string
}

func (exporter *xlsxExporter) Extension() string {
	return "xlsx"
}

// Export writes a single worksheet with the Day, Time and Subject columns, one row per grid cell
func (exporter *xlsxExporter) Export(w io.Writer, timetable model.Timetable) (err error) {
	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := file.SetSheetName(file.GetSheetName(0), exporter.sheet); err != nil {
		return err
	}

	header := make([]any, 0, len(Header))
	for _, column := range Header {
		header = append(header, column)
	}
	if err := file.SetSheetRow(exporter.sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range model.Rows(timetable.Grid) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(exporter.sheet, cell, &[]any{row.Day, row.Time, row.Subject}); err != nil {
			return err
		}
	}

	return file.Write(w)
}
