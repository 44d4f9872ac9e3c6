package export

import (
	"encoding/json"
	"io"

	"github.com/limaJavier/semtable/pkg/model"
)

type jsonExporter struct{}

type jsonTimetable struct {
	Semester    string          `json:"semester"`
	TermStart   string          `json:"termStart,omitempty"`
	TermEnd     string          `json:"termEnd,omitempty"`
	RoomNumber  string          `json:"roomNumber,omitempty"`
	NumStudents string          `json:"numStudents,omitempty"`
	Placements  []jsonPlacement `json:"placements"`
	Rows        []model.Row     `json:"rows"`
}

type jsonPlacement struct {
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Requested uint64 `json:"requested"`
	Placed    int    `json:"placed"`
}

func (exporter *jsonExporter) Extension() string {
	return "json"
}

func (exporter *jsonExporter) Export(w io.Writer, timetable model.Timetable) error {
	placements := make([]jsonPlacement, 0, len(timetable.Semester.Subjects))
	for _, placement := range timetable.Placements() {
		placements = append(placements, jsonPlacement{
			Subject:   placement.Subject.Name,
			Teacher:   placement.Subject.Teacher,
			Requested: placement.Requested,
			Placed:    placement.Placed,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonTimetable{
		Semester:    timetable.Semester.Semester,
		TermStart:   timetable.Semester.TermStart,
		TermEnd:     timetable.Semester.TermEnd,
		RoomNumber:  timetable.Semester.RoomNumber,
		NumStudents: timetable.Semester.NumStudents,
		Placements:  placements,
		Rows:        model.Rows(timetable.Grid),
	})
}
