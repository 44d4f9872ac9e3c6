package model

type Timetabler interface {
	// Allocates an empty grid and places the semester's subjects on it
	Build(semester Semester) Timetable

	// Attempts to place every requested session of the subjects, in order, mutating and returning the grid
	Place(grid Grid, subjects []Subject) Grid

	// Checks the grid is complete, holds only the semester's occupants and never exceeds the requested sessions
	Verify(timetable Timetable) bool
}

// Observer is notified of every placement outcome
type Observer interface {
	Attempted(subject Subject, placed bool)
	// Reports attempts dropped without drawing a cell because the grid was already full
	Dropped(subject Subject, attempts uint64)
	Skipped(subject Subject)
	Finished(grid Grid)
}

type NopObserver struct{}

func (NopObserver) Attempted(Subject, bool) {}
func (NopObserver) Dropped(Subject, uint64) {}
func (NopObserver) Skipped(Subject)         {}
func (NopObserver) Finished(Grid)           {}

type Timetable struct {
	Semester Semester
	Grid     Grid
}

type Placement struct {
	Subject   Subject
	Requested uint64
	Placed    int
}

// Placements reports, for each distinct occupant in input order, the requested sessions against the cells it occupies.
// Subjects sharing name and teacher share the occupant, so they are merged and their requests added up.
func (timetable Timetable) Placements() []Placement {
	placements := make([]Placement, 0, len(timetable.Semester.Subjects))
	positions := make(map[string]int, len(timetable.Semester.Subjects))
	for _, subject := range timetable.Semester.Subjects {
		occupant := subject.Occupant()
		if position, ok := positions[occupant]; ok {
			placements[position].Requested += subject.Sessions()
			continue
		}

		positions[occupant] = len(placements)
		placements = append(placements, Placement{
			Subject:   subject,
			Requested: subject.Sessions(),
			Placed:    timetable.Grid.Count(occupant),
		})
	}
	return placements
}
