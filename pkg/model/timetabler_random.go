package model

import "github.com/limaJavier/semtable/pkg/logger"

type randomTimetabler struct {
	picker   Picker
	logger   logger.Logger
	observer Observer
}

type Option func(timetabler *randomTimetabler)

func WithLogger(log logger.Logger) Option {
	return func(timetabler *randomTimetabler) {
		timetabler.logger = log
	}
}

func WithObserver(observer Observer) Option {
	return func(timetabler *randomTimetabler) {
		timetabler.observer = observer
	}
}

// NewRandomTimetabler places each session at a random cell and drops the attempt when the cell is taken, without retrying.
// Subjects may therefore end up with fewer sessions than requested.
func NewRandomTimetabler(picker Picker, options ...Option) Timetabler {
	timetabler := &randomTimetabler{
		picker:   picker,
		logger:   logger.NopLogger{},
		observer: NopObserver{},
	}
	for _, option := range options {
		option(timetabler)
	}
	return timetabler
}

func (timetabler *randomTimetabler) Build(semester Semester) Timetable {
	grid := EmptyGrid(Days, Slots)
	return Timetable{
		Semester: semester,
		Grid:     timetabler.Place(grid, semester.Subjects),
	}
}

func (timetabler *randomTimetabler) Place(grid Grid, subjects []Subject) Grid {
	days, slots := len(grid.days), len(grid.slots)

	for _, subject := range subjects {
		sessions := subject.Sessions()
		if sessions == 0 {
			timetabler.logger.Debugw("subject requests no sessions", map[string]any{"subject": subject.Name, "credits": subject.Credits})
			timetabler.observer.Skipped(subject)
			continue
		}

		occupant := subject.Occupant()
		for attempt := range sessions {
			// Once the grid is full every remaining attempt would be dropped
			if grid.Occupied() == grid.Size() {
				remaining := sessions - attempt
				timetabler.logger.Debugw("grid is full, dropping remaining attempts", map[string]any{"subject": subject.Name, "attempts": remaining})
				timetabler.observer.Dropped(subject, remaining)
				break
			}

			day := timetabler.picker.Day(days)
			slot := timetabler.picker.Slot(slots)

			placed := grid.Occupy(day, slot, occupant)
			if !placed {
				timetabler.logger.Debugw("attempt dropped on occupied cell", map[string]any{
					"subject": subject.Name,
					"day":     grid.days[day],
					"slot":    grid.slots[slot],
				})
			}
			timetabler.observer.Attempted(subject, placed)
		}
	}

	timetabler.observer.Finished(grid)
	return grid
}

func (timetabler *randomTimetabler) Verify(timetable Timetable) bool {
	return verify(timetable)
}
