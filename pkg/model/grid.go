package model

import (
	"slices"

	"github.com/samber/lo"
)

type Day string

type Slot string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
)

var (
	Days  = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	Slots = []Slot{"9:00-9:55", "9:55-10:50", "11:05-12:00", "12:00-12:55", "13:45-14:40", "14:40-15:35", "15:35-16:30"}
)

// Grid maps every (day, slot) coordinate to its occupant, where the empty string stands for a vacant cell.
// Its size is fixed when created by EmptyGrid. Copies of a Grid share the same cells; use Clone to detach one.
type Grid struct {
	days    []Day
	slots   []Slot
	indexer indexer
	cells   []string
}

func EmptyGrid(days []Day, slots []Slot) Grid {
	indexer := newIndexer(len(days), len(slots))
	return Grid{
		days:    slices.Clone(days),
		slots:   slices.Clone(slots),
		indexer: indexer,
		cells:   make([]string, indexer.Size()),
	}
}

func (grid Grid) Days() []Day {
	return slices.Clone(grid.days)
}

func (grid Grid) Slots() []Slot {
	return slices.Clone(grid.slots)
}

func (grid Grid) Size() int {
	return len(grid.cells)
}

func (grid Grid) At(day, slot int) string {
	return grid.cells[grid.indexer.Index(day, slot)]
}

// Get returns the occupant of the cell and whether the (day, slot) coordinate belongs to the grid
func (grid Grid) Get(day Day, slot Slot) (string, bool) {
	dayIndex, slotIndex := slices.Index(grid.days, day), slices.Index(grid.slots, slot)
	if dayIndex < 0 || slotIndex < 0 {
		return "", false
	}
	return grid.At(dayIndex, slotIndex), true
}

// Occupy writes the occupant into the cell only if it is vacant and reports whether it did so
func (grid Grid) Occupy(day, slot int, occupant string) bool {
	index := grid.indexer.Index(day, slot)
	if grid.cells[index] != "" {
		return false
	}
	grid.cells[index] = occupant
	return true
}

func (grid Grid) Count(occupant string) int {
	return lo.Count(grid.cells, occupant)
}

func (grid Grid) Occupied() int {
	return lo.CountBy(grid.cells, func(cell string) bool { return cell != "" })
}

// Cells returns a detached day -> slot -> occupant snapshot
func (grid Grid) Cells() map[Day]map[Slot]string {
	cells := make(map[Day]map[Slot]string, len(grid.days))
	for index, occupant := range grid.cells {
		day, slot := grid.indexer.Attributes(index)
		if _, ok := cells[grid.days[day]]; !ok {
			cells[grid.days[day]] = make(map[Slot]string, len(grid.slots))
		}
		cells[grid.days[day]][grid.slots[slot]] = occupant
	}
	return cells
}

func (grid Grid) Clone() Grid {
	clone := EmptyGrid(grid.days, grid.slots)
	copy(clone.cells, grid.cells)
	return clone
}
