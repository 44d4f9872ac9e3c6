package model

import (
	"slices"

	"github.com/samber/lo"
)

func verify(timetable Timetable) bool {
	grid := timetable.Grid

	//** Verify grid completeness
	if !slices.Equal(grid.days, Days) || !slices.Equal(grid.slots, Slots) || grid.Size() != len(Days)*len(Slots) {
		return false
	}
	cells := grid.Cells()
	if len(cells) != len(Days) || lo.SomeBy(Days, func(day Day) bool { return len(cells[day]) != len(Slots) }) {
		return false
	}

	//** Verify occupants
	evaluator := newPredicateEvaluator(grid, timetable.Semester.Subjects)
	generator := newPermutationGenerator(len(grid.days), len(grid.slots))

	occupied := generator.ConstrainedPermutations([]func(day, slot int) bool{
		func(day, slot int) bool { return !evaluator.Vacant(day, slot) },
	})

	// Check that:
	// - Every occupant belongs to a subject of the semester
	// - No occupant appears more often than requested
	return lo.EveryBy(occupied, func(coordinate [2]int) bool {
		occupant := grid.At(coordinate[0], coordinate[1])
		return evaluator.Known(occupant) && evaluator.WithinRequest(occupant)
	})
}
