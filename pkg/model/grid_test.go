package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestEmptyGridIsComplete(t *testing.T) {
	//** Act
	grid := EmptyGrid(Days, Slots)

	//** Assert
	cells := grid.Cells()
	assert.Len(t, cells, 6)
	for _, day := range Days {
		assert.Len(t, cells[day], 7)
		for _, slot := range Slots {
			occupant, ok := cells[day][slot]
			assert.True(t, ok)
			assert.Empty(t, occupant)
		}
	}
	assert.Equal(t, 42, grid.Size())
	assert.Zero(t, grid.Occupied())
}

func TestOccupyNeverOverwrites(t *testing.T) {
	grid := EmptyGrid(Days, Slots)

	assert.True(t, grid.Occupy(3, 4, "first"))
	assert.False(t, grid.Occupy(3, 4, "second"))
	assert.False(t, grid.Occupy(3, 4, "first"))

	occupant, ok := grid.Get(Thursday, "13:45-14:40")
	assert.True(t, ok)
	assert.Equal(t, "first", occupant)
	assert.Equal(t, 1, grid.Occupied())
}

func TestGetUnknownCoordinate(t *testing.T) {
	grid := EmptyGrid(Days, Slots)

	_, ok := grid.Get("Sunday", "9:00-9:55")
	assert.False(t, ok)
	_, ok = grid.Get(Monday, "8:00-8:55")
	assert.False(t, ok)
}

func TestCloneDetachesCells(t *testing.T) {
	grid := EmptyGrid(Days, Slots)
	grid.Occupy(0, 0, "original")

	clone := grid.Clone()
	clone.Occupy(0, 1, "cloned")

	assert.Equal(t, 1, grid.Occupied())
	assert.Equal(t, 2, clone.Occupied())
	assert.Equal(t, "original", clone.At(0, 0))
}

func TestGridAccessorsReturnCopies(t *testing.T) {
	grid := EmptyGrid(Days, Slots)

	days := grid.Days()
	days[0] = "Sunday"

	assert.Equal(t, Monday, grid.Days()[0])
	assert.Equal(t, Slots, grid.Slots())
}

func TestRowsProjection(t *testing.T) {
	//** Arrange
	grid := EmptyGrid(Days, Slots)
	grid.Occupy(1, 2, "Math (Theory) - Mr. A")

	//** Act
	rows := Rows(grid)

	//** Assert
	assert.Len(t, rows, 42)
	assert.Equal(t, Row{Day: "Monday", Time: "9:00-9:55", Subject: ""}, rows[0])
	assert.Equal(t, Row{Day: "Tuesday", Time: "11:05-12:00", Subject: "Math (Theory) - Mr. A"}, rows[7+2])
	assert.Equal(t, Row{Day: "Saturday", Time: "15:35-16:30", Subject: ""}, rows[41])

	pairs := lo.Map(rows, func(row Row, _ int) [2]string { return [2]string{row.Day, row.Time} })
	assert.Len(t, lo.Uniq(pairs), 42)
	for i, row := range rows {
		assert.Equal(t, string(Days[i/7]), row.Day)
		assert.Equal(t, string(Slots[i%7]), row.Time)
	}
}
