package model

import "github.com/samber/lo"

type Row struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
}

// Rows projects the grid into one row per (day, slot) coordinate, day-major and slot-minor, keeping vacant cells as ""
func Rows(grid Grid) []Row {
	generator := newPermutationGenerator(len(grid.days), len(grid.slots))
	return lo.Map(generator.ConstrainedPermutations(nil), func(coordinate [2]int, _ int) Row {
		day, slot := coordinate[0], coordinate[1]
		return Row{
			Day:     string(grid.days[day]),
			Time:    string(grid.slots[slot]),
			Subject: grid.At(day, slot),
		}
	})
}
