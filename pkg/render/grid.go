package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"github.com/limaJavier/semtable/pkg/model"
)

// Vacant is shown in place of empty cells
const Vacant = "-"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	vacantStyle = cellStyle.Foreground(lipgloss.Color("8"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func Timetable(timetable model.Timetable) string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Render(title(timetable.Semester)))
	builder.WriteString("\n")
	builder.WriteString(Grid(timetable.Grid))
	builder.WriteString("\n")

	for _, placement := range timetable.Placements() {
		line := fmt.Sprintf("%v: %d/%d sessions placed", placement.Subject.Name, placement.Placed, placement.Requested)
		if uint64(placement.Placed) < placement.Requested {
			line = noteStyle.Render(line)
		}
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	return builder.String()
}

// Grid lays the days out as rows and the slots as columns
func Grid(grid model.Grid) string {
	slots := grid.Slots()
	headers := append([]string{"Day"}, lo.Map(slots, func(slot model.Slot, _ int) string { return string(slot) })...)

	rows := make([][]string, 0, len(grid.Days()))
	for day, dayName := range grid.Days() {
		row := []string{string(dayName)}
		for slot := range slots {
			row = append(row, lo.Ternary(grid.At(day, slot) == "", Vacant, grid.At(day, slot)))
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			if rows[row][col] == Vacant {
				return vacantStyle
			}
			return cellStyle
		}).
		String()
}

func title(semester model.Semester) string {
	parts := lo.Compact([]string{
		semester.Semester,
		lo.Ternary(semester.TermStart != "" || semester.TermEnd != "", fmt.Sprintf("%v to %v", semester.TermStart, semester.TermEnd), ""),
		lo.Ternary(semester.RoomNumber != "", "Room "+semester.RoomNumber, ""),
		lo.Ternary(semester.NumStudents != "", semester.NumStudents+" students", ""),
	})
	if len(parts) == 0 {
		return "Timetable"
	}
	return strings.Join(parts, " | ")
}
