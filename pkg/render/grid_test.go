package render

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/limaJavier/semtable/pkg/model"
)

func TestGridRendersEveryDayAndSlot(t *testing.T) {
	g := NewWithT(t)
	grid := model.EmptyGrid(model.Days, model.Slots)
	grid.Occupy(0, 0, "Math (Theory) - Mr. A")

	output := Grid(grid)

	for _, day := range model.Days {
		g.Expect(output).To(ContainSubstring(string(day)))
	}
	for _, slot := range model.Slots {
		g.Expect(output).To(ContainSubstring(string(slot)))
	}
	g.Expect(output).To(ContainSubstring("Math (Theory) - Mr. A"))
	g.Expect(strings.Count(output, "Math (Theory) - Mr. A")).To(Equal(1))
	g.Expect(strings.Count(output, " "+Vacant+" ")).To(BeNumerically(">=", 41))
}

func TestTimetableReportsShortfall(t *testing.T) {
	g := NewWithT(t)
	timetabler := model.NewRandomTimetabler(model.NewSequencePicker([2]int{0, 0}))
	timetable := timetabler.Build(model.Semester{
		Semester:   "Semester 3",
		RoomNumber: "LT-204",
		Subjects:   []model.Subject{{Name: "Math", Teacher: "Mr. A", Credits: "3"}},
	})

	output := Timetable(timetable)

	g.Expect(output).To(ContainSubstring("Semester 3"))
	g.Expect(output).To(ContainSubstring("Room LT-204"))
	g.Expect(output).To(ContainSubstring("Math: 1/3 sessions placed"))
}

func TestTitleFallback(t *testing.T) {
	g := NewWithT(t)

	g.Expect(title(model.Semester{})).To(Equal("Timetable"))
	g.Expect(title(model.Semester{Semester: "S1", NumStudents: "30"})).To(Equal("S1 | 30 students"))
}
