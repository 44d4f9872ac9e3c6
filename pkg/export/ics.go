package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/limaJavier/semtable/pkg/model"
)

const termLayout = "2006-01-02"

var weekdays = map[model.Day]time.Weekday{
	model.Monday:    time.Monday,
	model.Tuesday:   time.Tuesday,
	model.Wednesday: time.Wednesday,
	model.Thursday:  time.Thursday,
	model.Friday:    time.Friday,
	model.Saturday:  time.Saturday,
}

type icsExporter struct {
	location *time.Location
}

func (exporter *icsExporter) Extension() string {
	return "ics"
}

// Export writes one weekly recurring event per occupied cell, repeating from the term start until the term end
func (exporter *icsExporter) Export(w io.Writer, timetable model.Timetable) error {
	semester := timetable.Semester
	termStart, err := time.ParseInLocation(termLayout, strings.TrimSpace(semester.TermStart), exporter.location)
	if err != nil {
		return fmt.Errorf("%w: term start %q: %v", ErrInvalidTerm, semester.TermStart, err)
	}
	termEnd, err := time.ParseInLocation(termLayout, strings.TrimSpace(semester.TermEnd), exporter.location)
	if err != nil {
		return fmt.Errorf("%w: term end %q: %v", ErrInvalidTerm, semester.TermEnd, err)
	}
	if termEnd.Before(termStart) {
		return fmt.Errorf("%w: term ends (%v) before it starts (%v)", ErrInvalidTerm, semester.TermEnd, semester.TermStart)
	}
	until := termEnd.Add(24*time.Hour - time.Second).UTC().Format("20060102T150405Z")

	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//semtable//timetable//EN")
	if semester.Semester != "" {
		calendar.SetName(semester.Semester)
	}

	for _, row := range model.Rows(timetable.Grid) {
		if row.Subject == "" {
			continue
		}

		weekday, ok := weekdays[model.Day(row.Day)]
		if !ok {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidSlot, row.Day)
		}
		start, end, err := slotBounds(row.Time)
		if err != nil {
			return err
		}

		// First occurrence is the first matching weekday on or after the term start
		date := termStart.AddDate(0, 0, (int(weekday)-int(termStart.Weekday())+7)%7)
		if date.After(termEnd) {
			continue
		}

		event := calendar.AddEvent(uuid.NewString() + "@semtable")
		event.SetDtStampTime(time.Now())
		event.SetStartAt(date.Add(start))
		event.SetEndAt(date.Add(end))
		event.SetSummary(row.Subject)
		event.AddProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY;UNTIL="+until)
		if semester.RoomNumber != "" {
			event.SetLocation(semester.RoomNumber)
		}
		event.SetDescription(fmt.Sprintf("%v %v", row.Day, row.Time))
	}

	return calendar.SerializeTo(w)
}

// slotBounds reads a "H:MM-H:MM" label as offsets from midnight
func slotBounds(slot string) (start, end time.Duration, err error) {
	bounds := strings.Split(slot, "-")
	if len(bounds) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	offsets := make([]time.Duration, 0, 2)
	for _, bound := range bounds {
		clock, err := time.Parse("15:04", strings.TrimSpace(bound))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidSlot, slot, err)
		}
		offsets = append(offsets, time.Duration(clock.Hour())*time.Hour+time.Duration(clock.Minute())*time.Minute)
	}
	if offsets[1] <= offsets[0] {
		return 0, 0, fmt.Errorf("%w: %q ends before it starts", ErrInvalidSlot, slot)
	}
	return offsets[0], offsets[1], nil
}
