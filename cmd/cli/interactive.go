package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/limaJavier/semtable/pkg/export"
	"github.com/limaJavier/semtable/pkg/model"
	"github.com/limaJavier/semtable/pkg/render"
)

func newInteractiveCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Enter a semester through a form, then generate, show and optionally export its timetable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			semester, err := semesterForm()
			if err != nil {
				return err
			}
			if err := model.ValidateSemester(semester); err != nil {
				return err
			}

			timetable := app.build([]model.Semester{semester})[0]
			fmt.Fprintln(cmd.OutOrStdout(), render.Timetable(timetable))

			exportNow := true
			if err := huh.NewConfirm().
				Title(fmt.Sprintf("Export to %v?", strings.Join(app.config.Output.Formats, ", "))).
				Value(&exportNow).
				Run(); err != nil {
				return err
			}
			if !exportNow {
				return app.writeMetrics()
			}

			directory, name := export.Target(semester, 0, app.config.Output.Dir, app.config.Output.Name)
			for _, format := range app.config.Output.Formats {
				exporter, err := export.New(format, export.Options{Sheet: app.config.Output.Sheet})
				if err != nil {
					return err
				}
				path, written, err := export.WriteFile(exporter, directory, name, &timetable, app.logger)
				if err != nil {
					return err
				}
				if written {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
			}
			return app.writeMetrics()
		},
	}
}

func semesterForm() (model.Semester, error) {
	var semester model.Semester

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Semester").Value(&semester.Semester),
			huh.NewInput().Title("Term start").Placeholder("2006-01-02").Value(&semester.TermStart),
			huh.NewInput().Title("Term end").Placeholder("2006-01-02").Value(&semester.TermEnd),
			huh.NewInput().Title("Room number").Value(&semester.RoomNumber),
			huh.NewInput().Title("Number of students").Value(&semester.NumStudents),
		),
	).Run()
	if err != nil {
		return model.Semester{}, err
	}

	more := true
	for more {
		var subject model.Subject
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Subject").Value(&subject.Name).Validate(required("subject name")),
				huh.NewInput().Title("Teacher").Value(&subject.Teacher),
				huh.NewInput().
					Title("Credits").
					Description("theory[:tutorial:practical], only theory sessions are scheduled").
					Value(&subject.Credits),
				huh.NewConfirm().Title("Add another subject?").Value(&more),
			),
		).Run()
		if err != nil {
			return model.Semester{}, err
		}
		semester.Subjects = append(semester.Subjects, subject)
	}

	return semester, nil
}

func required(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}
