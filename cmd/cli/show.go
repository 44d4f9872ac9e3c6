package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limaJavier/semtable/pkg/model"
	"github.com/limaJavier/semtable/pkg/render"
)

func newShowCommand(app *application) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Generate timetables and print them as day x slot grids",
		RunE: func(cmd *cobra.Command, _ []string) error {
			semesters, err := model.SemestersFromFile(file)
			if err != nil {
				return fmt.Errorf("cannot parse input file: %w", err)
			}

			for _, timetable := range app.build(semesters) {
				fmt.Fprintln(cmd.OutOrStdout(), render.Timetable(timetable))
			}
			return app.writeMetrics()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the semesters input file (.json, .yaml)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
