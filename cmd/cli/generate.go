package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limaJavier/semtable/pkg/export"
	"github.com/limaJavier/semtable/pkg/model"
)

func newGenerateCommand(app *application) *cobra.Command {
	var (
		file    string
		formats []string
		out     string
		name    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate timetables for the semesters of an input file and export them",
		Example: `  semtable generate --file semesters.yaml
  semtable generate --file semesters.json --format xlsx,ics --out build --seed 42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("format") {
				app.config.Output.Formats = formats
			}
			if out != "" {
				app.config.Output.Dir = out
			}
			if name != "" {
				app.config.Output.Name = name
			}
			app.config.SetDefaults()
			if err := app.config.Validate(); err != nil {
				return err
			}

			semesters, err := model.SemestersFromFile(file)
			if err != nil {
				return fmt.Errorf("cannot parse input file: %w", err)
			}

			for i, timetable := range app.build(semesters) {
				directory, baseName := export.Target(timetable.Semester, i, app.config.Output.Dir, app.config.Output.Name)
				for _, format := range app.config.Output.Formats {
					exporter, err := export.New(format, export.Options{Sheet: app.config.Output.Sheet})
					if err != nil {
						return err
					}
					path, written, err := export.WriteFile(exporter, directory, baseName, &timetable, app.logger)
					if err != nil {
						return err
					}
					if written {
						fmt.Fprintln(cmd.OutOrStdout(), path)
					}
				}
			}

			return app.writeMetrics()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the semesters input file (.json, .yaml)")
	cmd.Flags().StringSliceVar(&formats, "format", nil, fmt.Sprintf("export formats %v", export.Formats()))
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory")
	cmd.Flags().StringVar(&name, "name", "", "output file base name")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
