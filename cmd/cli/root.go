package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/limaJavier/semtable/pkg/config"
	"github.com/limaJavier/semtable/pkg/logger"
	"github.com/limaJavier/semtable/pkg/metrics"
	"github.com/limaJavier/semtable/pkg/model"
)

type application struct {
	configPath string
	logLevel   string
	seed       uint64

	config   *config.Config
	logger   logger.Logger
	registry *prometheus.Registry
	metrics  *metrics.PlacementMetrics
}

func newRootCommand() *cobra.Command {
	app := &application{}

	root := &cobra.Command{
		Use:   "semtable",
		Short: "Semester timetable generator",
		Long: `semtable assigns the weekly theory sessions of each subject to random day/slot cells of a
6-day, 7-slot grid. Attempts landing on an occupied cell are dropped, so a subject may get fewer
sessions than its credits request.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&app.configPath, "config", "c", config.DefaultPath, "configuration file")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "log level overriding the configuration (debug, info, warn, error)")
	root.PersistentFlags().Uint64Var(&app.seed, "seed", 0, "random seed overriding the configuration; 0 keeps the configured one")

	root.AddCommand(newGenerateCommand(app), newShowCommand(app), newInteractiveCommand(app))
	return root
}

func (app *application) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(app.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if app.logLevel != "" {
		cfg.Logging.Level = app.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if app.seed != 0 {
		cfg.Random.Seed = app.seed
	}
	app.config = cfg
	app.logger = logger.NewWithLevel("cli", cfg.Logging.Level, os.Stderr)

	app.registry = prometheus.NewRegistry()
	app.metrics, err = metrics.NewPlacementMetrics(app.registry)
	return err
}

func (app *application) timetabler() model.Timetabler {
	return model.NewRandomTimetabler(
		model.NewRandomPicker(app.config.Random.Seed),
		model.WithLogger(logger.NewWithLevel("timetabler", app.config.Logging.Level, os.Stderr)),
		model.WithObserver(app.metrics),
	)
}

// build generates one timetable per semester, each on its own fresh grid
func (app *application) build(semesters []model.Semester) []model.Timetable {
	timetabler := app.timetabler()
	timetables := make([]model.Timetable, 0, len(semesters))
	for _, semester := range semesters {
		timetable := timetabler.Build(semester)
		if !timetabler.Verify(timetable) {
			app.logger.Errorf("timetable of semester %q failed verification", semester.Semester)
		}
		for _, placement := range timetable.Placements() {
			if uint64(placement.Placed) < placement.Requested {
				app.logger.Warnf("subject %q got %d of %d requested sessions", placement.Subject.Name, placement.Placed, placement.Requested)
			}
		}
		timetables = append(timetables, timetable)
	}
	return timetables
}

func (app *application) writeMetrics() error {
	if app.config.Metrics.Textfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(app.config.Metrics.Textfile, app.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	app.logger.Infof("metrics written to %v", app.config.Metrics.Textfile)
	return nil
}
