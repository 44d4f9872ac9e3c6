// Package metrics records placement outcomes of the timetabler as prometheus metrics. The collected
// metrics can be written to a node-exporter textfile after a generation run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/limaJavier/semtable/pkg/model"
)

const namespace = "semtable"

// PlacementMetrics implements model.Observer
type PlacementMetrics struct {
	attempts *prometheus.CounterVec
	skipped  prometheus.Counter
	occupied prometheus.Gauge
	fillRate prometheus.Gauge
}

func NewPlacementMetrics(registerer prometheus.Registerer) (*PlacementMetrics, error) {
	metrics := &PlacementMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placement_attempts_total",
			Help:      "Placement attempts by outcome (placed or dropped on an occupied cell).",
		}, []string{"outcome"}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subjects_skipped_total",
			Help:      "Subjects whose credits requested no theory sessions.",
		}),
		occupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "grid_occupied_cells",
			Help:      "Occupied cells of the last generated grid.",
		}),
		fillRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "grid_fill_ratio",
			Help:      "Occupied cells over total cells of the last generated grid.",
		}),
	}

	for _, collector := range []prometheus.Collector{metrics.attempts, metrics.skipped, metrics.occupied, metrics.fillRate} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return metrics, nil
}

func (metrics *PlacementMetrics) Attempted(_ model.Subject, placed bool) {
	if placed {
		metrics.attempts.WithLabelValues("placed").Inc()
	} else {
		metrics.attempts.WithLabelValues("dropped").Inc()
	}
}

func (metrics *PlacementMetrics) Dropped(_ model.Subject, attempts uint64) {
	metrics.attempts.WithLabelValues("dropped").Add(float64(attempts))
}

func (metrics *PlacementMetrics) Skipped(model.Subject) {
	metrics.skipped.Inc()
}

func (metrics *PlacementMetrics) Finished(grid model.Grid) {
	metrics.occupied.Set(float64(grid.Occupied()))
	if grid.Size() > 0 {
		metrics.fillRate.Set(float64(grid.Occupied()) / float64(grid.Size()))
	}
}

// WriteTextfile dumps the gathered metrics in the text exposition format, atomically replacing the file
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, gatherer)
}
