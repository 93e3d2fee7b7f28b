// SPDX-License-Identifier: MIT

// Package metrics records MST runs in a private Prometheus registry and
// exports it in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder owns one registry and the citymst collectors in it.
type Recorder struct {
	reg *prometheus.Registry

	Runs         *prometheus.CounterVec
	RunDuration  *prometheus.HistogramVec
	TreeCost     *prometheus.GaugeVec
	TreeEdges    *prometheus.GaugeVec
	GraphCities  prometheus.Gauge
	GraphRoads   prometheus.Gauge
	Components   prometheus.Gauge
	GraphReloads prometheus.Counter
}

// New creates a Recorder with a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "citymst_runs_total",
			Help: "Total number of MST computations, labelled by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "citymst_run_duration_seconds",
			Help:    "Wall time of a single MST computation.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
		TreeCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "citymst_tree_cost",
			Help: "Total road cost of the last computed spanning tree or forest.",
		}, []string{"algorithm"}),
		TreeEdges: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "citymst_tree_edges",
			Help: "Number of roads in the last computed spanning tree or forest.",
		}, []string{"algorithm"}),
		GraphCities: f.NewGauge(prometheus.GaugeOpts{
			Name: "citymst_graph_cities",
			Help: "Cities in the last loaded graph.",
		}),
		GraphRoads: f.NewGauge(prometheus.GaugeOpts{
			Name: "citymst_graph_roads",
			Help: "Undirected roads in the last loaded graph.",
		}),
		Components: f.NewGauge(prometheus.GaugeOpts{
			Name: "citymst_graph_components",
			Help: "Connected components in the last loaded graph.",
		}),
		GraphReloads: f.NewCounter(prometheus.CounterOpts{
			Name: "citymst_graph_reloads_total",
			Help: "Times the input graph was reloaded by --watch.",
		}),
	}
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveGraph records the shape of a freshly loaded graph.
func (r *Recorder) ObserveGraph(cities, roads, components int) {
	r.GraphCities.Set(float64(cities))
	r.GraphRoads.Set(float64(roads))
	r.Components.Set(float64(components))
}

// ObserveRun records one computation. Tree gauges only move on success.
func (r *Recorder) ObserveRun(algorithm string, took time.Duration, edges int, cost int64, err error) {
	r.RunDuration.WithLabelValues(algorithm).Observe(took.Seconds())
	if err != nil {
		r.Runs.WithLabelValues(algorithm, OutcomeError).Inc()
		return
	}
	r.Runs.WithLabelValues(algorithm, OutcomeOK).Inc()
	r.TreeCost.WithLabelValues(algorithm).Set(float64(cost))
	r.TreeEdges.WithLabelValues(algorithm).Set(float64(edges))
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
