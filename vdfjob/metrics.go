package vdfjob

import "github.com/prometheus/client_golang/prometheus"

// metricsSet holds the Prometheus collectors the Manager updates as jobs
// move through their lifecycle. A nil Registerer passed to NewManager
// means the collectors are created but never registered anywhere --
// useful for tests, and safe, since an unregistered collector can still
// be incremented, just never scraped.
type metricsSet struct {
	jobsCreated    prometheus.Counter
	jobsByStatus   *prometheus.GaugeVec
	computeSeconds prometheus.Histogram
}

func newMetricsSet(registerer prometheus.Registerer) *metricsSet {
	m := &metricsSet{
		jobsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guardian",
			Subsystem: "vdfjob",
			Name:      "jobs_created_total",
			Help:      "Total number of VDF jobs submitted to the manager.",
		}),
		jobsByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "guardian",
			Subsystem: "vdfjob",
			Name:      "jobs_in_status",
			Help:      "Current number of jobs in each status.",
		}, []string{"status"}),
		computeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "guardian",
			Subsystem: "vdfjob",
			Name:      "compute_seconds",
			Help:      "Wall-clock time spent computing a completed VDF job.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 16),
		}),
	}

	if registerer != nil {
		registerer.MustRegister(m.jobsCreated, m.jobsByStatus, m.computeSeconds)
	}

	return m
}

func (m *metricsSet) transition(from, to Status) {
	m.jobsByStatus.WithLabelValues(from.String()).Dec()
	m.jobsByStatus.WithLabelValues(to.String()).Inc()
}
