// Package metrics exports loader activity as Prometheus collectors.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"seqload/core/adapters"
)

const namespace = "seqload"

// Outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeOpen      = "open_error"
	OutcomeParse     = "parse_error"
	OutcomeDuplicate = "duplicate_id"
	OutcomeOther     = "error"
)

// LoadMetrics implements adapters.Observer.
type LoadMetrics struct {
	Loads    *prometheus.CounterVec
	Records  *prometheus.CounterVec
	Bars     *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

var _ adapters.Observer = (*LoadMetrics)(nil)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*LoadMetrics, error) {
	m := &LoadMetrics{
		Loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Load calls by role and outcome",
		}, []string{"role", "outcome"}),
		Records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_records_total",
			Help:      "Source records read",
		}, []string{"role"}),
		Bars: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bars_appended_total",
			Help:      "Records appended to the store after expansion",
		}, []string{"role", "rc_mode"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Wall time of one load call",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"role"}),
	}
	for _, c := range []prometheus.Collector{m.Loads, m.Records, m.Bars, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register load metrics: %w", err)
		}
	}
	return m, nil
}

// ObserveLoad records one finished load call.
func (m *LoadMetrics) ObserveLoad(ev adapters.LoadEvent) {
	role := ev.Role.String()
	m.Loads.WithLabelValues(role, Outcome(ev.Err)).Inc()
	m.Records.WithLabelValues(role).Add(float64(ev.Records))
	m.Bars.WithLabelValues(role, ev.Mode.String()).Add(float64(ev.Bars))
	m.Duration.WithLabelValues(role).Observe(ev.Duration.Seconds())
}

// Outcome classifies a load error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, adapters.ErrOpen):
		return OutcomeOpen
	case errors.Is(err, adapters.ErrParse):
		return OutcomeParse
	case errors.Is(err, adapters.ErrDuplicateID):
		return OutcomeDuplicate
	}
	return OutcomeOther
}

// WriteTextfile dumps everything g gathers in the node_exporter textfile
// format. The file is written to a temp name and renamed into place.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
