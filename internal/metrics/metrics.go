package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"app-registry/internal/models"
)

const namespace = "appregistry"

// Recorder tracks store activity on a private registry
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	entries    prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by operation and outcome.",
		}, []string{"op", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_seconds",
			Help:      "Store operation latency.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"op"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "list_entries",
			Help:      "Names shown after the last reload.",
		}),
	}

	r.registry.MustRegister(r.operations, r.durations, r.entries)
	return r
}

// Observe records one finished store operation. A nil recorder is a no-op.
func (r *Recorder) Observe(op string, start time.Time, err error) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(op, models.OutcomeOf(err).String()).Inc()
	r.durations.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (r *Recorder) SetEntries(n int) {
	if r == nil {
		return
	}
	r.entries.Set(float64(n))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Summary flattens the operation counters into "op/outcome" keys for logging
func (r *Recorder) Summary() (map[string]interface{}, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	summary := make(map[string]interface{})
	for _, family := range families {
		switch family.GetName() {
		case namespace + "_store_operations_total":
			for _, metric := range family.GetMetric() {
				summary[labelKey(metric)] = metric.GetCounter().GetValue()
			}
		case namespace + "_list_entries":
			for _, metric := range family.GetMetric() {
				summary["list_entries"] = metric.GetGauge().GetValue()
			}
		}
	}
	return summary, nil
}

func labelKey(metric *dto.Metric) string {
	var op, outcome string
	for _, label := range metric.GetLabel() {
		switch label.GetName() {
		case "op":
			op = label.GetValue()
		case "outcome":
			outcome = label.GetValue()
		}
	}
	return op + "/" + outcome
}
