package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
)

// Recorder holds the task store instruments for one registry.
type Recorder struct {
	operations *prometheus.CounterVec
	descLength prometheus.Histogram
	tasks      prometheus.Gauge
}

// NewRecorder creates the instruments and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "todo_store_operations_total",
				Help: "Total number of task store operations by result",
			},
			[]string{"op", "result"},
		),
		descLength: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "todo_task_description_length_bytes",
				Help:    "Length distribution of task descriptions",
				Buckets: []float64{10, 50, 100, 500, 1000},
			},
		),
		tasks: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "todo_tasks_stored",
				Help: "Number of tasks currently held by the store",
			},
		),
	}
}

// Operation counts one store call.
func (r *Recorder) Operation(op string, found bool) {
	result := ResultOK
	if !found {
		result = ResultNotFound
	}
	r.operations.WithLabelValues(op, result).Inc()
}

// Description observes the length of a description written to the store.
func (r *Recorder) Description(desc string) {
	r.descLength.Observe(float64(len(desc)))
}

// TaskAdded and TaskDeleted track the number of stored tasks.
func (r *Recorder) TaskAdded()   { r.tasks.Inc() }
func (r *Recorder) TaskDeleted() { r.tasks.Dec() }

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
