package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	executeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "headerlink_executor",
		Name:      "execute_total",
		Help:      "Count of commitment program executions by committed result.",
	}, []string{"status", "is_valid"})

	executeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "headerlink_executor",
		Name:      "execute_duration_seconds",
		Help:      "Duration of commitment program executions.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"status"})
)

// Executor tracks commitment program executions.
type Executor struct{}

// NewExecutor constructs an Executor collector.
func NewExecutor() *Executor {
	return &Executor{}
}

// ObserveExecute records one execution.
func (m Executor) ObserveExecute(err error, isValid bool, started time.Time) {
	status := statusOf(err)
	executeTotal.WithLabelValues(status, strconv.FormatBool(isValid)).Inc()
	executeDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
