package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "headerlink_service",
		Name:      "load_total",
		Help:      "Count of header loads by source.",
	}, []string{"network", "source", "status"})

	loadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "headerlink_service",
		Name:      "load_duration_seconds",
		Help:      "Duration of header loads by source.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "source", "status"})

	loadHeaders = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "headerlink_service",
		Name:      "load_headers",
		Help:      "Number of headers loaded per run.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1..262144
	}, []string{"network", "source"})

	reportTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "headerlink_service",
		Name:      "report_total",
		Help:      "Count of verification reports written.",
	}, []string{"network", "status"})
)

// Service tracks verification service runs.
type Service struct {
	network model.Network
}

// NewService constructs a Service collector.
func NewService(network model.Network) *Service {
	if network == "" {
		network = "unknown"
	}
	return &Service{network: network}
}

// ObserveLoad records loading headers from a source.
func (m Service) ObserveLoad(source string, err error, headers int, started time.Time) {
	status := statusOf(err)
	loadTotal.WithLabelValues(string(m.network), source, status).Inc()
	loadDuration.WithLabelValues(string(m.network), source, status).Observe(time.Since(started).Seconds())
	if err == nil {
		loadHeaders.WithLabelValues(string(m.network), source).Observe(float64(headers))
	}
}

// ObserveReport records writing a verification report.
func (m Service) ObserveReport(err error) {
	reportTotal.WithLabelValues(string(m.network), statusOf(err)).Inc()
}
