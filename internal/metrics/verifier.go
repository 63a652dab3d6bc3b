package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/verifier"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "headerlink_verifier",
		Name:      "verify_total",
		Help:      "Count of chain linkage verifications by outcome.",
	}, []string{"network", "status"})

	verifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "headerlink_verifier",
		Name:      "verify_duration_seconds",
		Help:      "Duration of chain linkage verifications.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	verifyLinks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "headerlink_verifier",
		Name:      "links_checked_total",
		Help:      "Count of header pairs checked for linkage.",
	}, []string{"network"})
)

// Verifier tracks chain linkage verification metrics.
type Verifier struct {
	network model.Network
}

// NewVerifier constructs a Verifier collector.
func NewVerifier(network model.Network) *Verifier {
	if network == "" {
		network = "unknown"
	}
	return &Verifier{network: network}
}

// ObserveVerify records one verification run. Chain breaks are reported
// separately from other failures.
func (m Verifier) ObserveVerify(err error, links int, started time.Time) {
	status := statusOf(err)
	if errors.Is(err, verifier.ErrChainBreak) {
		status = "chain_break"
	}
	verifyTotal.WithLabelValues(string(m.network), status).Inc()
	verifyDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	verifyLinks.WithLabelValues(string(m.network)).Add(float64(links))
}
