package metric

import (
	"errors"
	"lending/core"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "lending"

var (
	operations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "ledger operations by name and result code",
	}, []string{"operation", "code"})

	latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "ledger operation latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	liquidatable = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "liquidatable_accounts",
		Help:      "borrowers below the minimum collateral ratio at the last scan",
	})

	published = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "ledger events forwarded to the event bus",
	})
)

// Registry collectors of this service
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(operations, latency, liquidatable, published)
	Registry.MustRegister(collectors.NewGoCollector())
}

// ObserveOperation count an operation and its latency, err labels the result
func ObserveOperation(operation string, start time.Time, err error) {
	operations.WithLabelValues(operation, Code(err)).Inc()
	latency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// SetLiquidatable number of undercollateralized borrowers
func SetLiquidatable(n int) {
	liquidatable.Set(float64(n))
}

// AddPublished count published events
func AddPublished(n int) {
	published.Add(float64(n))
}

// Code label of err, "ok" for nil
func Code(err error) string {
	if err == nil {
		return "ok"
	}

	var code core.ErrorCode
	if errors.As(err, &code) {
		return code.String()
	}

	return core.ErrUnknown.String()
}
