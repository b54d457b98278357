package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer receives one call per completed mapper operation.
type Observer interface {
	Observe(ctx context.Context, table, op string, err error, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) Observe(context.Context, string, string, error, time.Duration) {}

// Outcome label values.
const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// PrometheusObserver counts mapper operations and records their latency,
// labelled by table, operation and outcome.
type PrometheusObserver struct {
	ops     *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewPrometheusObserver registers the mapper collectors with reg. Collectors
// already registered by an earlier store are reused.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthtrack",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Mapper operations by table, operation and outcome.",
	}, []string{"table", "op", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "healthtrack",
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Mapper operation latency.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"table", "op"})

	var err error
	if ops, err = register(reg, ops); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	return &PrometheusObserver{ops: ops, latency: latency}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Observe implements Observer.
func (p *PrometheusObserver) Observe(_ context.Context, table, op string, err error, elapsed time.Duration) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	p.ops.WithLabelValues(table, op, outcome).Inc()
	p.latency.WithLabelValues(table, op).Observe(elapsed.Seconds())
}
