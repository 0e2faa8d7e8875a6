// Package metrics exports Prometheus counters for the lives sync engine.
package metrics

import (
	"net/http"

	"hearts/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Collector implements service.SyncMetrics on top of Prometheus.
type Collector struct {
	registry        *prometheus.Registry
	lossPush        *prometheus.CounterVec
	rollbacks       prometheus.Counter
	regenerations   prometheus.Counter
	livesGained     prometheus.Counter
	reconciles      *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

// NewCollector creates a Collector with its own registry so tests can build
// isolated instances.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		lossPush: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hearts_loss_push_total",
			Help: "Life-loss pushes towards the platform API by result.",
		}, []string{"result"}),
		rollbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hearts_rollback_total",
			Help: "Optimistic life-loss mutations rolled back after a rejected push.",
		}),
		regenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hearts_regeneration_total",
			Help: "Regeneration passes that granted at least one life.",
		}),
		livesGained: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hearts_lives_gained_total",
			Help: "Lives granted by the regeneration clock.",
		}),
		reconciles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hearts_reconcile_total",
			Help: "Reconciliation passes by outcome.",
		}, []string{"outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hearts_upstream_latency_seconds",
			Help:    "Latency of platform API calls by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	c.registry.MustRegister(
		c.lossPush,
		c.rollbacks,
		c.regenerations,
		c.livesGained,
		c.reconciles,
		c.upstreamLatency,
	)

	return c
}

// NewSyncMetrics exposes the Collector through the domain boundary for Fx.
func NewSyncMetrics(c *Collector) service.SyncMetrics {
	return c
}

// RecordLossPush records one life-loss push towards the platform API.
func (c *Collector) RecordLossPush(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.lossPush.WithLabelValues(result).Inc()
}

// RecordRollback records an optimistic mutation that was rolled back.
func (c *Collector) RecordRollback() {
	c.rollbacks.Inc()
}

// RecordRegeneration records a regeneration pass and the lives gained.
func (c *Collector) RecordRegeneration(gained int) {
	if gained <= 0 {
		return
	}
	c.regenerations.Inc()
	c.livesGained.Add(float64(gained))
}

// RecordReconcile records a reconciliation pass outcome.
func (c *Collector) RecordReconcile(outcome string) {
	c.reconciles.WithLabelValues(outcome).Inc()
}

// RecordUpstreamLatency records the duration of one platform API call.
func (c *Collector) RecordUpstreamLatency(operation string, seconds float64) {
	c.upstreamLatency.WithLabelValues(operation).Observe(seconds)
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCollector),
	fx.Provide(NewSyncMetrics),
)
