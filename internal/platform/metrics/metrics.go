// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus collectors for argument resolution and view
execution, and the /metrics handler that serves them.
*/
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/tagfilter/internal/platform/constants"
)

// Metrics owns a private registry so tests and multiple servers never collide.
type Metrics struct {
	registry *prometheus.Registry

	resolutions    *prometheus.CounterVec
	executions     *prometheus.CounterVec
	executionTimes *prometheus.HistogramVec
}

// New registers every collector, plus the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	metrics := &Metrics{
		registry: registry,
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.AppName,
			Name:      "argument_resolutions_total",
			Help:      "Contextual argument assignments by plugin and outcome.",
		}, []string{"plugin", "outcome"}),
		executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.AppName,
			Name:      "view_executions_total",
			Help:      "View executions by view and status.",
		}, []string{"view", "status"}),
		executionTimes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: constants.AppName,
			Name:      "view_execution_seconds",
			Help:      "View execution latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"view"}),
	}

	registry.MustRegister(
		metrics.resolutions,
		metrics.executions,
		metrics.executionTimes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return metrics
}

// ObserveResolution counts one argument assignment.
func (metrics *Metrics) ObserveResolution(plugin, outcome string) {
	metrics.resolutions.WithLabelValues(plugin, outcome).Inc()
}

// ObserveExecution counts one view execution and records its latency.
func (metrics *Metrics) ObserveExecution(view, status string, elapsed time.Duration) {
	metrics.executions.WithLabelValues(view, status).Inc()
	metrics.executionTimes.WithLabelValues(view).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (metrics *Metrics) Registry() *prometheus.Registry {
	return metrics.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (metrics *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{Registry: metrics.registry})
}
