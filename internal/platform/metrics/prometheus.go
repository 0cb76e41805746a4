// Package metrics exposes sync and HTTP statistics as prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder records sync and HTTP metrics.
type Recorder struct {
	runsTotal           *prometheus.CounterVec
	runDuration         *prometheus.HistogramVec
	productsTotal       *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	gatherer            prometheus.Gatherer
}

// NewRecorder returns Recorder with metrics registered in provided registry.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_sync_runs_total",
			Help: "Total number of sync runs by mode and result",
		}, []string{"mode", "result"}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "feed_sync_run_duration_seconds",
			Help:    "Duration of sync runs by mode",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		}, []string{"mode"}),
		productsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_sync_products_total",
			Help: "Total number of synced products by mode and outcome",
		}, []string{"mode", "outcome"}), // outcome: created, updated, skipped
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "endpoint", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"method", "endpoint"}),
		gatherer: reg,
	}
}

// RunFinished records finished sync run.
func (r *Recorder) RunFinished(mode models.SyncMode, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	r.runsTotal.WithLabelValues(string(mode), result).Inc()
	r.runDuration.WithLabelValues(string(mode)).Observe(duration.Seconds())
}

// ProductsSynced records numbers of products written by sync run.
func (r *Recorder) ProductsSynced(mode models.SyncMode, created, updated, skipped int32) {
	r.productsTotal.WithLabelValues(string(mode), "created").Add(float64(created))
	r.productsTotal.WithLabelValues(string(mode), "updated").Add(float64(updated))
	r.productsTotal.WithLabelValues(string(mode), "skipped").Add(float64(skipped))
}

// RecordRequest records handled HTTP request.
func (r *Recorder) RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	r.httpRequestsTotal.WithLabelValues(method, endpoint, classifyStatus(statusCode)).Inc()
	r.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Handler returns HTTP handler exporting registered metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

func classifyStatus(statusCode int) string {
	if statusCode < 100 || statusCode > 599 {
		return "unknown"
	}
	return strconv.Itoa(statusCode/100) + "xx"
}
