// Package metrics collects Prometheus metrics for the registry, the ledger
// and the HTTP surface, and serves them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by registration and login counters.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Recorder is what services and middleware report to.
type Recorder interface {
	RecordRegistration(outcome string)
	RecordLogin(outcome string)
	RecordScoreSubmission(accepted bool)
	RecordHTTPRequest(method, route string, status int, d time.Duration)
	SetStoreUp(up bool)
}

// Nop discards everything. It is the default for services built without a
// collector, e.g. in tests.
type Nop struct{}

func (Nop) RecordRegistration(string)                             {}
func (Nop) RecordLogin(string)                                    {}
func (Nop) RecordScoreSubmission(bool)                            {}
func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) SetStoreUp(bool)                                       {}

type Collector struct {
	registrations *prometheus.CounterVec
	logins        *prometheus.CounterVec
	submissions   *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	storeUp       prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arcade_registrations_total",
			Help: "Registration attempts by outcome.",
		}, []string{"outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arcade_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arcade_score_submissions_total",
			Help: "Score submissions, split by whether they raised the stored best.",
		}, []string{"accepted"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arcade_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "arcade_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		storeUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arcade_store_up",
			Help: "1 when the last store ping succeeded.",
		}),
	}

	reg.MustRegister(
		c.registrations,
		c.logins,
		c.submissions,
		c.httpRequests,
		c.httpLatency,
		c.storeUp,
	)

	return c
}

func (c *Collector) RecordRegistration(outcome string) {
	c.registrations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordScoreSubmission(accepted bool) {
	c.submissions.WithLabelValues(strconv.FormatBool(accepted)).Inc()
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

func (c *Collector) SetStoreUp(up bool) {
	if up {
		c.storeUp.Set(1)
		return
	}
	c.storeUp.Set(0)
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
