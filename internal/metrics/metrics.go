// Package metrics exposes Prometheus instruments for the HTTP layer and the
// moderation and voting services.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clubhouse"

// Metrics holds the registered instruments. A nil *Metrics is valid and
// records nothing, so services and tests can run without a registry.
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	suggestions     *prometheus.CounterVec
	decisions       *prometheus.CounterVec
	conflictRetries *prometheus.CounterVec
	ballots         *prometheus.CounterVec
	likes           prometheus.Counter
}

// New registers all instruments with registry.
func New(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status code",
		}, []string{"method", "route", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		suggestions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_edits_total",
			Help:      "Edited fields by record kind and outcome (applied or suggested)",
		}, []string{"kind", "outcome"}),

		decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_decisions_total",
			Help:      "Moderator decisions by record kind and action",
		}, []string{"kind", "action"}),

		conflictRetries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_conflict_retries_total",
			Help:      "Optimistic locking retries by record kind",
		}, []string{"kind"}),

		ballots: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ballots_total",
			Help:      "Ballot attempts by club and result",
		}, []string{"club", "result"}),

		likes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dish_likes_total",
			Help:      "Total number of dish likes",
		}),
	}
}

// BuildInfo publishes a constant gauge labelled with the running build.
func BuildInfo(registry prometheus.Registerer, version, commit string) {
	promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "build_info",
		Help:        "Build metadata of the running server",
		ConstLabels: prometheus.Labels{"version": version, "commit": commit},
	}).Set(1)
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Edits records the outcome of one ProposeEdit call.
func (m *Metrics) Edits(kind string, applied, suggested int) {
	if m == nil {
		return
	}
	if applied > 0 {
		m.suggestions.WithLabelValues(kind, "applied").Add(float64(applied))
	}
	if suggested > 0 {
		m.suggestions.WithLabelValues(kind, "suggested").Add(float64(suggested))
	}
}

// Decision records a moderator action such as apply, deny, approve or reject.
func (m *Metrics) Decision(kind, action string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(kind, action).Inc()
}

// ConflictRetry records one retry after a stale version.
func (m *Metrics) ConflictRetry(kind string) {
	if m == nil {
		return
	}
	m.conflictRetries.WithLabelValues(kind).Inc()
}

// Ballot records a ballot attempt. result is "accepted" or the rejection code.
func (m *Metrics) Ballot(club, result string) {
	if m == nil {
		return
	}
	m.ballots.WithLabelValues(club, result).Inc()
}

// Like records one dish like.
func (m *Metrics) Like() {
	if m == nil {
		return
	}
	m.likes.Inc()
}
