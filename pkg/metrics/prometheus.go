// Package metrics provides Prometheus metrics for the time-guess service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Game metrics - the play itself
	guessesSubmitted *prometheus.CounterVec
	guessesRejected  *prometheus.CounterVec
	revealsRecorded  prometheus.Counter
	daysReset        prometheus.Counter

	// Leaderboard metrics - cumulative competition state
	participantWins *prometheus.GaugeVec
	trackedDays     prometheus.Gauge
	revealedDays    prometheus.Gauge
	totalGuesses    prometheus.Gauge

	// Store metrics - document load/save performance
	storeLoadLatency prometheus.Histogram
	storeSaveLatency prometheus.Histogram
	storeErrors      prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Websocket metrics
	wsClients    prometheus.Gauge
	wsBroadcasts prometheus.Counter

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "timeguess",
		subsystem:        "game",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.guessesSubmitted = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "guesses_submitted_total",
			Help:      "Total number of accepted guesses by participant",
		},
		[]string{"participant"},
	)

	m.guessesRejected = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "guesses_rejected_total",
			Help:      "Total number of rejected guess submissions by reason",
		},
		[]string{"reason"},
	)

	m.revealsRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reveals_recorded_total",
		Help:      "Total number of actual times revealed",
	})

	m.daysReset = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "days_reset_total",
		Help:      "Total number of day resets",
	})

	m.participantWins = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "participant_wins",
			Help:      "Cumulative win count per participant across revealed days",
		},
		[]string{"participant"},
	)

	m.trackedDays = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tracked_days",
		Help:      "Number of days present in the document",
	})

	m.revealedDays = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "revealed_days",
		Help:      "Number of days with a revealed actual time",
	})

	m.totalGuesses = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_guesses",
		Help:      "Total guesses stored across all days",
	})

	m.storeLoadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_load_latency_milliseconds",
		Help:      "Document load latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.storeSaveLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_save_latency_milliseconds",
		Help:      "Document save latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.storeErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Total number of storage failures surfaced to callers",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.wsClients = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ws_clients",
		Help:      "Currently connected websocket clients",
	})

	m.wsBroadcasts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ws_broadcasts_total",
		Help:      "Total number of snapshot broadcasts to websocket clients",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers operating on the global manager.

// RecordGuessSubmitted counts an accepted guess.
func RecordGuessSubmitted(participant string) {
	globalManager.guessesSubmitted.WithLabelValues(participant).Inc()
}

// RecordGuessRejected counts a rejected guess submission by reason.
func RecordGuessRejected(reason string) {
	globalManager.guessesRejected.WithLabelValues(reason).Inc()
}

// RecordReveal counts a revealed day.
func RecordReveal() {
	globalManager.revealsRecorded.Inc()
}

// RecordReset counts a day reset.
func RecordReset() {
	globalManager.daysReset.Inc()
}

// UpdateParticipantWins publishes a participant's current win count.
func UpdateParticipantWins(participant string, wins int) {
	globalManager.participantWins.WithLabelValues(participant).Set(float64(wins))
}

// UpdateTrackedDays publishes the number of days in the document.
func UpdateTrackedDays(count int) {
	globalManager.trackedDays.Set(float64(count))
}

// UpdateRevealedDays publishes the number of revealed days.
func UpdateRevealedDays(count int) {
	globalManager.revealedDays.Set(float64(count))
}

// UpdateTotalGuesses publishes the total stored guess count.
func UpdateTotalGuesses(count int) {
	globalManager.totalGuesses.Set(float64(count))
}

// RecordStoreLoad observes a document load duration.
func RecordStoreLoad(latencyMs float64) {
	globalManager.storeLoadLatency.Observe(latencyMs)
}

// RecordStoreSave observes a document save duration.
func RecordStoreSave(latencyMs float64) {
	globalManager.storeSaveLatency.Observe(latencyMs)
}

// RecordStoreError counts a storage failure.
func RecordStoreError() {
	globalManager.storeErrors.Inc()
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateWSClients publishes the connected websocket client count.
func UpdateWSClients(count int) {
	globalManager.wsClients.Set(float64(count))
}

// RecordWSBroadcast counts a snapshot broadcast.
func RecordWSBroadcast() {
	globalManager.wsBroadcasts.Inc()
}

// UpdateSystemMemoryUsage publishes allocated memory.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount publishes the goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry served on /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
