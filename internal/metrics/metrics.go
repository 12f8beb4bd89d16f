package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "connectfour"

// Metrics holds the game engine's Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	commandsAccepted *prometheus.CounterVec
	commandsRejected *prometheus.CounterVec
	commandDuration  *prometheus.HistogramVec
	eventsApplied    *prometheus.CounterVec
	gamesWon         prometheus.Counter
	activeGames      prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commandsAccepted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_accepted_total",
				Help:      "Commands that produced an event",
			},
			[]string{"command"},
		),
		commandsRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_rejected_total",
				Help:      "Commands rejected by validation",
			},
			[]string{"command", "reason"},
		),
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "Time to process, persist and project a command",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		eventsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_applied_total",
				Help:      "Events projected into game state, including replay",
			},
			[]string{"type"},
		),
		gamesWon: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "games_won_total",
				Help:      "Games that ended with four in a row",
			},
		),
		activeGames: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_games",
				Help:      "Games that have not been won yet",
			},
		),
	}

	m.registry.MustRegister(
		m.commandsAccepted,
		m.commandsRejected,
		m.commandDuration,
		m.eventsApplied,
		m.gamesWon,
		m.activeGames,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) CommandAccepted(command string, elapsed time.Duration) {
	m.commandsAccepted.WithLabelValues(command).Inc()
	m.commandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}

func (m *Metrics) CommandRejected(command, reason string) {
	m.commandsRejected.WithLabelValues(command, reason).Inc()
}

func (m *Metrics) EventApplied(eventType string) {
	m.eventsApplied.WithLabelValues(eventType).Inc()
}

func (m *Metrics) GameWon() {
	m.gamesWon.Inc()
}

func (m *Metrics) SetActiveGames(n int) {
	m.activeGames.Set(float64(n))
}
