package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector defines the draw metrics recorded by the app layer
type Collector interface {
	RecordDraw(mode string, teams, unassigned int, variance float64, duration time.Duration)
	RecordDrawFailure(mode string)
	RecordPublish(eventType string, success bool)
}

// NoOp is a no-op implementation for when metrics aren't needed
type NoOp struct{}

func (NoOp) RecordDraw(string, int, int, float64, time.Duration) {}
func (NoOp) RecordDrawFailure(string)                            {}
func (NoOp) RecordPublish(string, bool)                          {}

// Prometheus implements Collector using client_golang.
type Prometheus struct {
	draws         *prometheus.CounterVec
	failures      *prometheus.CounterVec
	unassigned    prometheus.Counter
	variance      prometheus.Histogram
	duration      *prometheus.HistogramVec
	publishEvents *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	m := &Prometheus{
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pelada",
			Name:      "draws_total",
			Help:      "Team draws produced, by mode and team count.",
		}, []string{"mode", "teams"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pelada",
			Name:      "draw_failures_total",
			Help:      "Draw requests that failed, by mode.",
		}, []string{"mode"}),
		unassigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pelada",
			Name:      "draw_unassigned_players_total",
			Help:      "Players left out of every team because capacity ran out.",
		}),
		variance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pelada",
			Name:      "draw_skill_variance",
			Help:      "Variance of team skill totals per draw.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pelada",
			Name:      "draw_duration_seconds",
			Help:      "Time spent producing a draw, including storage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		publishEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pelada",
			Name:      "events_published_total",
			Help:      "Events handed to the bus, by type and status.",
		}, []string{"event_type", "status"}),
	}

	reg.MustRegister(m.draws, m.failures, m.unassigned, m.variance, m.duration, m.publishEvents)
	return m
}

func (m *Prometheus) RecordDraw(mode string, teams, unassigned int, variance float64, duration time.Duration) {
	m.draws.WithLabelValues(mode, teamLabel(teams)).Inc()
	m.unassigned.Add(float64(unassigned))
	m.variance.Observe(variance)
	m.duration.WithLabelValues(mode).Observe(duration.Seconds())
}

func (m *Prometheus) RecordDrawFailure(mode string) {
	m.failures.WithLabelValues(mode).Inc()
}

func (m *Prometheus) RecordPublish(eventType string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.publishEvents.WithLabelValues(eventType, status).Inc()
}

func teamLabel(teams int) string {
	switch teams {
	case 3:
		return "3"
	case 4:
		return "4"
	default:
		return "other"
	}
}
