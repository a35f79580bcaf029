package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "slack_onboarding_bot"

// Outcome labels for requests that never reach a handler.
const (
	OutcomeForbidden       = "forbidden"
	OutcomeURLVerification = "url_verification"
	OutcomeDuplicate       = "duplicate"
	OutcomeNoEvent         = "no_event"
)

var (
	// EventsReceived counts inbound deliveries by classification.
	EventsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_received_total",
			Help:      "Inbound Slack deliveries by classification.",
		},
		[]string{"kind"},
	)

	// HandlerFailures counts dispatched jobs whose handler returned an error.
	HandlerFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Dispatched events whose handler failed.",
		},
		[]string{"kind"},
	)

	// MissingSessions counts task events for users who never started onboarding.
	MissingSessions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "missing_sessions_total",
			Help:      "Task events that referenced no onboarding session.",
		},
	)
)

func init() {
	prometheus.MustRegister(EventsReceived)
	prometheus.MustRegister(HandlerFailures)
	prometheus.MustRegister(MissingSessions)
}
