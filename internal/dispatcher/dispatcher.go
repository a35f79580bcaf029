package dispatcher

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DIMO-Network/slack-onboarding-bot/internal/events"
	"github.com/DIMO-Network/slack-onboarding-bot/internal/metrics"
	"github.com/DIMO-Network/slack-onboarding-bot/internal/services/onboarding"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

type Responder interface {
	Greet(ctx context.Context, user, channel string) error
	ListPinnedShows(ctx context.Context, channel string) error
}

type Onboarding interface {
	StartOnboarding(ctx context.Context, user, channel string) error
	UpdateEmojiTask(ctx context.Context, user, channel string) error
	UpdatePinTask(ctx context.Context, user, channel string) error
}

// Ack is the HTTP answer to a delivery.
type Ack struct {
	Status int
	// Body is only set for the url_verification handshake and holds the request verbatim.
	Body []byte
}

// Job is a classified event waiting to be handled after the delivery was acknowledged.
type Job struct {
	DeliveryID string
	Event      events.InboundEvent
}

// Config for a Dispatcher.
type Config struct {
	VerificationToken string
	// DedupTTL is how long an event_id is remembered to drop redeliveries.
	DedupTTL time.Duration
}

// Dispatcher authenticates and classifies Slack deliveries and routes them to handlers.
type Dispatcher struct {
	verificationToken []byte
	seen              *cache.Cache
	responder         Responder
	onboarding        Onboarding
	logger            zerolog.Logger
}

// New creates a new Dispatcher.
func New(cfg Config, responder Responder, onboarding Onboarding, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		verificationToken: []byte(cfg.VerificationToken),
		seen:              cache.New(cfg.DedupTTL, 2*cfg.DedupTTL),
		responder:         responder,
		onboarding:        onboarding,
		logger:            logger,
	}
}

// Receive decides the answer for a delivery. A non-nil Job must be handed to Run
// once the answer has been sent.
func (d *Dispatcher) Receive(body []byte) (Ack, *Job) {
	env := events.Parse(body)

	if !d.validToken(env.Token) {
		metrics.EventsReceived.WithLabelValues(metrics.OutcomeForbidden).Inc()
		return Ack{Status: http.StatusForbidden}, nil
	}

	if env.IsURLVerification() {
		metrics.EventsReceived.WithLabelValues(metrics.OutcomeURLVerification).Inc()
		return Ack{Status: http.StatusOK, Body: body}, nil
	}

	ok := Ack{Status: http.StatusOK}
	if !env.HasEvent {
		metrics.EventsReceived.WithLabelValues(metrics.OutcomeNoEvent).Inc()
		return ok, nil
	}

	ev := env.Event
	switch ev.Kind {
	case events.KindUnknown, events.KindBotMessage:
		metrics.EventsReceived.WithLabelValues(ev.Kind.String()).Inc()
		return ok, nil
	}

	deliveryID := env.EventID
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	} else if err := d.seen.Add(deliveryID, struct{}{}, cache.DefaultExpiration); err != nil {
		metrics.EventsReceived.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		d.logger.Debug().Str("event_id", deliveryID).Msg("Dropping redelivered event")
		return ok, nil
	}

	metrics.EventsReceived.WithLabelValues(ev.Kind.String()).Inc()
	return ok, &Job{DeliveryID: deliveryID, Event: ev}
}

// Run executes the handler for job. Failures are logged and counted here and
// returned for callers that want them.
func (d *Dispatcher) Run(ctx context.Context, job *Job) error {
	logger := d.logger.With().
		Str("delivery_id", job.DeliveryID).
		Str("kind", job.Event.Kind.String()).
		Logger()

	err := d.handle(ctx, job.Event)
	switch {
	case err == nil:
		logger.Debug().Msg("Event handled")
	case errors.Is(err, onboarding.ErrSessionNotFound):
		metrics.MissingSessions.Inc()
		logger.Warn().Err(err).Msg("Ignoring task event without onboarding session")
	default:
		metrics.HandlerFailures.WithLabelValues(job.Event.Kind.String()).Inc()
		logger.Error().Err(err).Msg("Failed to handle event")
	}
	return err
}

func (d *Dispatcher) handle(ctx context.Context, ev events.InboundEvent) error {
	switch ev.Kind {
	case events.KindGreet:
		return d.responder.Greet(ctx, ev.User, ev.Channel)
	case events.KindListPinnedShows:
		return d.responder.ListPinnedShows(ctx, ev.Channel)
	case events.KindStartOnboarding:
		return d.onboarding.StartOnboarding(ctx, ev.User, ev.Channel)
	case events.KindUpdateEmojiTask:
		return d.onboarding.UpdateEmojiTask(ctx, ev.User, ev.ItemChannel)
	case events.KindUpdatePinTask:
		return d.onboarding.UpdatePinTask(ctx, ev.User, ev.ChannelID)
	default:
		return fmt.Errorf("no handler for event kind %s", ev.Kind)
	}
}

func (d *Dispatcher) validToken(token string) bool {
	if token == "" || len(d.verificationToken) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), d.verificationToken) == 1
}
