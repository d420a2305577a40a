package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

// JetStreamConfig describes the NATS connection and the draw event stream.
type JetStreamConfig struct {
	URL             string
	StreamName      string
	SubjectPrefix   string
	MaxReconnects   int
	ReconnectWait   time.Duration
	MaxAge          time.Duration
	MaxMsgs         int64
	Replicas        int
	DuplicateWindow time.Duration
}

func DefaultJetStreamConfig() JetStreamConfig {
	return JetStreamConfig{
		URL:             nats.DefaultURL,
		StreamName:      "PELADA_DRAWS",
		SubjectPrefix:   "pelada.draws",
		MaxReconnects:   -1,
		ReconnectWait:   2 * time.Second,
		MaxAge:          7 * 24 * time.Hour,
		MaxMsgs:         -1,
		Replicas:        1,
		DuplicateWindow: 2 * time.Hour,
	}
}

// Subject returns the subject an event type is published on.
func (c JetStreamConfig) Subject(eventType string) string {
	return fmt.Sprintf("%s.%s", c.SubjectPrefix, eventType)
}

// Connect opens a NATS connection that logs connection state changes.
func Connect(url string, maxReconnects int, reconnectWait time.Duration) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
			ev := log.Error().Err(err)
			if sub != nil {
				ev = ev.Str("subject", sub.Subject)
			}
			ev.Msg("NATS async error")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}
	return nc, nil
}

// JetStreamPublisher writes draw events to the draw stream.
type JetStreamPublisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	config JetStreamConfig
}

func NewJetStreamPublisher(ctx context.Context, cfg JetStreamConfig) (*JetStreamPublisher, error) {
	nc, err := Connect(cfg.URL, cfg.MaxReconnects, cfg.ReconnectWait)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	if err := EnsureStream(ctx, js, cfg); err != nil {
		nc.Close()
		return nil, err
	}

	return &JetStreamPublisher{nc: nc, js: js, config: cfg}, nil
}

// NewDrawCreatedEnvelope wraps draw in a DrawCreated envelope stamped with
// the time the draw was made.
func NewDrawCreatedEnvelope(draw *models.DrawResult) (Envelope, error) {
	return NewEnvelope(EventTypeDrawCreated, draw.MatchID, NewDrawCreatedPayload(draw), draw.CreatedAt)
}

// PublishDrawCreated publishes a DrawCreated event for draw.
func (p *JetStreamPublisher) PublishDrawCreated(ctx context.Context, draw *models.DrawResult) error {
	env, err := NewDrawCreatedEnvelope(draw)
	if err != nil {
		return err
	}
	return p.Publish(ctx, env)
}

// Publish sends env to the stream. The event ID doubles as the JetStream
// message ID so retries inside the duplicate window are dropped.
func (p *JetStreamPublisher) Publish(ctx context.Context, env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", env.EventType, err)
	}

	msg := nats.NewMsg(p.config.Subject(env.EventType))
	msg.Data = data
	msg.Header.Set("Event-Type", env.EventType)
	msg.Header.Set("Match-ID", env.MatchID)
	msg.Header.Set("Event-ID", env.EventID)

	ack, err := p.js.PublishMsg(ctx, msg,
		jetstream.WithMsgID(env.EventID),
		jetstream.WithExpectStream(p.config.StreamName),
	)
	if err != nil {
		return fmt.Errorf("publish %s for match %s: %w", env.EventType, env.MatchID, err)
	}

	log.Debug().
		Str("subject", msg.Subject).
		Str("event_id", env.EventID).
		Str("match_id", env.MatchID).
		Uint64("sequence", ack.Sequence).
		Bool("duplicate", ack.Duplicate).
		Msg("draw event published")
	return nil
}

func (p *JetStreamPublisher) Close() error {
	if p.nc != nil {
		p.nc.Close()
	}
	return nil
}

// NoopPublisher drops events. It is used when the event bus is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishDrawCreated(_ context.Context, draw *models.DrawResult) error {
	log.Debug().Str("match_id", draw.MatchID).Msg("event bus disabled, skipping DrawCreated")
	return nil
}
