package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/mcdev12/pelada/go/internal/events"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

// ConsumerConfig names the durable consumer the gateway reads draw events
// through. Stream carries the connection and stream settings shared with the
// publisher.
type ConsumerConfig struct {
	Stream        events.JetStreamConfig
	Name          string
	MaxDeliver    int
	AckWait       time.Duration
	MaxAckPending int
	// Buffer bounds how many fetched messages wait for broadcast.
	Buffer int
}

func DefaultConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		Stream:        events.DefaultJetStreamConfig(),
		Name:          "pelada-gateway",
		MaxDeliver:    5,
		AckWait:       30 * time.Second,
		MaxAckPending: 100,
		Buffer:        100,
	}
}

// jetStreamConsumer is the durable consumer definition. Live clients only
// care about draws made after they connect, so delivery starts at new
// messages.
func (c ConsumerConfig) jetStreamConsumer() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Name:          c.Name,
		Durable:       c.Name,
		Description:   "Pelada match gateway",
		FilterSubject: c.Stream.SubjectFilter(),
		DeliverPolicy: jetstream.DeliverNewPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    c.MaxDeliver,
		AckWait:       c.AckWait,
		MaxAckPending: c.MaxAckPending,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
	}
}

// EventConsumer relays draw events from JetStream to the match rooms of a
// ConnectionManager.
type EventConsumer struct {
	rooms    *ConnectionManager
	nc       *nats.Conn
	consumer jetstream.Consumer
	config   ConsumerConfig
}

// NewEventConsumer connects to NATS and binds the durable consumer. The draw
// stream is created here when missing, so the gateway does not depend on the
// publisher having started first.
func NewEventConsumer(ctx context.Context, cm *ConnectionManager, config ConsumerConfig) (*EventConsumer, error) {
	nc, err := events.Connect(config.Stream.URL, config.Stream.MaxReconnects, config.Stream.ReconnectWait)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	if err := events.EnsureStream(ctx, js, config.Stream); err != nil {
		nc.Close()
		return nil, err
	}

	consumer, err := js.CreateOrUpdateConsumer(ctx, config.Stream.StreamName, config.jetStreamConsumer())
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("bind consumer %s: %w", config.Name, err)
	}

	log.Info().
		Str("consumer", config.Name).
		Str("stream", config.Stream.StreamName).
		Str("filter", config.Stream.SubjectFilter()).
		Msg("gateway consumer ready")

	return &EventConsumer{rooms: cm, nc: nc, consumer: consumer, config: config}, nil
}

// Start relays events until ctx is cancelled.
func (ec *EventConsumer) Start(ctx context.Context) error {
	pending := make(chan jetstream.Msg, ec.config.Buffer)

	cc, err := ec.consumer.Consume(func(msg jetstream.Msg) {
		select {
		case pending <- msg:
		case <-ctx.Done():
			_ = msg.Nak()
		}
	})
	if err != nil {
		return fmt.Errorf("consume %s: %w", ec.config.Name, err)
	}
	defer cc.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-pending:
			ec.settle(msg, ec.relay(msg.Data()))
		}
	}
}

// settle acks relayed messages. A message that fails to decode will fail
// the same way on redelivery, so it is terminated.
func (ec *EventConsumer) settle(msg jetstream.Msg, relayErr error) {
	if relayErr != nil {
		log.Warn().Err(relayErr).Str("subject", msg.Subject()).Msg("dropping undecodable draw event")
		if err := msg.Term(); err != nil {
			log.Error().Err(err).Msg("term draw event")
		}
		return
	}
	if err := msg.Ack(); err != nil {
		log.Error().Err(err).Msg("ack draw event")
	}
}

// relay decodes one bus message and fans it out to the match room.
func (ec *EventConsumer) relay(data []byte) error {
	env, err := events.DecodeEnvelope(data)
	if err != nil {
		return err
	}

	event, err := toMatchEvent(env)
	if err != nil {
		return err
	}

	ec.rooms.BroadcastToMatch(env.MatchID, event)

	log.Debug().
		Str("event_id", env.EventID).
		Str("match_id", env.MatchID).
		Str("event_type", env.EventType).
		Msg("draw event relayed")
	return nil
}

func (ec *EventConsumer) Stop() error {
	if ec.nc == nil {
		return nil
	}
	return ec.nc.Drain()
}
