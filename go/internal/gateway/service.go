package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Service pushes match events from JetStream to WebSocket clients
type Service struct {
	rooms *ConnectionManager
	wsHandler         *WebSocketHandler
	stateHandler      *StateHandler
	eventConsumer     *EventConsumer
}

type Config struct {
	ConnectionConfig ConnectionConfig
	Consumer         ConsumerConfig
}

func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		Consumer:         DefaultConsumerConfig(),
	}
}

// NewService connects to JetStream and builds the gateway.
func NewService(ctx context.Context, config Config, provider DrawProvider) (*Service, error) {
	cm := NewConnectionManager(config.ConnectionConfig)

	consumer, err := NewEventConsumer(ctx, cm, config.Consumer)
	if err != nil {
		return nil, fmt.Errorf("start gateway consumer: %w", err)
	}

	return &Service{
		rooms: cm,
		wsHandler:         NewWebSocketHandler(cm),
		stateHandler:      NewStateHandler(provider),
		eventConsumer:     consumer,
	}, nil
}

// Start runs the gateway until ctx is cancelled
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting match gateway")

	go s.rooms.Start(ctx)

	go func() {
		if err := s.eventConsumer.Start(ctx); err != nil {
			log.Error().Err(err).Msg("event consumer failed")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("match gateway shutting down")
	return s.eventConsumer.Stop()
}

func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	s.stateHandler.RegisterStateRoutes(mux)
	log.Info().Msg("match gateway routes registered")
}
