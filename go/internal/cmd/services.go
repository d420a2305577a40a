package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/pelada/go/internal/draw"
	"github.com/mcdev12/pelada/go/internal/events"
	"github.com/mcdev12/pelada/go/internal/gateway"
	"github.com/mcdev12/pelada/go/internal/metrics"
	"github.com/mcdev12/pelada/go/internal/player"
	"github.com/mcdev12/pelada/go/internal/teamdraw"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Draw      *draw.Service
	Gateway   *gateway.Service
	Registry  *prometheus.Registry
	publisher *events.JetStreamPublisher
}

func setupServices(ctx context.Context, config *Config, database *sql.DB, pool *pgxpool.Pool) (*Services, error) {
	// Database layer → Repository layer → App layer → Service layer
	natsURL := getEnv("NATS_URL", events.DefaultJetStreamConfig().URL)
	services := &Services{Registry: prometheus.NewRegistry()}
	services.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Players
	playerApp := player.NewApp(player.NewRepository(pool))

	// Events
	var publisher draw.EventPublisher = events.NoopPublisher{}
	if config.Events.Enabled {
		jsConfig := events.DefaultJetStreamConfig()
		jsConfig.URL = natsURL
		jsPublisher, err := events.NewJetStreamPublisher(ctx, jsConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		services.publisher = jsPublisher
		publisher = jsPublisher
	}

	// Draws
	drawApp := draw.NewApp(
		playerApp,
		draw.NewRepository(database),
		publisher,
		teamdraw.NewDrawer(teamdraw.WithLogger(log.Logger)),
		metrics.NewPrometheus(services.Registry),
		draw.Config{MinPlayers: config.Draw.MinPlayers, MaxAttempts: config.Draw.MaxAttempts},
	)
	services.Draw = draw.NewService(drawApp)

	// Gateway
	if config.Gateway.Enabled {
		gatewayConfig := gateway.DefaultConfig()
		gatewayConfig.Consumer.Stream.URL = natsURL
		gw, err := gateway.NewService(ctx, gatewayConfig, drawApp)
		if err != nil {
			services.Close()
			return nil, fmt.Errorf("failed to create match gateway: %w", err)
		}
		services.Gateway = gw
	}

	return services, nil
}

func (s *Services) Close() {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close event publisher")
		}
	}
}
