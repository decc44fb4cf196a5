package command

import (
	"context"
	"fmt"

	"turnos/queue-service/internal/api"
	"turnos/queue-service/internal/api/handler/turn"
	"turnos/queue-service/internal/api/middleware"
	"turnos/queue-service/internal/config"
	"turnos/queue-service/internal/infra"
	"turnos/queue-service/internal/queue"
	"turnos/queue-service/internal/repository"
	turnService "turnos/queue-service/internal/service/turn"
	"turnos/queue-service/internal/worker"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run turnos API server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd Server) main(cfg *config.Config, ctx context.Context) {
	// stats live in redis when configured, otherwise in memory
	var statsRepo turnService.StatsRepository = repository.NewMemoryStatsRepository()

	if cfg.Redis.Host != "" {
		redisClient, err := infra.NewRedisClient(ctx, cfg.Redis, cmd.Logger)
		if err != nil {
			cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to redis"))
			return
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close redis"))
			}
		}()

		statsRepo = repository.NewRedisStatsRepository(redisClient)
	}

	// turn events go to kafka when configured
	var publisher turnService.EventPublisher = worker.NopPublisher{}
	if cfg.Kafka.Host != "" {
		kafkaWriter := infra.NewKafkaWriter(cfg.Kafka)
		defer func() {
			if err := kafkaWriter.Close(); err != nil {
				cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close kafka writer"))
			}
		}()

		pool := worker.NewWorkerPool(kafkaWriter, cmd.Logger, cfg.WorkerCount)
		pool.Start()
		defer pool.Stop()

		publisher = pool
	}

	store := queue.NewStore()
	turnServiceInstance := turnService.NewTurnService(store, publisher, statsRepo, cmd.Logger)

	// create handlers
	turnHandler := turn.New(turnServiceInstance)

	// create middlewares
	var rateLimitMiddleware *middleware.RateLimitMiddleware
	if cfg.RateLimit.Enabled {
		rateLimitMiddleware = middleware.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		rateLimitMiddleware.StartJanitor(ctx, cfg.RateLimit.IdleTTL/2)
	}

	server := api.New(cfg.AppEnv, cmd.Logger)
	server.SetupAPIRoutes(
		turnHandler,
		rateLimitMiddleware,
	)

	// run the server
	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : stopped with error"))
	}
}
