package components

import (
	"context"

	"car-rental-api/internal/infra/cache"
	"car-rental-api/internal/infra/queue"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// GatewayModule wires the optional side-channels: the Redis availability
// cache and the RabbitMQ event publisher. Both degrade to no-ops when their
// backends are not configured.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(usecase.AvailabilityReadCache)),
		),
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(usecase.EventPublisher)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if client != nil {
				return client.Close()
			}
			return nil
		},
	})
	return client
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Redis.TTL)
}

func NewEventPublisher(cfg config.Config) *queue.Publisher {
	return queue.NewPublisher(cfg.AMQP.URL)
}
