package redis_fx

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"wanderly/internal/cache"
	"wanderly/internal/infra"
)

var Module = fx.Provide(
	provideRedisClient, provideCache)

func provideRedisClient() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379"
	}

	client, err := infra.InitRedis(context.Background(), url)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	return client
}

func provideCache(client *redis.Client) *cache.Cache {
	return cache.NewCache(client)
}
