package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/syket-git/Elaka/internal/config"
)

// NewRedisClient создает клиент Redis для кэша районов, сессий и очереди вебхуков
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(Options(cfg))

	// Проверяем соединение с Redis
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}

// Options строит параметры клиента из конфигурации
func Options(cfg *config.Config) *redis.Options {
	return &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: 10,
		// Команды прерываются по дедлайну контекста запроса
		ContextTimeoutEnabled: true,
	}
}
