package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"courier_oms/internal/model"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// redisCache - общий для нескольких экземпляров сервиса кэш трекинга.
// Ошибки Redis не пробрасываются: для вызывающего кода это промах.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewRedisCache подключается к Redis по URL вида redis://host:6379/0.
func NewRedisCache(ctx context.Context, url string, ttl time.Duration) (Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("некорректный адрес Redis: %w", err)
	}
	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis недоступен: %w", err)
	}

	return newRedisCache(client, ttl), nil
}

func newRedisCache(client *redis.Client, ttl time.Duration) *redisCache {
	return &redisCache{
		client: client,
		ttl:    ttl,
		tracer: otel.Tracer("redis-cache"),
	}
}

func trackingKey(orderNumber string) string {
	return fmt.Sprintf("tracking:%s", orderNumber)
}

func (c *redisCache) Set(ctx context.Context, orderNumber string, value *model.PublicTracking) {
	ctx, span := c.tracer.Start(ctx, "RedisCache.Set")
	defer span.End()

	if value == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Ошибка сериализации трекинга %s: %v", orderNumber, err)
		return
	}

	if err := c.client.Set(ctx, trackingKey(orderNumber), data, c.ttl).Err(); err != nil {
		log.Printf("Ошибка записи в Redis (%s): %v", orderNumber, err)
	}
}

func (c *redisCache) Get(ctx context.Context, orderNumber string) (*model.PublicTracking, bool) {
	ctx, span := c.tracer.Start(ctx, "RedisCache.Get")
	defer span.End()

	data, err := c.client.Get(ctx, trackingKey(orderNumber)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Ошибка чтения из Redis (%s): %v", orderNumber, err)
		}
		return nil, false
	}

	var tracking model.PublicTracking
	if err := json.Unmarshal(data, &tracking); err != nil {
		log.Printf("Поврежденная запись в Redis (%s): %v", orderNumber, err)
		return nil, false
	}
	return &tracking, true
}

func (c *redisCache) Delete(ctx context.Context, orderNumber string) {
	ctx, span := c.tracer.Start(ctx, "RedisCache.Delete")
	defer span.End()

	if err := c.client.Del(ctx, trackingKey(orderNumber)).Err(); err != nil {
		log.Printf("Ошибка удаления из Redis (%s): %v", orderNumber, err)
	}
}

// Close закрывает клиент Redis.
func (c *redisCache) Close() error {
	return c.client.Close()
}
