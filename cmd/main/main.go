package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courier_oms/internal/api"
	"courier_oms/internal/cache"
	"courier_oms/internal/config"
	"courier_oms/internal/database"
	"courier_oms/internal/kafka"
	"courier_oms/internal/metrics"
	"courier_oms/internal/service"
	"courier_oms/internal/tracing"
)

func main() {
	cfg := config.Get()

	shutdownTracing, err := tracing.InitTracerProvider(cfg.Tracing.ServiceName, cfg.Tracing.JaegerURL)
	if err != nil {
		log.Fatalf("Ошибка инициализации трейсинга: %v", err)
	}
	defer shutdownTracing()

	metrics.Init()

	// Хранилище (миграции применяются при подключении)
	storage, err := database.New(cfg.Postgres.URL, cfg.Postgres.MigrationsPath)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	trackingCache := newCache(ctx, cfg.Cache)
	if c, ok := trackingCache.(io.Closer); ok {
		defer c.Close()
	}
	if err := cache.WarmUp(ctx, storage, trackingCache, cfg.Cache.Size); err != nil {
		log.Printf("Ошибка при прогреве кэша: %v", err)
	}

	// Публикация событий трекинга включается заданием топика
	var publisher service.EventPublisher
	if cfg.Kafka.TrackingTopic != "" {
		p := kafka.NewTrackingPublisher(cfg.Kafka.Brokers, cfg.Kafka.TrackingTopic)
		defer p.Close()
		publisher = p
		log.Printf("Публикация событий трекинга в топик %s включена.", cfg.Kafka.TrackingTopic)
	}

	svc := service.New(storage, trackingCache, publisher)

	if cfg.Kafka.IntakeEnabled {
		consumer := kafka.NewConsumer(cfg.Kafka, svc)
		go consumer.Run(ctx)
	}

	server := api.NewServer(cfg.HTTP.Port, svc, cfg.Auth.JWTSecret)
	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("Ошибка запуска HTTP-сервера: %v", err)
		}
	}()

	// Ожидание сигнала для корректного завершения работы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	log.Println("Сервис останавливается...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ошибка остановки HTTP-сервера: %v", err)
	}
	log.Println("Сервис успешно остановлен.")
}

// newCache выбирает бэкенд кэша. Недоступный Redis заменяется LRU.
func newCache(ctx context.Context, cfg config.CacheConfig) cache.Cache {
	if cfg.Backend == "redis" {
		c, err := cache.NewRedisCache(ctx, cfg.RedisURL, cfg.TTL)
		if err == nil {
			log.Println("Кэш трекинга: Redis.")
			return c
		}
		log.Printf("Не удалось подключиться к Redis, используется LRU: %v", err)
	}
	log.Printf("Кэш трекинга: LRU на %d записей.", cfg.Size)
	return cache.NewLRUCache(cfg.Size)
}
