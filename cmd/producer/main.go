package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courier_oms/internal/config"
	"courier_oms/internal/generator"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
)

// Producer генерирует заявки партнеров и отправляет их в топик приема.
type Producer struct {
	writer *kafka.Writer
	gen    *generator.Generator
}

// NewProducer создает и настраивает новый экземпляр продюсера.
func NewProducer(brokers []string, topic string, seed int64) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: writer, gen: generator.New(seed)}
}

// Run отправляет по одной заявке каждые interval до отмены ctx.
// count > 0 ограничивает число заявок.
func (p *Producer) Run(ctx context.Context, interval time.Duration, count int) {
	log.Println("Продюсер запущен. Нажмите CTRL+C для остановки.")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sent := 0
	for {
		select {
		case <-ctx.Done():
			log.Println("Продюсер останавливается.")
			return
		case <-ticker.C:
			draft := p.gen.Draft()
			value, err := json.Marshal(draft)
			if err != nil {
				log.Printf("Ошибка сериализации заявки: %v", err)
				continue
			}

			key := uuid.NewString()
			if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
				log.Printf("Ошибка отправки сообщения: %v", err)
				continue
			}
			fmt.Printf("Отправлена заявка %s: %s -> %s\n", key, draft.FromRegion, draft.ToRegion)

			sent++
			if count > 0 && sent >= count {
				log.Printf("Отправлено %d заявок.", sent)
				return
			}
		}
	}
}

func (p *Producer) Close() {
	if err := p.writer.Close(); err != nil {
		log.Printf("Ошибка закрытия Kafka writer: %v", err)
	}
}

func main() {
	var (
		interval time.Duration
		count    int
		seed     int64
	)

	rootCmd := &cobra.Command{
		Use:   "producer",
		Short: "send generated order drafts to the intake topic",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Get()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			producer := NewProducer(cfg.Kafka.Brokers, cfg.Kafka.IntakeTopic, seed)
			defer producer.Close()

			producer.Run(ctx, interval, count)
		},
	}
	rootCmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "pause between drafts")
	rootCmd.Flags().IntVar(&count, "count", 0, "number of drafts to send, 0 means unlimited")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "generator seed, 0 means random")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
