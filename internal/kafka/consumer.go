package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"courier_oms/internal/config"
	"courier_oms/internal/database"
	"courier_oms/internal/metrics"
	"courier_oms/internal/model"
	"courier_oms/internal/service"
	"courier_oms/internal/validator"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=consumer.go -destination=./mocks/creator_mock.go -package=mocks OrderCreator

// OrderCreator создает заказ из заявки.
type OrderCreator interface {
	CreateOrder(ctx context.Context, draft *model.OrderDraft, source string) (*model.Order, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer читает заявки на создание заказов из Kafka.
type Consumer struct {
	reader     messageReader
	dlqWriter  messageWriter // Продюсер для отправки "битых" заявок в DLQ
	creator    OrderCreator
	tracer     trace.Tracer
	maxRetries int           // Количество попыток для временных ошибок БД
	backoff    time.Duration // Базовая пауза между попытками
}

// NewConsumer создает новый экземпляр Consumer.
func NewConsumer(cfg config.KafkaConfig, creator OrderCreator) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.IntakeTopic,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
		// Коммиты будут выполняться вручную после обработки.
	})

	dlqWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.DLQTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Consumer{
		reader:     reader,
		dlqWriter:  dlqWriter,
		creator:    creator,
		tracer:     otel.Tracer("kafka-consumer"),
		maxRetries: 3,
		backoff:    time.Second,
	}
}

// Run запускает цикл чтения заявок. Блокируется до отмены ctx.
func (c *Consumer) Run(ctx context.Context) {
	log.Println("Kafka-консюмер заявок запущен...")
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka-ридера: %v", err)
		}
		if err := c.dlqWriter.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka (DLQ) writer: %v", err)
		}
	}()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Kafka-консюмер останавливается.")
				return
			}
			log.Printf("Ошибка чтения сообщения из Kafka: %v", err)
			continue
		}

		if err := c.processMessage(ctx, msg); err != nil {
			// Не коммитим, Kafka доставит сообщение повторно.
			log.Printf("Ошибка обработки заявки (ключ: %s): %v. Не коммитим, ждем retry.", string(msg.Key), err)
			continue
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("Ошибка коммита сообщения: %v", err)
		}
	}
}

// processMessage разбирает заявку и создает по ней заказ.
// Возвращает error, только если обработку прервала отмена ctx.
// Невалидные заявки и исчерпанные попытки уходят в DLQ и коммитятся.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) error {
	ctx, span := c.tracer.Start(ctx, "Consumer.processMessage")
	defer span.End()

	var draft model.OrderDraft
	if err := json.Unmarshal(msg.Value, &draft); err != nil {
		log.Printf("Невалидное JSON-сообщение, отправка в DLQ: %v", err)
		c.sendToDLQ(ctx, msg, "json_unmarshal_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil
	}

	var createErr error
	for i := 0; i < c.maxRetries; i++ {
		var order *model.Order
		order, createErr = c.creator.CreateOrder(ctx, &draft, service.SourceKafka)
		if createErr == nil {
			log.Printf("Заказ %s создан из заявки %s.", order.OrderNumber, string(msg.Key))
			metrics.KafkaMessagesProcessed.WithLabelValues("success").Inc()
			return nil
		}

		if permanent(createErr) {
			log.Printf("Заявка %s отклонена, отправка в DLQ: %v", string(msg.Key), createErr)
			c.sendToDLQ(ctx, msg, "validation_error", createErr)
			metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
			return nil
		}

		metrics.DBErrors.WithLabelValues("create_order").Inc()
		log.Printf("Ошибка создания заказа (попытка %d/%d): %v", i+1, c.maxRetries, createErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff * time.Duration(i+1)):
		}
	}

	log.Printf("Не удалось создать заказ из заявки %s после %d попыток, отправка в DLQ.", string(msg.Key), c.maxRetries)
	c.sendToDLQ(ctx, msg, "db_save_error", createErr)
	metrics.KafkaMessagesProcessed.WithLabelValues("dlq_db_error").Inc()
	return nil
}

// permanent сообщает, что повтор заявки ничего не изменит.
func permanent(err error) bool {
	var verr *validator.ValidationError
	return errors.As(err, &verr) || errors.Is(err, database.ErrInvalidReference)
}

// sendToDLQ отправляет заявку в DLQ с причиной отказа в заголовках.
func (c *Consumer) sendToDLQ(ctx context.Context, originalMsg kafka.Message, reason string, procErr error) {
	ctx, span := c.tracer.Start(ctx, "Consumer.sendToDLQ")
	defer span.End()

	err := c.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: originalMsg.Value,
		Headers: []kafka.Header{
			{Key: "X-Original-Topic", Value: []byte(originalMsg.Topic)},
			{Key: "X-Error-Reason", Value: []byte(reason)},
			{Key: "X-Error-Details", Value: []byte(procErr.Error())},
		},
	})

	if err != nil {
		log.Printf("КРИТИЧНО: Не удалось отправить сообщение %s в DLQ: %v", string(originalMsg.Key), err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_failed_write").Inc()
		return
	}
	log.Printf("Сообщение %s отправлено в DLQ (Причина: %s)", string(originalMsg.Key), reason)
}
