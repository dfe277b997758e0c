package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courier_oms/internal/metrics"
	"courier_oms/internal/model"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TrackingMessage - событие трекинга в топике. Ключ сообщения - номер заказа,
// поэтому события одного заказа попадают в одну партицию.
type TrackingMessage struct {
	OrderNumber string    `json:"orderNumber"`
	OrderID     string    `json:"orderId"`
	EventID     string    `json:"eventId"`
	Status      string    `json:"status"`
	Location    *string   `json:"location"`
	Notes       *string   `json:"notes"`
	Timestamp   time.Time `json:"timestamp"`
	UpdatedBy   string    `json:"updatedBy"`
}

// TrackingPublisher публикует события трекинга в Kafka.
type TrackingPublisher struct {
	writer messageWriter
	tracer trace.Tracer
}

func NewTrackingPublisher(brokers []string, topic string) *TrackingPublisher {
	return &TrackingPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
		tracer: otel.Tracer("kafka-publisher"),
	}
}

// PublishTracking отправляет одно событие.
func (p *TrackingPublisher) PublishTracking(ctx context.Context, orderNumber string, event model.TrackingEvent) error {
	ctx, span := p.tracer.Start(ctx, "TrackingPublisher.PublishTracking")
	defer span.End()

	value, err := json.Marshal(TrackingMessage{
		OrderNumber: orderNumber,
		OrderID:     event.OrderID,
		EventID:     event.ID,
		Status:      event.Status,
		Location:    event.Location,
		Notes:       event.Notes,
		Timestamp:   event.Timestamp,
		UpdatedBy:   event.UpdatedBy,
	})
	if err != nil {
		metrics.TrackingEventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("ошибка сериализации события %s: %w", event.ID, err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(orderNumber), Value: value}); err != nil {
		metrics.TrackingEventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("ошибка публикации события %s: %w", event.ID, err)
	}

	metrics.TrackingEventsPublished.WithLabelValues("success").Inc()
	return nil
}

func (p *TrackingPublisher) Close() error {
	return p.writer.Close()
}
