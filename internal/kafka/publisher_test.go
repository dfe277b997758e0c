package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"courier_oms/internal/model"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
)

func TestTrackingPublisher_KeyedByOrderNumber(t *testing.T) {
	w := &captureWriter{}
	p := &TrackingPublisher{writer: w, tracer: otel.Tracer("test-tracer")}
	location := "Cebu Hub"
	ts := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	err := p.PublishTracking(context.Background(), "LBC-2025-000042", model.TrackingEvent{
		ID:        "e1",
		OrderID:   "o1",
		Status:    "arrived at hub",
		Location:  &location,
		Timestamp: ts,
		UpdatedBy: "dispatcher-7",
	})

	assert.NoError(t, err)
	if !assert.Len(t, w.messages, 1) {
		return
	}
	assert.Equal(t, "LBC-2025-000042", string(w.messages[0].Key))

	var got TrackingMessage
	assert.NoError(t, json.Unmarshal(w.messages[0].Value, &got))
	assert.Equal(t, "LBC-2025-000042", got.OrderNumber)
	assert.Equal(t, "e1", got.EventID)
	assert.Equal(t, "arrived at hub", got.Status)
	assert.Equal(t, "Cebu Hub", *got.Location)
	assert.Nil(t, got.Notes)
	assert.True(t, ts.Equal(got.Timestamp))
}

func TestTrackingPublisher_WriteError(t *testing.T) {
	w := &captureWriter{err: errors.New("broker unavailable")}
	p := &TrackingPublisher{writer: w, tracer: otel.Tracer("test-tracer")}

	err := p.PublishTracking(context.Background(), "LBC-2025-000042", model.TrackingEvent{ID: "e1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
}
