package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrder_DefaultsToPending(t *testing.T) {
	order := NewOrder(OrderDraft{SenderName: "Juan", RecipientName: "Maria"})
	assert.Equal(t, StatusPending, order.Status)

	order = NewOrder(OrderDraft{Status: StatusProcessing})
	assert.Equal(t, StatusProcessing, order.Status)
}

func TestNewAgent_ActiveByDefault(t *testing.T) {
	assert.True(t, NewAgent(AgentInput{FullName: "Pedro"}).IsActive)

	inactive := false
	assert.False(t, NewAgent(AgentInput{FullName: "Pedro", IsActive: &inactive}).IsActive)
}

func TestRegion_Valid(t *testing.T) {
	for _, r := range Regions {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, Region("LUZON").Valid())
	assert.False(t, Region("ncr").Valid())
}

func TestPublic_HidesSenderAndPricing(t *testing.T) {
	details := OrderWithDetails{Order: Order{
		OrderNumber:   "LBC-2025-000001",
		Status:        StatusInTransit,
		SenderName:    "Juan",
		SenderPhone:   "+639170000000",
		SenderEmail:   "juan@example.com",
		RecipientName: "Maria",
		ShippingRate:  decimal.NewNullDecimal(decimal.NewFromInt(150)),
		TotalAmount:   decimal.NewNullDecimal(decimal.NewFromInt(165)),
	}}

	raw, err := json.Marshal(details.Public())
	assert.NoError(t, err)

	var fields map[string]any
	assert.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "LBC-2025-000001", fields["orderNumber"])
	assert.Equal(t, "Maria", fields["recipientName"])
	for _, hidden := range []string{"senderName", "senderPhone", "senderEmail", "shippingRate", "totalAmount", "codAmount", "declaredValue"} {
		assert.NotContains(t, fields, hidden)
	}
	// История всегда массив, даже пустой
	assert.Equal(t, []any{}, fields["trackingHistory"])
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "LBC-2025-000042", FormatOrderNumber(2025, 42))
	assert.Equal(t, "LBC-2026-999999", FormatOrderNumber(2026, 999999))
	assert.Regexp(t, `^LBC-\d{4}-\d{6}$`, FormatOrderNumber(2026, 1_000_001))
}
