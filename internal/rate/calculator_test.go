package rate

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate_KnownRoutes(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		weight   string
		service  string
		rate     string
		days     string
	}{
		// Вес до 1 кг не доплачивается, множитель 1.0
		{"ncr local express", "NCR", "NCR", "1", "express", "150", "1"},
		{"ncr to mindanao regular", "NCR", "MINDANAO", "5", "regular", "340", "3-6"},
		// Обратный ключ NCR-VISAYAS
		{"reverse lookup economy", "VISAYAS", "NCR", "2", "economy", "164", "2-5"},
		// Нет ни прямого, ни обратного множителя
		{"default multiplier", "MINDANAO", "NORTH LUZON", "1", "express", "225", "3-6"},
		{"fractional weight", "NCR", "SOUTH LUZON", "2.5", "express", "255", "1-2"},
		{"below one kg", "VISAYAS", "MINDANAO", "0.3", "economy", "112", "3-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Calculate(tt.from, tt.to, dec(tt.weight), tt.service)
			assert.NoError(t, err)
			assert.True(t, dec(tt.rate).Equal(q.Rate), "rate: want %s, got %s", tt.rate, q.Rate)
			assert.Equal(t, tt.days, q.EstimatedDays)
		})
	}
}

func TestCalculate_UnknownServiceFallsBackToRegular(t *testing.T) {
	unknown, err := Calculate("NCR", "VISAYAS", dec("3"), "same-day")
	assert.NoError(t, err)
	regular, err := Calculate("NCR", "VISAYAS", dec("3"), "regular")
	assert.NoError(t, err)
	assert.True(t, regular.Rate.Equal(unknown.Rate))
}

func TestCalculate_UnknownRegionUsesDefaults(t *testing.T) {
	q, err := Calculate("PALAWAN", "NCR", dec("1"), "regular")
	assert.NoError(t, err)
	assert.True(t, dec("150").Equal(q.Rate))
	assert.Equal(t, "3-7", q.EstimatedDays)
}

func TestCalculate_RejectsNonPositiveWeight(t *testing.T) {
	for _, w := range []string{"0", "-1", "-0.01"} {
		_, err := Calculate("NCR", "NCR", dec(w), "express")
		assert.ErrorIs(t, err, ErrInvalidInput, w)
	}
}

func TestCalculate_RoundsToCents(t *testing.T) {
	// 100*1.2 + 0.333*30 = 129.99
	q, err := Calculate("NCR", "NORTH LUZON", dec("1.333"), "regular")
	assert.NoError(t, err)
	assert.Equal(t, "129.99", q.Rate.StringFixed(2))

	// 80*1.6 + 0.00025*20 = 128.005, половина округляется от нуля
	q, err = Calculate("SOUTH LUZON", "VISAYAS", dec("1.00025"), "economy")
	assert.NoError(t, err)
	assert.Equal(t, "128.01", q.Rate.StringFixed(2))
}

func TestCalculate_MonotonicInWeight(t *testing.T) {
	for _, service := range []string{"express", "regular", "economy"} {
		for _, from := range []string{"NCR", "NORTH LUZON", "SOUTH LUZON", "VISAYAS", "MINDANAO"} {
			for _, to := range []string{"NCR", "NORTH LUZON", "SOUTH LUZON", "VISAYAS", "MINDANAO"} {
				prev := decimal.Zero
				for w := 1; w <= 40; w++ {
					q, err := Calculate(from, to, decimal.NewFromInt(int64(w)).Div(decimal.NewFromInt(4)), service)
					assert.NoError(t, err)
					assert.False(t, q.Rate.IsNegative())
					assert.True(t, q.Rate.GreaterThanOrEqual(prev), "%s %s->%s w=%d", service, from, to, w)
					prev = q.Rate
				}
			}
		}
	}
}

func TestQuote_Total(t *testing.T) {
	q := Quote{Rate: dec("164"), EstimatedDays: "2-5"}
	assert.True(t, dec("164").Equal(q.Total(false)))
	assert.True(t, dec("180.4").Equal(q.Total(true)))
}

func TestQuote_MaxDays(t *testing.T) {
	assert.Equal(t, 1, Quote{EstimatedDays: "1"}.MaxDays())
	assert.Equal(t, 5, Quote{EstimatedDays: "2-5"}.MaxDays())
	assert.Equal(t, 7, Quote{EstimatedDays: "3-7"}.MaxDays())
	assert.Equal(t, 0, Quote{EstimatedDays: ""}.MaxDays())
}

func TestTier(t *testing.T) {
	assert.Equal(t, "express", Tier("express"))
	assert.Equal(t, "regular", Tier("overnight"))
	assert.Equal(t, "regular", Tier(""))
}

func TestQuote_JSONRateIsNumber(t *testing.T) {
	q, err := Calculate("NCR", "MINDANAO", dec("5"), "regular")
	assert.NoError(t, err)

	raw, err := json.Marshal(q)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"rate":340,"estimatedDays":"3-6"}`, string(raw))

	var fields map[string]any
	assert.NoError(t, json.Unmarshal(raw, &fields))
	assert.IsType(t, float64(0), fields["rate"])

	// Обратное чтение тоже работает
	var back Quote
	assert.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Rate.Equal(dec("340")))
}
