package rate

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput возвращается при некорректном весе.
var ErrInvalidInput = errors.New("некорректные входные данные для расчета тарифа")

var (
	one           = decimal.NewFromInt(1)
	insuranceRate = decimal.RequireFromString("0.10")
	moneyPlaces   = int32(2)
)

// Quote - результат расчета: стоимость и диапазон дней доставки.
type Quote struct {
	Rate          decimal.Decimal `json:"rate"`
	EstimatedDays string          `json:"estimatedDays"`
}

// Calculate считает стоимость доставки между зонами для заданного веса (кг)
// и уровня сервиса. Неизвестный сервис считается как regular, неизвестная
// пара зон получает множитель и срок по умолчанию.
func Calculate(from, to string, weight decimal.Decimal, service string) (Quote, error) {
	if !weight.IsPositive() {
		return Quote{}, ErrInvalidInput
	}

	t := tiers[Tier(service)]

	baseRate := t.base.Mul(Multiplier(from, to))
	weightRate := decimal.Max(decimal.Zero, weight.Sub(one)).Mul(t.perKg)

	return Quote{
		Rate:          baseRate.Add(weightRate).Round(moneyPlaces),
		EstimatedDays: EstimatedDays(from, to),
	}, nil
}

// Tier возвращает уровень сервиса, по которому будет идти расчет.
func Tier(service string) string {
	if _, ok := tiers[service]; ok {
		return service
	}
	return fallbackTier
}

// Multiplier ищет множитель сначала по прямому ключу, затем по обратному.
func Multiplier(from, to string) decimal.Decimal {
	if m, ok := multipliers[from+"-"+to]; ok {
		return m
	}
	if m, ok := multipliers[to+"-"+from]; ok {
		return m
	}
	return defaultMultiplier
}

// EstimatedDays ищет срок сначала по прямой паре, затем по обратной.
func EstimatedDays(from, to string) string {
	if days, ok := transitDays[from][to]; ok {
		return days
	}
	if days, ok := transitDays[to][from]; ok {
		return days
	}
	return defaultTransitDays
}

// Total - итоговая сумма: тариф плюс 10% страховки, если она выбрана.
func (q Quote) Total(hasInsurance bool) decimal.Decimal {
	if !hasInsurance {
		return q.Rate
	}
	return q.Rate.Add(q.Rate.Mul(insuranceRate)).Round(moneyPlaces)
}

// MarshalJSON пишет тариф числом с двумя знаками: {"rate":340.00,"estimatedDays":"3-6"}.
func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rate          json.Number `json:"rate"`
		EstimatedDays string      `json:"estimatedDays"`
	}{
		Rate:          json.Number(q.Rate.StringFixed(moneyPlaces)),
		EstimatedDays: q.EstimatedDays,
	})
}

// MaxDays возвращает верхнюю границу диапазона дней ("2-5" -> 5).
func (q Quote) MaxDays() int {
	days := q.EstimatedDays
	if i := strings.LastIndex(days, "-"); i >= 0 {
		days = days[i+1:]
	}
	n, err := strconv.Atoi(strings.TrimSpace(days))
	if err != nil {
		return 0
	}
	return n
}
