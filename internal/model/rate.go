package model

import "github.com/shopspring/decimal"

// RateRequest - запрос калькулятора тарифа. Неизвестные зоны и уровни
// сервиса допускаются и считаются по значениям по умолчанию.
type RateRequest struct {
	FromRegion  string          `json:"fromRegion" validate:"required"`
	ToRegion    string          `json:"toRegion" validate:"required"`
	Weight      decimal.Decimal `json:"weight"`
	ServiceType string          `json:"serviceType" validate:"required"`
}
