package rate

import "github.com/shopspring/decimal"

// tier - базовая ставка и доплата за килограмм для уровня сервиса.
// Первый килограмм входит в базовую ставку.
type tier struct {
	base  decimal.Decimal
	perKg decimal.Decimal
}

var tiers = map[string]tier{
	"express": {base: decimal.NewFromInt(150), perKg: decimal.NewFromInt(50)},
	"regular": {base: decimal.NewFromInt(100), perKg: decimal.NewFromInt(30)},
	"economy": {base: decimal.NewFromInt(80), perKg: decimal.NewFromInt(20)},
}

const fallbackTier = "regular"

// Множители по паре зон. Ключ направленный: "ОТКУДА-КУДА".
var multipliers = map[string]decimal.Decimal{
	"NCR-NCR":             decimal.RequireFromString("1.0"),
	"NCR-SOUTH LUZON":     decimal.RequireFromString("1.2"),
	"NCR-NORTH LUZON":     decimal.RequireFromString("1.2"),
	"NCR-VISAYAS":         decimal.RequireFromString("1.8"),
	"NCR-MINDANAO":        decimal.RequireFromString("2.2"),
	"SOUTH LUZON-VISAYAS": decimal.RequireFromString("1.6"),
	"NORTH LUZON-VISAYAS": decimal.RequireFromString("1.6"),
	"VISAYAS-MINDANAO":    decimal.RequireFromString("1.4"),
}

var defaultMultiplier = decimal.RequireFromString("1.5")

// Сроки доставки в днях по паре зон, не зависят от веса и сервиса.
var transitDays = map[string]map[string]string{
	"NCR": {
		"NCR":         "1",
		"SOUTH LUZON": "1-2",
		"NORTH LUZON": "1-2",
		"VISAYAS":     "2-5",
		"MINDANAO":    "3-6",
	},
	"SOUTH LUZON": {
		"NCR":      "1-2",
		"VISAYAS":  "2-5",
		"MINDANAO": "3-6",
	},
	"NORTH LUZON": {
		"NCR":      "1-2",
		"VISAYAS":  "2-5",
		"MINDANAO": "3-6",
	},
	"VISAYAS": {
		"NCR":      "2-5",
		"MINDANAO": "3-5",
	},
	"MINDANAO": {
		"NCR":     "3-6",
		"VISAYAS": "3-5",
	},
}

const defaultTransitDays = "3-7"
