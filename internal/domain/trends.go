package domain

import "github.com/shopspring/decimal"

// CategoryTrend is a growth signal for one product category. The demo
// dataset ships a fixed set of these; a real deployment would compute them
// from historical sales.
type CategoryTrend struct {
	Category string  `json:"category"`
	Growth   float64 `json:"growth"`
	Trend    string  `json:"trend"`
}

// Forecast carries the revenue outlook consumed by the recommendation rules.
// Confidence is a percentage.
type Forecast struct {
	NextMonth   decimal.Decimal `json:"next_month"`
	NextQuarter decimal.Decimal `json:"next_quarter"`
	GrowthRate  float64         `json:"growth_rate"`
	Confidence  int             `json:"confidence"`
}

// DefaultCategoryTrends returns the demo trend fixtures.
func DefaultCategoryTrends() []CategoryTrend {
	return []CategoryTrend{
		{Category: "Brake Parts", Growth: 12, Trend: "growing"},
		{Category: "Engine Parts", Growth: 17, Trend: "growing"},
		{Category: "Filters", Growth: 14, Trend: "growing"},
		{Category: "Lighting", Growth: -21, Trend: "declining"},
		{Category: "Suspension", Growth: 22, Trend: "growing"},
	}
}

// DefaultForecast returns the demo forecast fixture.
func DefaultForecast() Forecast {
	return Forecast{
		NextMonth:   decimal.NewFromInt(285000),
		NextQuarter: decimal.NewFromInt(890000),
		GrowthRate:  15,
		Confidence:  92,
	}
}
