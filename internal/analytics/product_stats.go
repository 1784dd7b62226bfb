// Package analytics computes the cross-entity aggregations behind the
// dashboard's insight cards: per-product statistics, time-bucketed demand,
// and rule-based recommendations.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/partsmetrics/dashboard/internal/domain"
)

// Period is the time-bucket granularity for product demand stats.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ProductStats summarizes all sales of one product.
type ProductStats struct {
	TotalRevenue  decimal.Decimal
	TotalOrders   int
	TotalQuantity int
	GrowthRate    float64
	Reports       []domain.SalesReport
}

// StatsForProduct aggregates every report matching the product name. The
// growth rate compares the first half of the slice ("recent", since the
// store prepends new reports) against the second half ("older") by position;
// it is 0 when the older half has no revenue.
func StatsForProduct(reports []domain.SalesReport, productName string) ProductStats {
	stats := ProductStats{
		TotalRevenue: decimal.Zero,
	}

	for _, r := range reports {
		if r.ProductName != productName {
			continue
		}
		stats.Reports = append(stats.Reports, r)
		stats.TotalRevenue = stats.TotalRevenue.Add(r.TotalAmount)
		stats.TotalOrders++
		stats.TotalQuantity += r.Quantity
	}

	mid := len(stats.Reports) / 2
	recent, older := decimal.Zero, decimal.Zero
	for i, r := range stats.Reports {
		if i < mid {
			recent = recent.Add(r.TotalAmount)
		} else {
			older = older.Add(r.TotalAmount)
		}
	}
	if older.IsPositive() {
		stats.GrowthRate, _ = recent.Sub(older).
			Div(older).
			Mul(decimal.NewFromInt(100)).
			Float64()
	}

	return stats
}

// PeriodBucket is one calendar bucket of a product's demand history.
// HighDemand marks buckets whose order count exceeds the mean across all
// buckets for the product.
type PeriodBucket struct {
	Period     string
	Revenue    decimal.Decimal
	Orders     int
	HighDemand bool
}

// TimePeriodStats groups a product's reports into calendar buckets: weekly
// keys are the Monday-aligned week start date, monthly keys are "YYYY-MM",
// yearly keys are "YYYY". Buckets come back most recent first.
func TimePeriodStats(reports []domain.SalesReport, productName string, period Period) []PeriodBucket {
	type group struct {
		revenue decimal.Decimal
		orders  int
	}
	groups := make(map[string]*group)

	for _, r := range reports {
		if r.ProductName != productName {
			continue
		}
		key := bucketKey(r.ReportDate, period)
		g, ok := groups[key]
		if !ok {
			g = &group{revenue: decimal.Zero}
			groups[key] = g
		}
		g.revenue = g.revenue.Add(r.TotalAmount)
		g.orders++
	}

	buckets := make([]PeriodBucket, 0, len(groups))
	totalOrders := 0
	for key, g := range groups {
		buckets = append(buckets, PeriodBucket{Period: key, Revenue: g.revenue, Orders: g.orders})
		totalOrders += g.orders
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period > buckets[j].Period
	})

	if len(buckets) > 0 {
		mean := float64(totalOrders) / float64(len(buckets))
		for i := range buckets {
			buckets[i].HighDemand = float64(buckets[i].Orders) > mean
		}
	}

	return buckets
}

func bucketKey(d time.Time, period Period) string {
	switch period {
	case PeriodWeekly:
		// Back up to Monday of the record's week.
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset).Format("2006-01-02")
	case PeriodYearly:
		return d.Format("2006")
	default:
		return d.Format("2006-01")
	}
}
