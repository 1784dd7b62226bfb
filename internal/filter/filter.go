// Package filter applies the shared dashboard filter configuration to entity
// collections. Every function returns a fresh slice with input order
// preserved; inputs are never mutated.
package filter

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/partsmetrics/dashboard/internal/config"
	"github.com/partsmetrics/dashboard/internal/domain"
)

// nowFn is swapped out by tests exercising the rolling date tokens.
var nowFn = time.Now

// AnalyticsView selects the time-bucket granularity for chart generation.
// It does not participate in filtering.
type AnalyticsView string

const (
	ViewDaily     AnalyticsView = "daily"
	ViewWeekly    AnalyticsView = "weekly"
	ViewMonthly   AnalyticsView = "monthly"
	ViewQuarterly AnalyticsView = "quarterly"
	ViewAnnually  AnalyticsView = "annually"
)

// CustomRange bounds a custom date filter, inclusive on both ends.
type CustomRange struct {
	From time.Time
	To   time.Time
}

// PriceRange bounds the unit price filter, inclusive on both ends.
type PriceRange struct {
	Min float64
	Max float64
}

// Global is the shared filter configuration propagated to every filterable
// view. Empty Categories or Status sets mean "match all", not "match none".
type Global struct {
	SearchTerm      string
	DateRange       string
	CustomDateRange *CustomRange
	AnalyticsView   AnalyticsView
	Categories      []string
	Status          []string
	PriceRange      PriceRange
	// DemoYear anchors the named month/quarter/ytd tokens; zero falls back
	// to 2025, the year the demo dataset lives in.
	DemoYear int
}

// Default returns the initial global filter state.
func Default(cfg config.FilterConfig) Global {
	return Global{
		DateRange:     DateRangeOctober,
		AnalyticsView: ViewMonthly,
		PriceRange:    PriceRange{Min: cfg.PriceRangeMin, Max: cfg.PriceRangeMax},
		DemoYear:      cfg.DemoYear,
	}
}

// SearchQuery resolves the precedence between the global search term and a
// view-local one: the global term wins whenever it is non-empty; the two are
// never combined.
func (g Global) SearchQuery(local string) string {
	if g.SearchTerm != "" {
		return g.SearchTerm
	}
	return local
}

func matchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// matchesSet implements the empty-means-all semantic.
func matchesSet(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func (p PriceRange) contains(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(decimal.NewFromFloat(p.Min)) &&
		amount.LessThanOrEqual(decimal.NewFromFloat(p.Max))
}

// Inventory filters items by search (name/sku/category), category set,
// status set and unit cost price range.
func Inventory(items []domain.InventoryItem, g Global, localSearch string) []domain.InventoryItem {
	query := g.SearchQuery(localSearch)

	out := make([]domain.InventoryItem, 0, len(items))
	for _, it := range items {
		if !matchesSearch(query, it.Name, it.SKU, it.Category) {
			continue
		}
		if !matchesSet(g.Categories, it.Category) {
			continue
		}
		if !matchesSet(g.Status, it.Status.String()) {
			continue
		}
		if !g.PriceRange.contains(it.UnitCost) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// SalesReports filters reports by search (product/customer/order
// number/category), category set, status set and report date range.
func SalesReports(reports []domain.SalesReport, g Global, localSearch string) []domain.SalesReport {
	query := g.SearchQuery(localSearch)
	now := nowFn()

	out := make([]domain.SalesReport, 0, len(reports))
	for _, r := range reports {
		if !matchesSearch(query, r.ProductName, r.CustomerName, r.OrderNumber, r.Category) {
			continue
		}
		if !matchesSet(g.Categories, r.Category) {
			continue
		}
		if !matchesSet(g.Status, r.Status.String()) {
			continue
		}
		if !g.matchesDateRange(r.ReportDate, now) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Suppliers filters by the view-local search term over name and category.
func Suppliers(suppliers []domain.Supplier, search string) []domain.Supplier {
	out := make([]domain.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if !matchesSearch(search, s.Name, s.Category) {
			continue
		}
		out = append(out, s)
	}
	return out
}
