// Command example seeds the demo dataset and walks the derived-state
// pipeline end to end: filtering, sorting, summaries, analytics and the
// recommendation engine, logging each stage's output.
package main

import (
	"github.com/shopspring/decimal"

	"github.com/partsmetrics/dashboard/internal/analytics"
	"github.com/partsmetrics/dashboard/internal/config"
	"github.com/partsmetrics/dashboard/internal/dashboard"
	"github.com/partsmetrics/dashboard/internal/domain"
	"github.com/partsmetrics/dashboard/internal/filter"
	"github.com/partsmetrics/dashboard/internal/seed"
	"github.com/partsmetrics/dashboard/internal/sorting"
	"github.com/partsmetrics/dashboard/internal/store"
	"github.com/partsmetrics/dashboard/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.App.LogLevel)
	log := logger.With("example")

	inventory := store.NewInventoryStore()
	suppliers := store.NewSupplierStore()
	reports := store.NewSalesReportStore()

	inventory.Load(seed.Inventory())
	suppliers.Load(seed.Suppliers())
	reports.Load(seed.SalesReports())

	reports.Subscribe(func(c store.Change) {
		log.Info().Str("op", string(c.Op)).Str("id", c.ID).Msg("sales reports changed")
	})

	// Add a report through the store so the observer fires and the id
	// sequence advances past the seeds.
	newID := reports.Add(store.NewSalesReport{
		ReportDate:    seed.SalesReports()[0].ReportDate,
		ProductName:   "Cabin Air Filter",
		Category:      "Filters",
		Quantity:      2,
		UnitPrice:     seed.Inventory()[4].UnitCost,
		TotalAmount:   seed.Inventory()[4].UnitCost.Mul(decimal.NewFromInt(2)),
		CustomerName:  "ABC Motors",
		PaymentMethod: "Credit Card",
		Status:        domain.ReportCompleted,
		OrderNumber:   "ORD-1848",
	})
	log.Info().Str("id", newID).Msg("added sales report")

	g := filter.Default(cfg.Filter)
	g.Categories = []string{"Filters", "Engine Parts"}

	spec := sorting.Spec{}.Toggle("total").Toggle("total") // descending by total
	rows := dashboard.FilteredSortedReports(reports.Reports(), g, "", spec)
	for _, r := range rows {
		log.Info().
			Str("id", r.ID).
			Str("product", r.ProductName).
			Str("total", r.TotalAmount.StringFixed(2)).
			Msg("filtered report")
	}

	sales := dashboard.SummarizeSales(reports.Reports())
	stock := dashboard.SummarizeInventory(inventory.Items())
	vendors := dashboard.SummarizeSuppliers(suppliers.Suppliers())
	log.Info().
		Str("revenue", sales.TotalRevenue.StringFixed(2)).
		Int("orders", sales.OrderCount).
		Int("low_stock", stock.LowStockCount).
		Int("critical", stock.CriticalCount).
		Int("active_suppliers", vendors.ActiveCount).
		Msg("dashboard summary")

	stats := analytics.StatsForProduct(reports.Reports(), "Ceramic Brake Pads")
	log.Info().
		Str("revenue", stats.TotalRevenue.StringFixed(2)).
		Float64("growth", stats.GrowthRate).
		Msg("brake pad stats")

	recs := analytics.Recommendations(inventory.Items(), domain.DefaultCategoryTrends(), domain.DefaultForecast())
	for _, rec := range recs {
		log.Info().
			Str("priority", string(rec.Priority)).
			Str("title", rec.Title).
			Str("impact", rec.Impact).
			Msg("recommendation")
	}
	for _, win := range analytics.QuickWins(inventory.Items()) {
		log.Info().Str("title", win.Title).Str("timeframe", win.Timeframe).Msg("quick win")
	}

	csv := reports.ExportCSV()
	log.Info().Int("bytes", len(csv)).Msg("exported sales reports csv")
}
