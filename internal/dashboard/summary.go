// Package dashboard assembles the headline numbers and filtered table
// projections the UI cards are built from.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/partsmetrics/dashboard/internal/domain"
)

// SalesSummary is the sales KPI card row.
type SalesSummary struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	OrderCount     int             `json:"order_count"`
	AverageOrder   decimal.Decimal `json:"average_order"`
	CompletedCount int             `json:"completed_count"`
}

// SummarizeSales totals the given reports. The average order value is zero
// when there are no reports.
func SummarizeSales(reports []domain.SalesReport) SalesSummary {
	s := SalesSummary{
		TotalRevenue: decimal.Zero,
		AverageOrder: decimal.Zero,
	}
	for _, r := range reports {
		s.TotalRevenue = s.TotalRevenue.Add(r.TotalAmount)
		s.OrderCount++
		if r.Status == domain.ReportCompleted {
			s.CompletedCount++
		}
	}
	if s.OrderCount > 0 {
		s.AverageOrder = s.TotalRevenue.Div(decimal.NewFromInt(int64(s.OrderCount)))
	}
	return s
}

// InventorySummary is the stock KPI card row.
type InventorySummary struct {
	ItemCount       int             `json:"item_count"`
	LowStockCount   int             `json:"low_stock_count"`
	CriticalCount   int             `json:"critical_count"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
}

// SummarizeInventory counts items by urgency and totals the stock value.
func SummarizeInventory(items []domain.InventoryItem) InventorySummary {
	s := InventorySummary{TotalStockValue: decimal.Zero}
	for _, item := range items {
		s.ItemCount++
		switch item.Status {
		case domain.StockLow:
			s.LowStockCount++
		case domain.StockCritical:
			s.CriticalCount++
		}
		s.TotalStockValue = s.TotalStockValue.Add(item.StockValue())
	}
	return s
}

// SupplierSummary is the vendor KPI card row. Averages are zero when there
// are no suppliers.
type SupplierSummary struct {
	SupplierCount      int             `json:"supplier_count"`
	ActiveCount        int             `json:"active_count"`
	AverageRating      float64         `json:"average_rating"`
	AverageReliability float64         `json:"average_reliability"`
	TotalSpend         decimal.Decimal `json:"total_spend"`
}

// SummarizeSuppliers totals spend and averages the health scores.
func SummarizeSuppliers(suppliers []domain.Supplier) SupplierSummary {
	s := SupplierSummary{TotalSpend: decimal.Zero}
	ratingSum, reliabilitySum := 0.0, 0
	for _, sup := range suppliers {
		s.SupplierCount++
		if sup.Status == domain.SupplierActive {
			s.ActiveCount++
		}
		ratingSum += sup.Rating
		reliabilitySum += sup.Reliability
		s.TotalSpend = s.TotalSpend.Add(sup.TotalSpent)
	}
	if s.SupplierCount > 0 {
		s.AverageRating = ratingSum / float64(s.SupplierCount)
		s.AverageReliability = float64(reliabilitySum) / float64(s.SupplierCount)
	}
	return s
}

// PercentOfTotal returns part as a percentage of total, 0 when total is 0.
func PercentOfTotal(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := part.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
