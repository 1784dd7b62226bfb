// Package seed provides the demo dataset used by the example program and
// the package tests. The fixtures mirror a small parts shop in October 2025.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/partsmetrics/dashboard/internal/domain"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func stamp(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Inventory returns the five demo parts. Statuses are pre-classified to the
// same values StockStatusFor derives from the stock levels.
func Inventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{
			ID: "INV001", Name: "Ceramic Brake Pads", Category: "Brake System",
			SKU: "BP-CER-001", CurrentStock: 25, MinimumStock: 50, ReorderPoint: 40,
			UnitCost: money("45.99"), Supplier: "BrakeTech Pro", Location: "A1-B3",
			Status: domain.StockLow,
		},
		{
			ID: "INV002", Name: "Oil Filter Premium", Category: "Filters",
			SKU: "OF-PREM-002", CurrentStock: 8, MinimumStock: 30, ReorderPoint: 25,
			UnitCost: money("12.50"), Supplier: "FilterMax Inc", Location: "B2-A4",
			Status: domain.StockCritical,
		},
		{
			ID: "INV003", Name: "Spark Plugs Platinum", Category: "Engine Parts",
			SKU: "SP-PLAT-003", CurrentStock: 150, MinimumStock: 100, ReorderPoint: 120,
			UnitCost: money("8.75"), Supplier: "IgniteCore", Location: "C1-B2",
			Status: domain.StockInStock,
		},
		{
			ID: "INV004", Name: "LED Headlight Bulbs", Category: "Lighting",
			SKU: "HL-LED-004", CurrentStock: 12, MinimumStock: 25, ReorderPoint: 20,
			UnitCost: money("28.99"), Supplier: "LightTech Solutions", Location: "D3-A1",
			Status: domain.StockLow,
		},
		{
			ID: "INV005", Name: "Air Filter Standard", Category: "Filters",
			SKU: "AF-STD-005", CurrentStock: 85, MinimumStock: 60, ReorderPoint: 70,
			UnitCost: money("15.25"), Supplier: "AirFlow Pro", Location: "B1-C3",
			Status: domain.StockInStock,
		},
	}
}

// Suppliers returns the five demo vendors.
func Suppliers() []domain.Supplier {
	return []domain.Supplier{
		{
			ID: "SUP001", Name: "BrakeTech Pro", Category: "Brake Systems",
			Location: "Detroit, MI", Rating: 4.8, DeliveryTime: "2-3 days",
			Reliability: 98, TotalOrders: 156, TotalSpent: money("89400"),
			Status: domain.SupplierActive, Contact: "sales@braketech.com", Phone: "(555) 123-4567",
		},
		{
			ID: "SUP002", Name: "FilterMax Inc", Category: "Filters & Fluids",
			Location: "Chicago, IL", Rating: 4.5, DeliveryTime: "3-5 days",
			Reliability: 94, TotalOrders: 98, TotalSpent: money("67200"),
			Status: domain.SupplierActive, Contact: "orders@filtermax.com", Phone: "(555) 234-5678",
		},
		{
			ID: "SUP003", Name: "IgniteCore", Category: "Engine Parts",
			Location: "Cleveland, OH", Rating: 4.9, DeliveryTime: "1-2 days",
			Reliability: 99, TotalOrders: 203, TotalSpent: money("124800"),
			Status: domain.SupplierActive, Contact: "support@ignitecore.com", Phone: "(555) 345-6789",
		},
		{
			ID: "SUP004", Name: "LightTech Solutions", Category: "Lighting",
			Location: "Phoenix, AZ", Rating: 4.2, DeliveryTime: "4-6 days",
			Reliability: 89, TotalOrders: 45, TotalSpent: money("34500"),
			Status: domain.SupplierWarning, Contact: "info@lighttech.com", Phone: "(555) 456-7890",
		},
		{
			ID: "SUP005", Name: "AirFlow Pro", Category: "Engine Parts",
			Location: "Atlanta, GA", Rating: 4.6, DeliveryTime: "2-4 days",
			Reliability: 96, TotalOrders: 78, TotalSpent: money("45600"),
			Status: domain.SupplierActive, Contact: "sales@airflowpro.com", Phone: "(555) 567-8901",
		},
	}
}

// SalesReports returns the ten demo transactions, newest first.
func SalesReports() []domain.SalesReport {
	return []domain.SalesReport{
		{
			ID: "SR-001", ReportDate: day("2025-10-20"), ProductName: "Ceramic Brake Pads",
			Category: "Brake System", Quantity: 2, UnitPrice: money("100"), TotalAmount: money("200"),
			CustomerName: "ABC Motors", PaymentMethod: "Credit Card", Status: domain.ReportCompleted,
			OrderNumber: "ORD-1847", Notes: "Premium brake pads for sedan",
			CreatedAt: stamp("2025-10-20T08:30:00Z"), UpdatedAt: stamp("2025-10-20T08:30:00Z"),
		},
		{
			ID: "SR-002", ReportDate: day("2025-10-20"), ProductName: "Premium Oil Filter",
			Category: "Filters", Quantity: 5, UnitPrice: money("50"), TotalAmount: money("250"),
			CustomerName: "AutoZone Services", PaymentMethod: "Bank Transfer", Status: domain.ReportPending,
			OrderNumber: "ORD-1846", Notes: "Bulk order for service center",
			CreatedAt: stamp("2025-10-20T09:15:00Z"), UpdatedAt: stamp("2025-10-20T09:15:00Z"),
		},
		{
			ID: "SR-003", ReportDate: day("2025-10-19"), ProductName: "Platinum Spark Plugs",
			Category: "Engine Parts", Quantity: 8, UnitPrice: money("50"), TotalAmount: money("400"),
			CustomerName: "Quick Fix Auto", PaymentMethod: "Cash", Status: domain.ReportCompleted,
			OrderNumber: "ORD-1845", Notes: "High performance spark plugs",
			CreatedAt: stamp("2025-10-19T14:20:00Z"), UpdatedAt: stamp("2025-10-19T14:20:00Z"),
		},
		{
			ID: "SR-004", ReportDate: day("2025-10-19"), ProductName: "Air Filter",
			Category: "Filters", Quantity: 3, UnitPrice: money("35"), TotalAmount: money("105"),
			CustomerName: "Elite Motors", PaymentMethod: "Credit Card", Status: domain.ReportCompleted,
			OrderNumber: "ORD-1844", Notes: "Standard air filters",
			CreatedAt: stamp("2025-10-19T11:45:00Z"), UpdatedAt: stamp("2025-10-19T11:45:00Z"),
		},
		{
			ID: "SR-005", ReportDate: day("2025-10-18"), ProductName: "Brake Rotors",
			Category: "Brake System", Quantity: 4, UnitPrice: money("200"), TotalAmount: money("800"),
			CustomerName: "Pro Auto Parts", PaymentMethod: "Credit Card", Status: domain.ReportCompleted,
			OrderNumber: "ORD-1843", Notes: "Heavy duty brake rotors",
			CreatedAt: stamp("2025-10-18T10:30:00Z"), UpdatedAt: stamp("2025-10-18T10:30:00Z"),
		},
		{
			ID: "SR-006", ReportDate: day("2025-10-18"), ProductName: "Engine Oil 5W-30",
			Category: "Engine Parts", Quantity: 12, UnitPrice: money("45"), TotalAmount: money("540"),
			CustomerName: "ABC Motors", PaymentMethod: "Bank Transfer", Status: domain.ReportCompleted,
			OrderNumber: "ORD-1842", Notes: "Synthetic engine oil",
			CreatedAt: stamp("2025-10-18T15:00:00Z"), UpdatedAt: stamp("2025-10-18T15:00:00Z"),
		},
		{
			ID: "SR-007", ReportDate: day("2025-10-17"), ProductName: "Battery 12V",
			Category: "Electrical", Quantity: 1, UnitPrice: money("150"), TotalAmount: money("150"),
			CustomerName: "Quick Fix Auto", PaymentMethod: "Cash", Status: domain.ReportCompleted,
			OrderNumber: "ORD-1841", Notes: "Car battery replacement",
			CreatedAt: stamp("2025-10-17T13:20:00Z"), UpdatedAt: stamp("2025-10-17T13:20:00Z"),
		},
		{
			ID: "SR-008", ReportDate: day("2025-10-17"), ProductName: "Windshield Wipers",
			Category: "Accessories", Quantity: 6, UnitPrice: money("30"), TotalAmount: money("180"),
			CustomerName: "AutoZone Services", PaymentMethod: "Credit Card", Status: domain.ReportCompleted,
			OrderNumber: "ORD-1840", Notes: "Premium wiper blades",
			CreatedAt: stamp("2025-10-17T09:10:00Z"), UpdatedAt: stamp("2025-10-17T09:10:00Z"),
		},
		{
			ID: "SR-009", ReportDate: day("2025-10-16"), ProductName: "Headlight Bulbs H7",
			Category: "Lighting", Quantity: 10, UnitPrice: money("25"), TotalAmount: money("250"),
			CustomerName: "Elite Motors", PaymentMethod: "Bank Transfer", Status: domain.ReportCompleted,
			OrderNumber: "ORD-1839", Notes: "LED headlight bulbs",
			CreatedAt: stamp("2025-10-16T16:30:00Z"), UpdatedAt: stamp("2025-10-16T16:30:00Z"),
		},
		{
			ID: "SR-010", ReportDate: day("2025-10-16"), ProductName: "Transmission Fluid",
			Category: "Engine Parts", Quantity: 7, UnitPrice: money("55"), TotalAmount: money("385"),
			CustomerName: "Pro Auto Parts", PaymentMethod: "Credit Card", Status: domain.ReportCompleted,
			OrderNumber: "ORD-1838", Notes: "ATF transmission fluid",
			CreatedAt: stamp("2025-10-16T12:00:00Z"), UpdatedAt: stamp("2025-10-16T12:00:00Z"),
		},
	}
}
