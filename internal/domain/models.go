package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem represents a stocked automotive part.
type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SKU          string          `json:"sku"`
	CurrentStock int             `json:"current_stock"`
	MinimumStock int             `json:"minimum_stock"`
	ReorderPoint int             `json:"reorder_point"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Supplier     string          `json:"supplier"`
	Location     string          `json:"location"`
	Status       StockStatus     `json:"status"`
}

// StockValue returns currentStock x unitCost.
func (i InventoryItem) StockValue() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}

// SalesReport represents one completed/pending/cancelled transaction line.
// TotalAmount is stored independently of quantity x unitPrice; the store
// never recomputes it on partial update, that is the caller's job.
type SalesReport struct {
	ID            string          `json:"id"`
	ReportDate    time.Time       `json:"report_date"`
	ProductName   string          `json:"product_name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CustomerName  string          `json:"customer_name"`
	PaymentMethod string          `json:"payment_method"`
	Status        ReportStatus    `json:"status"`
	OrderNumber   string          `json:"order_number"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Supplier represents a vendor relationship. Reliability is an integer
// percentage (0-100) of historical on-time delivery.
type Supplier struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Location     string          `json:"location"`
	Rating       float64         `json:"rating"`
	DeliveryTime string          `json:"delivery_time"`
	Reliability  int             `json:"reliability"`
	TotalOrders  int             `json:"total_orders"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	Status       SupplierStatus  `json:"status"`
	Contact      string          `json:"contact"`
	Phone        string          `json:"phone"`
}
