package domain

import "strings"

// StockStatus classifies how urgently an inventory item needs restocking.
type StockStatus string

const (
	StockInStock  StockStatus = "In Stock"
	StockLow      StockStatus = "Low Stock"
	StockCritical StockStatus = "Critical"
)

func (s StockStatus) String() string { return string(s) }

// SupplierStatus classifies the health of a vendor relationship.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "Active"
	SupplierWarning  SupplierStatus = "Warning"
	SupplierInactive SupplierStatus = "Inactive"
)

func (s SupplierStatus) String() string { return string(s) }

// ReportStatus is the user-set state of a sales transaction line.
type ReportStatus string

const (
	ReportCompleted ReportStatus = "Completed"
	ReportPending   ReportStatus = "Pending"
	ReportCancelled ReportStatus = "Cancelled"
)

func (s ReportStatus) String() string { return string(s) }

var reportStatuses = map[string]ReportStatus{
	"completed": ReportCompleted,
	"pending":   ReportPending,
	"cancelled": ReportCancelled,
}

// ParseReportStatus returns the report status for a given label
// (case-insensitive).
func ParseReportStatus(label string) (ReportStatus, bool) {
	status, ok := reportStatuses[strings.ToLower(strings.TrimSpace(label))]

	return status, ok
}

// StockStatusFor derives an item's stock status from its stock levels. The
// critical band is measured against minimumStock while the low band is
// measured against reorderPoint; the two thresholds are intentionally
// different quantities (safety floor vs restock trigger).
func StockStatusFor(currentStock, minimumStock, reorderPoint int) StockStatus {
	if float64(currentStock) <= float64(minimumStock)*0.3 {
		return StockCritical
	}
	if currentStock <= reorderPoint {
		return StockLow
	}
	return StockInStock
}

// SupplierStatusFor derives a supplier's status from its rating and
// reliability percentage. The two Active bands overlap (the first is a
// subset of the second); both are kept to match the documented threshold
// ladder.
func SupplierStatusFor(rating float64, reliability int) SupplierStatus {
	if rating >= 4.5 && reliability >= 95 {
		return SupplierActive
	}
	if rating >= 4.0 && reliability >= 90 {
		return SupplierActive
	}
	if rating >= 3.5 || reliability >= 85 {
		return SupplierWarning
	}
	return SupplierInactive
}
