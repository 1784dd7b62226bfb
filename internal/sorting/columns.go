package sorting

import "github.com/partsmetrics/dashboard/internal/domain"

// InventoryColumns maps the inventory table's sortable column keys to
// comparators. Keys match the table headers, not struct field names.
func InventoryColumns() map[string]Comparator[domain.InventoryItem] {
	return map[string]Comparator[domain.InventoryItem]{
		"product": func(a, b domain.InventoryItem) int {
			return CompareStrings(a.Name, b.Name)
		},
		"sku": func(a, b domain.InventoryItem) int {
			return CompareStrings(a.SKU, b.SKU)
		},
		"category": func(a, b domain.InventoryItem) int {
			return CompareStrings(a.Category, b.Category)
		},
		"currentStock": func(a, b domain.InventoryItem) int {
			return CompareInts(a.CurrentStock, b.CurrentStock)
		},
		"minStock": func(a, b domain.InventoryItem) int {
			return CompareInts(a.MinimumStock, b.MinimumStock)
		},
		"unitCost": func(a, b domain.InventoryItem) int {
			return CompareDecimals(a.UnitCost, b.UnitCost)
		},
		"supplier": func(a, b domain.InventoryItem) int {
			return CompareStrings(a.Supplier, b.Supplier)
		},
		"status": func(a, b domain.InventoryItem) int {
			return CompareStrings(a.Status.String(), b.Status.String())
		},
	}
}

// SalesReportColumns maps the sales report table's sortable column keys to
// comparators. "total" reads the stored totalAmount, never a recomputation.
func SalesReportColumns() map[string]Comparator[domain.SalesReport] {
	return map[string]Comparator[domain.SalesReport]{
		"date": func(a, b domain.SalesReport) int {
			return CompareTimes(a.ReportDate, b.ReportDate)
		},
		"orderNumber": func(a, b domain.SalesReport) int {
			return CompareStrings(a.OrderNumber, b.OrderNumber)
		},
		"product": func(a, b domain.SalesReport) int {
			return CompareStrings(a.ProductName, b.ProductName)
		},
		"category": func(a, b domain.SalesReport) int {
			return CompareStrings(a.Category, b.Category)
		},
		"customer": func(a, b domain.SalesReport) int {
			return CompareStrings(a.CustomerName, b.CustomerName)
		},
		"quantity": func(a, b domain.SalesReport) int {
			return CompareInts(a.Quantity, b.Quantity)
		},
		"unitPrice": func(a, b domain.SalesReport) int {
			return CompareDecimals(a.UnitPrice, b.UnitPrice)
		},
		"total": func(a, b domain.SalesReport) int {
			return CompareDecimals(a.TotalAmount, b.TotalAmount)
		},
		"payment": func(a, b domain.SalesReport) int {
			return CompareStrings(a.PaymentMethod, b.PaymentMethod)
		},
		"status": func(a, b domain.SalesReport) int {
			return CompareStrings(a.Status.String(), b.Status.String())
		},
	}
}

// SupplierColumns maps the supplier table's sortable column keys to
// comparators.
func SupplierColumns() map[string]Comparator[domain.Supplier] {
	return map[string]Comparator[domain.Supplier]{
		"name": func(a, b domain.Supplier) int {
			return CompareStrings(a.Name, b.Name)
		},
		"category": func(a, b domain.Supplier) int {
			return CompareStrings(a.Category, b.Category)
		},
		"location": func(a, b domain.Supplier) int {
			return CompareStrings(a.Location, b.Location)
		},
		"rating": func(a, b domain.Supplier) int {
			return CompareFloats(a.Rating, b.Rating)
		},
		"reliability": func(a, b domain.Supplier) int {
			return CompareInts(a.Reliability, b.Reliability)
		},
		"totalOrders": func(a, b domain.Supplier) int {
			return CompareInts(a.TotalOrders, b.TotalOrders)
		},
		"totalSpent": func(a, b domain.Supplier) int {
			return CompareDecimals(a.TotalSpent, b.TotalSpent)
		},
		"status": func(a, b domain.Supplier) int {
			return CompareStrings(a.Status.String(), b.Status.String())
		},
	}
}
