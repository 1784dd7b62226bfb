package dashboard

import (
	"github.com/partsmetrics/dashboard/internal/domain"
	"github.com/partsmetrics/dashboard/internal/filter"
	"github.com/partsmetrics/dashboard/internal/sorting"
)

// FilteredSortedReports applies the global filters (plus a view-local search
// term) and then the sort spec. Filtering always runs before sorting; a
// cleared spec leaves the filtered rows in insertion order.
func FilteredSortedReports(reports []domain.SalesReport, g filter.Global, localSearch string, spec sorting.Spec) []domain.SalesReport {
	return sorting.Apply(filter.SalesReports(reports, g, localSearch), spec, sorting.SalesReportColumns())
}

// FilteredSortedInventory is the inventory table projection.
func FilteredSortedInventory(items []domain.InventoryItem, g filter.Global, localSearch string, spec sorting.Spec) []domain.InventoryItem {
	return sorting.Apply(filter.Inventory(items, g, localSearch), spec, sorting.InventoryColumns())
}

// FilteredSortedSuppliers is the supplier table projection. Suppliers only
// honor the search term, never the date or price filters.
func FilteredSortedSuppliers(suppliers []domain.Supplier, g filter.Global, localSearch string, spec sorting.Spec) []domain.Supplier {
	return sorting.Apply(filter.Suppliers(suppliers, g.SearchQuery(localSearch)), spec, sorting.SupplierColumns())
}
