package dashboard

import (
	"testing"

	"github.com/partsmetrics/dashboard/internal/filter"
	"github.com/partsmetrics/dashboard/internal/seed"
	"github.com/partsmetrics/dashboard/internal/sorting"
)

func openFilter() filter.Global {
	return filter.Global{DateRange: filter.DateRangeAll, PriceRange: filter.PriceRange{Min: 0, Max: 1000}}
}

func TestFilteredSortedReports(t *testing.T) {
	g := openFilter()
	g.Categories = []string{"Engine Parts"}
	spec := sorting.Spec{Column: "total", Direction: sorting.Descending}

	got := FilteredSortedReports(seed.SalesReports(), g, "", spec)

	if len(got) != 3 {
		t.Fatalf("got %d engine part reports, want 3", len(got))
	}
	// 540 (oil), 400 (spark plugs), 385 (transmission fluid).
	wantIDs := []string{"SR-006", "SR-003", "SR-010"}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("row %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestFilteredSortedReportsClearedSortKeepsStoreOrder(t *testing.T) {
	got := FilteredSortedReports(seed.SalesReports(), openFilter(), "", sorting.Spec{})

	if got[0].ID != "SR-001" || got[len(got)-1].ID != "SR-010" {
		t.Errorf("cleared sort reordered rows: first %s, last %s", got[0].ID, got[len(got)-1].ID)
	}
}

func TestFilteredSortedInventory(t *testing.T) {
	spec := sorting.Spec{Column: "currentStock", Direction: sorting.Ascending}

	got := FilteredSortedInventory(seed.Inventory(), openFilter(), "filter", spec)

	// Local search matches the two filter products; lowest stock first.
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].ID != "INV002" || got[1].ID != "INV005" {
		t.Errorf("order = %s, %s, want INV002 then INV005", got[0].ID, got[1].ID)
	}
}

func TestFilteredSortedSuppliersGlobalSearchWins(t *testing.T) {
	g := openFilter()
	g.SearchTerm = "lighting"
	spec := sorting.Spec{Column: "rating", Direction: sorting.Descending}

	got := FilteredSortedSuppliers(seed.Suppliers(), g, "engine", spec)

	if len(got) != 1 || got[0].ID != "SUP004" {
		t.Fatalf("got %d suppliers, want just LightTech", len(got))
	}
}
