package analytics

import (
	"strings"
	"testing"

	"github.com/partsmetrics/dashboard/internal/domain"
	"github.com/partsmetrics/dashboard/internal/seed"
)

func findRec(recs []Recommendation, id string) (Recommendation, bool) {
	for _, r := range recs {
		if r.ID == id {
			return r, true
		}
	}
	return Recommendation{}, false
}

func TestRecommendationsLowStockRule(t *testing.T) {
	recs := Recommendations(seed.Inventory(), domain.DefaultCategoryTrends(), domain.DefaultForecast())

	// INV002 (critical) outranks the two low-stock items in priority.
	critical, ok := findRec(recs, "low-stock-INV002")
	if !ok {
		t.Fatal("no recommendation for the critical oil filter")
	}
	if critical.Priority != PriorityHigh {
		t.Errorf("critical item priority = %q, want High", critical.Priority)
	}
	if critical.RelatedProduct != "Oil Filter Premium" {
		t.Errorf("RelatedProduct = %q", critical.RelatedProduct)
	}
	// 12.50 x (30 - 8) x 1.5 = 412.50
	if !strings.Contains(critical.Impact, "$412.50") {
		t.Errorf("Impact = %q, want it to price the 22-unit shortfall", critical.Impact)
	}

	low, ok := findRec(recs, "low-stock-INV001")
	if !ok {
		t.Fatal("no recommendation for the low-stock brake pads")
	}
	if low.Priority != PriorityMedium {
		t.Errorf("low-stock item priority = %q, want Medium", low.Priority)
	}
}

func TestRecommendationsGrowingCategoryRule(t *testing.T) {
	recs := Recommendations(seed.Inventory(), domain.DefaultCategoryTrends(), domain.DefaultForecast())

	rec, ok := findRec(recs, "growing-category")
	if !ok {
		t.Fatal("no growing-category recommendation")
	}
	// Suspension leads the default trends at +22%.
	if !strings.Contains(rec.Title, "Suspension") {
		t.Errorf("Title = %q, want the fastest grower named", rec.Title)
	}
	// 285000 x 0.15 = 42750
	if !strings.Contains(rec.Impact, "$42,750") {
		t.Errorf("Impact = %q", rec.Impact)
	}
}

func TestRecommendationsDecliningCategoryRule(t *testing.T) {
	recs := Recommendations(seed.Inventory(), domain.DefaultCategoryTrends(), domain.DefaultForecast())

	rec, ok := findRec(recs, "declining-Lighting")
	if !ok {
		t.Fatal("no declining-category recommendation for Lighting")
	}
	if !strings.Contains(rec.Description, "21% decline") {
		t.Errorf("Description = %q, want the decline magnitude spelled out", rec.Description)
	}
}

func TestRecommendationsOverstockRule(t *testing.T) {
	// INV003: 150 > 120 x 1.5 is false; push one item clearly over.
	inv := seed.Inventory()
	inv[2].CurrentStock = 200

	recs := Recommendations(inv, domain.DefaultCategoryTrends(), domain.DefaultForecast())
	if _, ok := findRec(recs, "pricing-overstocked"); !ok {
		t.Error("no overstock recommendation despite an overstocked item")
	}

	recs = Recommendations(seed.Inventory(), domain.DefaultCategoryTrends(), domain.DefaultForecast())
	if _, ok := findRec(recs, "pricing-overstocked"); ok {
		t.Error("overstock recommendation fired with nothing overstocked")
	}
}

func TestRecommendationsSupplierDiversificationRule(t *testing.T) {
	// The seed has 5 suppliers across 4 categories: 5 < 4 x 1.5 fires.
	recs := Recommendations(seed.Inventory(), domain.DefaultCategoryTrends(), domain.DefaultForecast())

	rec, ok := findRec(recs, "supplier-diversification")
	if !ok {
		t.Fatal("no diversification recommendation")
	}
	if rec.Priority != PriorityLow {
		t.Errorf("priority = %q, want Low", rec.Priority)
	}
}

func TestRecommendationsForecastRule(t *testing.T) {
	recs := Recommendations(seed.Inventory(), domain.DefaultCategoryTrends(), domain.DefaultForecast())
	rec, ok := findRec(recs, "forecast-inventory")
	if !ok {
		t.Fatal("no forecast recommendation at 92% confidence")
	}
	// 285000 x 0.18 = 51300
	if !strings.Contains(rec.Impact, "$51,300") {
		t.Errorf("Impact = %q", rec.Impact)
	}

	lowConfidence := domain.DefaultForecast()
	lowConfidence.Confidence = 80
	recs = Recommendations(seed.Inventory(), domain.DefaultCategoryTrends(), lowConfidence)
	if _, ok := findRec(recs, "forecast-inventory"); ok {
		t.Error("forecast recommendation fired below the confidence bar")
	}
}

func TestRecommendationsEmptyInputs(t *testing.T) {
	recs := Recommendations(nil, nil, domain.Forecast{})

	// Only the static bundle and (vacuously satisfied) diversification
	// rules can fire with nothing to analyze.
	if _, ok := findRec(recs, "bundle-opportunity"); !ok {
		t.Error("bundle recommendation missing")
	}
	for _, r := range recs {
		if strings.HasPrefix(r.ID, "low-stock-") || r.ID == "growing-category" || r.ID == "forecast-inventory" {
			t.Errorf("data-driven rule %q fired on empty inputs", r.ID)
		}
	}
}

func TestQuickWins(t *testing.T) {
	wins := QuickWins(seed.Inventory())

	if len(wins) != 3 {
		t.Fatalf("got %d quick wins, want 3", len(wins))
	}
	if wins[0].Title != "Reorder Oil Filter Premium" {
		t.Errorf("first win = %q, want the critical item's reorder", wins[0].Title)
	}
	if wins[1].Title != "Cross-sell Air Filters" {
		t.Errorf("second win = %q", wins[1].Title)
	}
	if wins[2].Title != "Update Product Photos" {
		t.Errorf("third win = %q", wins[2].Title)
	}
}

func TestQuickWinsEmptyInventory(t *testing.T) {
	if wins := QuickWins(nil); len(wins) != 0 {
		t.Errorf("got %d quick wins for empty inventory", len(wins))
	}
}
