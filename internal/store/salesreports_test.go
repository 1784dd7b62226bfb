package store

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/partsmetrics/dashboard/internal/codec"
	"github.com/partsmetrics/dashboard/internal/domain"
	"github.com/partsmetrics/dashboard/internal/seed"
)

func fixedClock(s *SalesReportStore, at time.Time) {
	s.now = func() time.Time { return at }
}

func TestSalesReportAddPrepends(t *testing.T) {
	s := NewSalesReportStore()
	s.Load(seed.SalesReports())
	at := time.Date(2025, 10, 21, 9, 0, 0, 0, time.UTC)
	fixedClock(s, at)

	id := s.Add(NewSalesReport{
		ReportDate:    time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC),
		ProductName:   "Coolant Concentrate",
		Category:      "Engine Parts",
		Quantity:      3,
		UnitPrice:     decimal.RequireFromString("22.00"),
		TotalAmount:   decimal.RequireFromString("66.00"),
		CustomerName:  "ABC Motors",
		PaymentMethod: "Cash",
		Status:        domain.ReportCompleted,
		OrderNumber:   "ORD-1848",
	})
	if id != "SR-011" {
		t.Errorf("Add assigned id %q, want SR-011", id)
	}

	reports := s.Reports()
	if len(reports) != 11 {
		t.Fatalf("len = %d after add, want 11", len(reports))
	}
	if reports[0].ID != id {
		t.Errorf("new report at index %q, want it first", reports[0].ID)
	}
	if !reports[0].CreatedAt.Equal(at) || !reports[0].UpdatedAt.Equal(at) {
		t.Errorf("timestamps = %v/%v, want both %v", reports[0].CreatedAt, reports[0].UpdatedAt, at)
	}
}

func TestSalesReportUpdateRefreshesUpdatedAtOnly(t *testing.T) {
	s := NewSalesReportStore()
	s.Load(seed.SalesReports())
	at := time.Date(2025, 10, 22, 12, 0, 0, 0, time.UTC)
	fixedClock(s, at)

	status := domain.ReportCancelled
	s.Update("SR-002", SalesReportUpdate{Status: &status})

	got, ok := s.Get("SR-002")
	if !ok {
		t.Fatal("SR-002 missing after update")
	}
	if got.Status != domain.ReportCancelled {
		t.Errorf("Status = %q, want %q", got.Status, domain.ReportCancelled)
	}
	if !got.UpdatedAt.Equal(at) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, at)
	}
	if got.UpdatedAt.Equal(got.CreatedAt) {
		t.Error("CreatedAt was also rewritten")
	}
	// The stored total is independent of quantity x unitPrice and must
	// survive a partial update untouched.
	if !got.TotalAmount.Equal(decimal.RequireFromString("250")) {
		t.Errorf("TotalAmount = %s, want 250", got.TotalAmount)
	}
}

func TestSalesReportImportCSV(t *testing.T) {
	s := NewSalesReportStore()
	s.Load(seed.SalesReports())
	fixedClock(s, time.Date(2025, 10, 23, 8, 0, 0, 0, time.UTC))

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	csv := strings.Join([]string{
		"date,product,category,quantity,price,total,customer,payment,status,order",
		"2025-10-22,Ball Joints,Suspension,4,60,240,Elite Motors,Credit Card,Completed,ORD-1900",
		"2025-10-23,Tie Rod Ends,Suspension,2,45,90,Pro Auto Parts,Cash,Pending,ORD-1901",
	}, "\n")

	count, err := s.ImportCSV(csv)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if count != 2 {
		t.Fatalf("imported %d rows, want 2", count)
	}

	reports := s.Reports()
	if len(reports) != 12 {
		t.Fatalf("len = %d after import, want 12", len(reports))
	}
	// Batch is prepended in file order with sequential ids.
	if reports[0].ID != "SR-011" || reports[0].ProductName != "Ball Joints" {
		t.Errorf("first = %s/%s, want SR-011/Ball Joints", reports[0].ID, reports[0].ProductName)
	}
	if reports[1].ID != "SR-012" || reports[1].ProductName != "Tie Rod Ends" {
		t.Errorf("second = %s/%s, want SR-012/Tie Rod Ends", reports[1].ID, reports[1].ProductName)
	}

	if len(changes) != 1 || changes[0].Op != OpImport {
		t.Errorf("notifications = %+v, want a single import change", changes)
	}
}

func TestSalesReportImportCSVEmptyInput(t *testing.T) {
	s := NewSalesReportStore()
	s.Load(seed.SalesReports())

	if _, err := s.ImportCSV("date,product\n"); err == nil {
		t.Error("ImportCSV accepted a header-only file")
	}
	if len(s.Reports()) != 10 {
		t.Error("failed import mutated the collection")
	}
}

func TestSalesReportExportCSV(t *testing.T) {
	s := NewSalesReportStore()
	s.Load(seed.SalesReports())

	out := s.ExportCSV()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 11 {
		t.Fatalf("export has %d lines, want header + 10 rows", len(lines))
	}
	if lines[0] != "ID,Date,Product,Category,Quantity,Unit Price,Total,Customer,Payment,Status,Order #" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "SR-001,2025-10-20,Ceramic Brake Pads,") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestExportFilename(t *testing.T) {
	at := time.Date(2025, 10, 20, 15, 4, 5, 0, time.UTC)
	if got := codec.ExportFilename(at); got != "sales-reports-2025-10-20.csv" {
		t.Errorf("ExportFilename = %q", got)
	}
}
