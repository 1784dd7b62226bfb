package store

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/partsmetrics/dashboard/internal/codec"
	"github.com/partsmetrics/dashboard/internal/domain"
	"github.com/partsmetrics/dashboard/pkg/logger"
)

// NewSalesReport is the caller-supplied portion of a report. The id and the
// created/updated timestamps are store-assigned. TotalAmount is taken as
// given; the store does not check it against quantity x unitPrice.
type NewSalesReport struct {
	ReportDate    time.Time
	ProductName   string
	Category      string
	Quantity      int
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
	CustomerName  string
	PaymentMethod string
	Status        domain.ReportStatus
	OrderNumber   string
	Notes         string
}

// SalesReportUpdate is a partial update; nil fields are left untouched.
// TotalAmount is only changed when the caller supplies it.
type SalesReportUpdate struct {
	ReportDate    *time.Time
	ProductName   *string
	Category      *string
	Quantity      *int
	UnitPrice     *decimal.Decimal
	TotalAmount   *decimal.Decimal
	CustomerName  *string
	PaymentMethod *string
	Status        *domain.ReportStatus
	OrderNumber   *string
	Notes         *string
}

// SalesReportStore owns the sales report collection, newest first.
type SalesReportStore struct {
	mu      sync.Mutex
	reports []domain.SalesReport
	obs     observers
	log     zerolog.Logger
	now     func() time.Time
}

func NewSalesReportStore() *SalesReportStore {
	return &SalesReportStore{
		log: logger.With("store").With().Str("entity", "sales_report").Logger(),
		now: time.Now,
	}
}

// Load seeds the store with reports in the given order (expected newest
// first, matching the demo fixture layout).
func (s *SalesReportStore) Load(reports []domain.SalesReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = make([]domain.SalesReport, len(reports))
	copy(s.reports, reports)
}

// Subscribe registers an observer notified after every successful mutation.
func (s *SalesReportStore) Subscribe(fn func(Change)) {
	s.obs.subscribe(fn)
}

// Add assigns the next sequential id (SR-###, from collection length), sets
// both timestamps and prepends the report so the collection stays newest
// first. Returns the new id.
func (s *SalesReportStore) Add(n NewSalesReport) string {
	s.mu.Lock()
	now := s.now()
	report := domain.SalesReport{
		ID:            fmt.Sprintf("SR-%03d", len(s.reports)+1),
		ReportDate:    n.ReportDate,
		ProductName:   n.ProductName,
		Category:      n.Category,
		Quantity:      n.Quantity,
		UnitPrice:     n.UnitPrice,
		TotalAmount:   n.TotalAmount,
		CustomerName:  n.CustomerName,
		PaymentMethod: n.PaymentMethod,
		Status:        n.Status,
		OrderNumber:   n.OrderNumber,
		Notes:         n.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.reports = append([]domain.SalesReport{report}, s.reports...)
	id := report.ID
	s.mu.Unlock()

	s.log.Debug().Str("id", id).Str("order", n.OrderNumber).Msg("sales report added")
	s.obs.notify(Change{Op: OpAdd, ID: id})

	return id
}

// Update merges the partial fields into the matching report and refreshes
// its updatedAt timestamp. An unknown id is a silent no-op.
func (s *SalesReportStore) Update(id string, upd SalesReportUpdate) {
	s.mu.Lock()
	found := false
	for i := range s.reports {
		if s.reports[i].ID != id {
			continue
		}
		r := &s.reports[i]
		if upd.ReportDate != nil {
			r.ReportDate = *upd.ReportDate
		}
		if upd.ProductName != nil {
			r.ProductName = *upd.ProductName
		}
		if upd.Category != nil {
			r.Category = *upd.Category
		}
		if upd.Quantity != nil {
			r.Quantity = *upd.Quantity
		}
		if upd.UnitPrice != nil {
			r.UnitPrice = *upd.UnitPrice
		}
		if upd.TotalAmount != nil {
			r.TotalAmount = *upd.TotalAmount
		}
		if upd.CustomerName != nil {
			r.CustomerName = *upd.CustomerName
		}
		if upd.PaymentMethod != nil {
			r.PaymentMethod = *upd.PaymentMethod
		}
		if upd.Status != nil {
			r.Status = *upd.Status
		}
		if upd.OrderNumber != nil {
			r.OrderNumber = *upd.OrderNumber
		}
		if upd.Notes != nil {
			r.Notes = *upd.Notes
		}
		r.UpdatedAt = s.now()
		found = true
		break
	}
	s.mu.Unlock()

	if found {
		s.obs.notify(Change{Op: OpUpdate, ID: id})
	}
}

// Remove deletes the report with the given id; no-op if absent.
func (s *SalesReportStore) Remove(id string) {
	s.mu.Lock()
	found := false
	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.obs.notify(Change{Op: OpRemove, ID: id})
	}
}

// Get returns the report with the given id.
func (s *SalesReportStore) Get(id string) (domain.SalesReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reports {
		if r.ID == id {
			return r, true
		}
	}
	return domain.SalesReport{}, false
}

// Reports returns a snapshot copy of the collection, newest first.
func (s *SalesReportStore) Reports() []domain.SalesReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.SalesReport, len(s.reports))
	copy(out, s.reports)
	return out
}

// ImportCSV parses delimited text and prepends the batch ahead of existing
// reports, preserving file order within the batch. Existing records are not
// deduplicated against the batch. Returns the number of imported reports.
func (s *SalesReportStore) ImportCSV(text string) (int, error) {
	result, err := codec.ImportSalesReports(text)
	if err != nil {
		s.log.Error().Err(err).Msg("import failed")
		return 0, err
	}

	s.mu.Lock()
	now := s.now()
	batch := make([]domain.SalesReport, len(result.Reports))
	for i, r := range result.Reports {
		r.ID = fmt.Sprintf("SR-%03d", len(s.reports)+i+1)
		r.CreatedAt = now
		r.UpdatedAt = now
		batch[i] = r
	}
	s.reports = append(batch, s.reports...)
	s.mu.Unlock()

	s.log.Info().Int("count", result.Count).Msg("sales reports imported")
	s.obs.notify(Change{Op: OpImport})

	return result.Count, nil
}

// ImportWorkbook renders the first sheet of an Excel workbook to delimited
// text and imports it like ImportCSV.
func (s *SalesReportStore) ImportWorkbook(r io.Reader) (int, error) {
	text, err := codec.DecodeWorkbook(r)
	if err != nil {
		s.log.Error().Err(err).Msg("workbook decode failed")
		return 0, err
	}
	return s.ImportCSV(text)
}

// ExportCSV serializes the full current collection (not a filtered view).
func (s *SalesReportStore) ExportCSV() string {
	return codec.ExportSalesReports(s.Reports())
}
