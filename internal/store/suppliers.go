package store

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/partsmetrics/dashboard/internal/domain"
	"github.com/partsmetrics/dashboard/pkg/logger"
)

// defaultReliability is assigned to every newly added supplier regardless of
// caller input; the figure is earned through order history, not declared.
const defaultReliability = 95

// NewSupplier is the caller-supplied portion of a supplier record. Order
// totals, reliability and status are store-assigned.
type NewSupplier struct {
	Name         string `validate:"required"`
	Category     string `validate:"required"`
	Contact      string `validate:"required,email"`
	Location     string
	Rating       float64
	DeliveryTime string
	Phone        string
}

// SupplierUpdate is a partial update; nil fields are left untouched.
type SupplierUpdate struct {
	Name         *string
	Category     *string
	Location     *string
	Rating       *float64
	DeliveryTime *string
	Reliability  *int
	TotalOrders  *int
	TotalSpent   *decimal.Decimal
	Contact      *string
	Phone        *string
}

func (u SupplierUpdate) touchesHealth() bool {
	return u.Rating != nil || u.Reliability != nil
}

// SupplierStore owns the supplier collection.
type SupplierStore struct {
	mu        sync.Mutex
	suppliers []domain.Supplier
	validate  *validator.Validate
	obs       observers
	log       zerolog.Logger
}

func NewSupplierStore() *SupplierStore {
	return &SupplierStore{
		validate: validator.New(),
		log:      logger.With("store").With().Str("entity", "supplier").Logger(),
	}
}

// Load seeds the store, re-deriving each supplier's status.
func (s *SupplierStore) Load(suppliers []domain.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suppliers = make([]domain.Supplier, len(suppliers))
	copy(s.suppliers, suppliers)
	for i := range s.suppliers {
		sup := &s.suppliers[i]
		sup.Status = domain.SupplierStatusFor(sup.Rating, sup.Reliability)
	}
}

// Subscribe registers an observer notified after every successful mutation.
func (s *SupplierStore) Subscribe(fn func(Change)) {
	s.obs.subscribe(fn)
}

// Add validates the supplier and appends it with zeroed order totals and the
// default reliability. Returns the new id (SUP###, from collection length).
func (s *SupplierStore) Add(n NewSupplier) (string, error) {
	if err := s.validate.Struct(n); err != nil {
		return "", fmt.Errorf("invalid supplier: %w", err)
	}

	s.mu.Lock()
	id := fmt.Sprintf("SUP%03d", len(s.suppliers)+1)
	sup := domain.Supplier{
		ID:           id,
		Name:         n.Name,
		Category:     n.Category,
		Location:     n.Location,
		Rating:       n.Rating,
		DeliveryTime: n.DeliveryTime,
		Reliability:  defaultReliability,
		TotalOrders:  0,
		TotalSpent:   decimal.Zero,
		Status:       domain.SupplierStatusFor(n.Rating, defaultReliability),
		Contact:      n.Contact,
		Phone:        n.Phone,
	}
	s.suppliers = append(s.suppliers, sup)
	s.mu.Unlock()

	s.log.Debug().Str("id", id).Str("name", n.Name).Msg("supplier added")
	s.obs.notify(Change{Op: OpAdd, ID: id})

	return id, nil
}

// Update merges the partial fields into the matching supplier. An unknown id
// is a silent no-op. Status is re-derived only when rating or reliability
// changed.
func (s *SupplierStore) Update(id string, upd SupplierUpdate) {
	s.mu.Lock()
	found := false
	for i := range s.suppliers {
		if s.suppliers[i].ID != id {
			continue
		}
		sup := &s.suppliers[i]
		if upd.Name != nil {
			sup.Name = *upd.Name
		}
		if upd.Category != nil {
			sup.Category = *upd.Category
		}
		if upd.Location != nil {
			sup.Location = *upd.Location
		}
		if upd.Rating != nil {
			sup.Rating = *upd.Rating
		}
		if upd.DeliveryTime != nil {
			sup.DeliveryTime = *upd.DeliveryTime
		}
		if upd.Reliability != nil {
			sup.Reliability = *upd.Reliability
		}
		if upd.TotalOrders != nil {
			sup.TotalOrders = *upd.TotalOrders
		}
		if upd.TotalSpent != nil {
			sup.TotalSpent = *upd.TotalSpent
		}
		if upd.Contact != nil {
			sup.Contact = *upd.Contact
		}
		if upd.Phone != nil {
			sup.Phone = *upd.Phone
		}
		if upd.touchesHealth() {
			sup.Status = domain.SupplierStatusFor(sup.Rating, sup.Reliability)
		}
		found = true
		break
	}
	s.mu.Unlock()

	if found {
		s.obs.notify(Change{Op: OpUpdate, ID: id})
	}
}

// Remove deletes the supplier with the given id; no-op if absent.
func (s *SupplierStore) Remove(id string) {
	s.mu.Lock()
	found := false
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.obs.notify(Change{Op: OpRemove, ID: id})
	}
}

// Suppliers returns a snapshot copy of the collection in insertion order.
func (s *SupplierStore) Suppliers() []domain.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}
