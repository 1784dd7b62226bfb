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

// NewInventoryItem is the caller-supplied portion of an inventory item.
// ID and status are assigned by the store.
type NewInventoryItem struct {
	Name         string `validate:"required"`
	Category     string `validate:"required"`
	SKU          string `validate:"required"`
	CurrentStock int
	MinimumStock int
	ReorderPoint int
	UnitCost     decimal.Decimal
	Supplier     string
	Location     string
}

// InventoryUpdate is a partial update; nil fields are left untouched.
type InventoryUpdate struct {
	Name         *string
	Category     *string
	SKU          *string
	CurrentStock *int
	MinimumStock *int
	ReorderPoint *int
	UnitCost     *decimal.Decimal
	Supplier     *string
	Location     *string
}

func (u InventoryUpdate) touchesStock() bool {
	return u.CurrentStock != nil || u.MinimumStock != nil || u.ReorderPoint != nil
}

// InventoryStore owns the inventory collection.
type InventoryStore struct {
	mu       sync.Mutex
	items    []domain.InventoryItem
	validate *validator.Validate
	obs      observers
	log      zerolog.Logger
}

func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		validate: validator.New(),
		log:      logger.With("store").With().Str("entity", "inventory").Logger(),
	}
}

// Load seeds the store, re-deriving each item's status from its stock levels.
func (s *InventoryStore) Load(items []domain.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]domain.InventoryItem, len(items))
	copy(s.items, items)
	for i := range s.items {
		it := &s.items[i]
		it.Status = domain.StockStatusFor(it.CurrentStock, it.MinimumStock, it.ReorderPoint)
	}
}

// Subscribe registers an observer notified after every successful mutation.
func (s *InventoryStore) Subscribe(fn func(Change)) {
	s.obs.subscribe(fn)
}

// Add validates the product, assigns the next sequential id (INV###, based
// on current collection length) and derives its status. Returns the new id.
func (s *InventoryStore) Add(p NewInventoryItem) (string, error) {
	if err := s.validate.Struct(p); err != nil {
		return "", fmt.Errorf("invalid product: %w", err)
	}

	s.mu.Lock()
	id := fmt.Sprintf("INV%03d", len(s.items)+1)
	item := domain.InventoryItem{
		ID:           id,
		Name:         p.Name,
		Category:     p.Category,
		SKU:          p.SKU,
		CurrentStock: p.CurrentStock,
		MinimumStock: p.MinimumStock,
		ReorderPoint: p.ReorderPoint,
		UnitCost:     p.UnitCost,
		Supplier:     p.Supplier,
		Location:     p.Location,
		Status:       domain.StockStatusFor(p.CurrentStock, p.MinimumStock, p.ReorderPoint),
	}
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.log.Debug().Str("id", id).Str("name", p.Name).Msg("product added")
	s.obs.notify(Change{Op: OpAdd, ID: id})

	return id, nil
}

// Update merges the partial fields into the matching item. An unknown id is
// a silent no-op. Status is re-derived only when a stock field changed.
func (s *InventoryStore) Update(id string, upd InventoryUpdate) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		it := &s.items[i]
		if upd.Name != nil {
			it.Name = *upd.Name
		}
		if upd.Category != nil {
			it.Category = *upd.Category
		}
		if upd.SKU != nil {
			it.SKU = *upd.SKU
		}
		if upd.CurrentStock != nil {
			it.CurrentStock = *upd.CurrentStock
		}
		if upd.MinimumStock != nil {
			it.MinimumStock = *upd.MinimumStock
		}
		if upd.ReorderPoint != nil {
			it.ReorderPoint = *upd.ReorderPoint
		}
		if upd.UnitCost != nil {
			it.UnitCost = *upd.UnitCost
		}
		if upd.Supplier != nil {
			it.Supplier = *upd.Supplier
		}
		if upd.Location != nil {
			it.Location = *upd.Location
		}
		if upd.touchesStock() {
			it.Status = domain.StockStatusFor(it.CurrentStock, it.MinimumStock, it.ReorderPoint)
		}
		found = true
		break
	}
	s.mu.Unlock()

	if found {
		s.obs.notify(Change{Op: OpUpdate, ID: id})
	}
}

// Remove deletes the item with the given id; no-op if absent.
func (s *InventoryStore) Remove(id string) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.obs.notify(Change{Op: OpRemove, ID: id})
	}
}

// Items returns a snapshot copy of the collection in insertion order.
func (s *InventoryStore) Items() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}
