package store

import (
	"testing"

	"github.com/partsmetrics/dashboard/internal/domain"
	"github.com/partsmetrics/dashboard/internal/seed"
)

func TestSupplierAddAppliesDefaults(t *testing.T) {
	s := NewSupplierStore()
	s.Load(seed.Suppliers())

	id, err := s.Add(NewSupplier{
		Name:         "GasketWorks",
		Category:     "Engine Parts",
		Contact:      "sales@gasketworks.com",
		Location:     "Toledo, OH",
		Rating:       4.4,
		DeliveryTime: "3-4 days",
		Phone:        "(555) 678-9012",
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if id != "SUP006" {
		t.Errorf("Add assigned id %q, want SUP006", id)
	}

	suppliers := s.Suppliers()
	got := suppliers[len(suppliers)-1]
	if got.Reliability != 95 {
		t.Errorf("Reliability = %d, want the default 95", got.Reliability)
	}
	if got.TotalOrders != 0 {
		t.Errorf("TotalOrders = %d, want 0", got.TotalOrders)
	}
	if !got.TotalSpent.IsZero() {
		t.Errorf("TotalSpent = %s, want 0", got.TotalSpent)
	}
	// 4.4 rating with the default 95 reliability lands in the second
	// active band.
	if got.Status != domain.SupplierActive {
		t.Errorf("Status = %q, want %q", got.Status, domain.SupplierActive)
	}
}

func TestSupplierAddRequiresValidContact(t *testing.T) {
	s := NewSupplierStore()

	if _, err := s.Add(NewSupplier{Name: "NoMail", Category: "Filters", Contact: "not-an-email"}); err == nil {
		t.Error("Add accepted a malformed contact address")
	}
	if len(s.Suppliers()) != 0 {
		t.Error("rejected supplier was stored anyway")
	}
}

func TestSupplierUpdateReclassifiesOnHealthChange(t *testing.T) {
	s := NewSupplierStore()
	s.Load(seed.Suppliers())

	rating := 3.0
	reliability := 70
	s.Update("SUP001", SupplierUpdate{Rating: &rating, Reliability: &reliability})

	got := s.Suppliers()[0]
	if got.Status != domain.SupplierInactive {
		t.Errorf("status after downgrade = %q, want %q", got.Status, domain.SupplierInactive)
	}
}

func TestSupplierUpdateKeepsStatusOnContactChange(t *testing.T) {
	s := NewSupplierStore()
	s.Load(seed.Suppliers())

	phone := "(555) 000-0000"
	s.Update("SUP004", SupplierUpdate{Phone: &phone})

	got := s.Suppliers()[3]
	if got.Phone != phone {
		t.Fatalf("Phone = %q, want %q", got.Phone, phone)
	}
	if got.Status != domain.SupplierWarning {
		t.Errorf("status changed to %q on a phone-only update", got.Status)
	}
}

func TestSupplierRemoveUnknownIDIsNoOp(t *testing.T) {
	s := NewSupplierStore()
	s.Load(seed.Suppliers())

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.Remove("SUP999")

	if len(changes) != 0 {
		t.Errorf("observer notified %d times for an unknown id", len(changes))
	}
	if len(s.Suppliers()) != 5 {
		t.Errorf("collection length changed to %d", len(s.Suppliers()))
	}
}
