package service

import (
	"errors"
	"testing"

	"heart-haven/database/model"
)

func TestPurchase(t *testing.T) {
	db := newTestDB(t)
	purchase := NewPurchaseService(db)
	history := NewHistoryService(db)

	// Student "2" starts with 50 hearts, item "1" costs 20.
	student, err := purchase.Purchase("2", "1")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if student.Hearts != 30 {
		t.Errorf("hearts = %d, want 30", student.Hearts)
	}

	entries, err := history.ForUser("2")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	got := entries[0]
	if got.ActionType != model.ItemPurchased {
		t.Errorf("action = %s, want %s", got.ActionType, model.ItemPurchased)
	}
	if got.Details != `Purchased "Homework Pass"` {
		t.Errorf("details = %q", got.Details)
	}
	if got.Amount == nil || *got.Amount != 20 {
		t.Errorf("amount = %v, want 20", got.Amount)
	}
	if got.ItemId != "1" {
		t.Errorf("itemId = %q, want 1", got.ItemId)
	}
}

func TestPurchaseInsufficientHearts(t *testing.T) {
	db := newTestDB(t)
	purchase := NewPurchaseService(db)
	users := NewUserService(db)
	history := NewHistoryService(db)

	// Drain student "2" down to 10 hearts with two purchases of item "1".
	for i := 0; i < 2; i++ {
		if _, err := purchase.Purchase("2", "1"); err != nil {
			t.Fatalf("purchase %d: %v", i, err)
		}
	}

	before, _ := history.ForUser("2")
	if _, err := purchase.Purchase("2", "1"); !errors.Is(err, ErrInsufficientHearts) {
		t.Fatalf("err = %v, want ErrInsufficientHearts", err)
	}

	// Rejected purchase must leave balance and history untouched.
	student, err := users.GetStudent("2")
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if student.Hearts != 10 {
		t.Errorf("hearts = %d, want 10", student.Hearts)
	}
	after, _ := history.ForUser("2")
	if len(after) != len(before) {
		t.Errorf("history grew on rejected purchase: %d -> %d", len(before), len(after))
	}
}

func TestPurchaseUnavailableItem(t *testing.T) {
	db := newTestDB(t)
	purchase := NewPurchaseService(db)
	store := NewStoreService(db)

	unavailable := false
	if err := store.UpdateItem("1", "2", ItemUpdate{Available: &unavailable}); err != nil {
		t.Fatalf("update item: %v", err)
	}
	if _, err := purchase.Purchase("2", "2"); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("err = %v, want ErrItemUnavailable", err)
	}
}

func TestPurchaseMissingItem(t *testing.T) {
	db := newTestDB(t)
	purchase := NewPurchaseService(db)

	if _, err := purchase.Purchase("2", "missing"); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("err = %v, want ErrItemUnavailable", err)
	}
}

func TestPurchaseUnknownStudent(t *testing.T) {
	db := newTestDB(t)
	purchase := NewPurchaseService(db)

	if _, err := purchase.Purchase("missing", "1"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
}
