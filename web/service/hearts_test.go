package service

import (
	"errors"
	"testing"

	"heart-haven/database/model"
)

func TestAdjustAdd(t *testing.T) {
	db := newTestDB(t)
	hearts := NewHeartsService(db)
	history := NewHistoryService(db)

	student, err := hearts.Adjust("2", 10, "Completed class assignment")
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if student.Hearts != 60 {
		t.Errorf("hearts = %d, want 60", student.Hearts)
	}

	entries, err := history.ForUser("2")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no history entries")
	}
	got := entries[0]
	if got.ActionType != model.HeartsAdded {
		t.Errorf("action = %s, want %s", got.ActionType, model.HeartsAdded)
	}
	if got.Amount == nil || *got.Amount != 10 {
		t.Errorf("amount = %v, want 10", got.Amount)
	}
	if got.Details != "Completed class assignment" {
		t.Errorf("details = %q", got.Details)
	}
}

func TestAdjustClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	hearts := NewHeartsService(db)
	history := NewHistoryService(db)

	student, err := hearts.Adjust("3", -1000, "Lost library book")
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if student.Hearts != 0 {
		t.Errorf("hearts = %d, want 0", student.Hearts)
	}

	entries, err := history.ForUser("3")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	got := entries[0]
	if got.ActionType != model.HeartsRemoved {
		t.Errorf("action = %s, want %s", got.ActionType, model.HeartsRemoved)
	}
	// The requested magnitude is recorded even though the write clamped.
	if got.Amount == nil || *got.Amount != 1000 {
		t.Errorf("amount = %v, want 1000", got.Amount)
	}
}

func TestAdjustNeverNegative(t *testing.T) {
	db := newTestDB(t)
	hearts := NewHeartsService(db)

	deltas := []int{-20, 15, -40, -1, 3}
	for _, delta := range deltas {
		student, err := hearts.Adjust("3", delta, "cycle")
		if err != nil {
			t.Fatalf("adjust %d: %v", delta, err)
		}
		if student.Hearts < 0 {
			t.Fatalf("hearts went negative after delta %d: %d", delta, student.Hearts)
		}
	}
}

func TestAdjustZeroDelta(t *testing.T) {
	db := newTestDB(t)
	hearts := NewHeartsService(db)

	if _, err := hearts.Adjust("2", 0, "noop"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestAdjustUnknownStudent(t *testing.T) {
	db := newTestDB(t)
	hearts := NewHeartsService(db)
	history := NewHistoryService(db)

	before, _ := history.All()
	if _, err := hearts.Adjust("missing", 5, "r"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
	after, _ := history.All()
	if len(after) != len(before) {
		t.Errorf("history grew on failed adjust: %d -> %d", len(before), len(after))
	}
}
