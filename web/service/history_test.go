package service

import (
	"testing"
	"time"

	"heart-haven/database/model"
)

func TestHistoryOrdering(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(db)

	base := time.Now().Add(time.Hour)
	// Insert out of chronological order.
	for _, offset := range []time.Duration{2 * time.Minute, 0, time.Minute} {
		err := appendEntry(db, &model.HistoryEntry{
			Timestamp:  base.Add(offset),
			UserId:     "2",
			ActionType: model.HeartsAdded,
			Details:    offset.String(),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := history.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Fatalf("entries out of order at %d: %v after %v", i, entries[i].Timestamp, entries[i-1].Timestamp)
		}
	}
	if entries[0].Details != (2 * time.Minute).String() {
		t.Errorf("newest entry = %q, want the 2m one", entries[0].Details)
	}
}

func TestHistoryTieBreak(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(db)

	ts := time.Now().Add(time.Hour)
	for _, details := range []string{"first", "second"} {
		err := appendEntry(db, &model.HistoryEntry{
			Timestamp:  ts,
			UserId:     "2",
			ActionType: model.HeartsAdded,
			Details:    details,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := history.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	// Entries sharing a timestamp come back latest-inserted first.
	if entries[0].Details != "second" || entries[1].Details != "first" {
		t.Errorf("tie order = %q, %q; want second, first", entries[0].Details, entries[1].Details)
	}
}

func TestHistoryForUser(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(db)

	entries, err := history.ForUser("3")
	if err != nil {
		t.Fatalf("for user: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	for _, e := range entries {
		if e.UserId != "3" {
			t.Errorf("foreign entry for user %s leaked in", e.UserId)
		}
	}
}

func TestHistoryRecent(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(db)

	entries, err := history.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// The seed's newest entry is the 24h-old assignment credit.
	if entries[0].Details != "Completed class assignment" {
		t.Errorf("newest = %q", entries[0].Details)
	}
}

func TestHistoryAppend(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(db)

	amount := 5
	id, err := history.Append("2", model.HeartsAdded, "Helped tidy up", &amount, "")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if id == 0 {
		t.Error("append returned zero id")
	}

	entries, err := history.ForUser("2")
	if err != nil {
		t.Fatalf("for user: %v", err)
	}
	if entries[0].Id != id {
		t.Errorf("newest id = %d, want %d", entries[0].Id, id)
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("timestamp was not stamped")
	}
}
