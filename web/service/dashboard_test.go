package service

import "testing"

func TestGetStats(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(db)
	dashboard := NewDashboardService(db, history)

	stats, err := dashboard.GetStats()
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.TotalStudents != 2 {
		t.Errorf("total students = %d, want 2", stats.TotalStudents)
	}
	if stats.TotalHearts != 80 {
		t.Errorf("total hearts = %d, want 80", stats.TotalHearts)
	}
	if stats.AverageHearts != 40 {
		t.Errorf("average hearts = %d, want 40", stats.AverageHearts)
	}
	if stats.TotalItems != 3 {
		t.Errorf("total items = %d, want 3", stats.TotalItems)
	}
	if len(stats.RecentActivity) != 3 {
		t.Errorf("recent activity = %d, want 3", len(stats.RecentActivity))
	}
}

func TestGetStatsTracksMutations(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(db)
	dashboard := NewDashboardService(db, history)
	hearts := NewHeartsService(db)
	purchase := NewPurchaseService(db)

	if _, err := hearts.Adjust("2", 10, "bonus"); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if _, err := purchase.Purchase("3", "2"); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	stats, err := dashboard.GetStats()
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	// 80 + 10 - 10 = 80 hearts in circulation.
	if stats.TotalHearts != 80 {
		t.Errorf("total hearts = %d, want 80", stats.TotalHearts)
	}
	if len(stats.RecentActivity) != 5 {
		t.Errorf("recent activity = %d, want 5", len(stats.RecentActivity))
	}
}
