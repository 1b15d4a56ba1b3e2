package service

import (
	"math"

	"heart-haven/database/model"

	"gorm.io/gorm"
)

const recentActivityCount = 5

// DashboardStats are the admin dashboard aggregates. They are derived on
// every call; nothing here is cached.
type DashboardStats struct {
	TotalStudents  int64                `json:"totalStudents"`
	TotalHearts    int64                `json:"totalHearts"`
	AverageHearts  int                  `json:"averageHearts"`
	TotalItems     int64                `json:"totalItems"`
	RecentActivity []model.HistoryEntry `json:"recentActivity"`
}

// DashboardService composes read-only aggregates across the identity
// store, the catalog and the history trail.
type DashboardService struct {
	db      *gorm.DB
	history *HistoryService
}

func NewDashboardService(db *gorm.DB, history *HistoryService) *DashboardService {
	return &DashboardService{db: db, history: history}
}

// GetStats recomputes all dashboard aggregates. The average is rounded to
// the nearest integer and is zero when there are no students.
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(model.Student{}).Count(&stats.TotalStudents).Error; err != nil {
		return nil, err
	}

	var totalHearts *int64
	err := s.db.Model(model.Student{}).
		Select("SUM(hearts)").
		Scan(&totalHearts).
		Error
	if err != nil {
		return nil, err
	}
	if totalHearts != nil {
		stats.TotalHearts = *totalHearts
	}

	if stats.TotalStudents > 0 {
		stats.AverageHearts = int(math.Round(float64(stats.TotalHearts) / float64(stats.TotalStudents)))
	}

	if err := s.db.Model(model.StoreItem{}).Count(&stats.TotalItems).Error; err != nil {
		return nil, err
	}

	recent, err := s.history.Recent(recentActivityCount)
	if err != nil {
		return nil, err
	}
	stats.RecentActivity = recent

	return stats, nil
}
