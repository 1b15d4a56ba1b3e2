package job

import (
	"heart-haven/logger"
	"heart-haven/web/service"

	"go.uber.org/atomic"
)

// ActivitySummaryJob logs a daily snapshot of the reward system: student
// count, hearts in circulation and catalog size.
type ActivitySummaryJob struct {
	dashboardService *service.DashboardService
	running          atomic.Bool
}

func NewActivitySummaryJob(dashboardService *service.DashboardService) *ActivitySummaryJob {
	return &ActivitySummaryJob{dashboardService: dashboardService}
}

func (j *ActivitySummaryJob) Run() {
	if !j.running.CompareAndSwap(false, true) {
		return
	}
	defer j.running.Store(false)

	stats, err := j.dashboardService.GetStats()
	if err != nil {
		logger.Warning("activity summary failed:", err)
		return
	}
	logger.Infof("daily summary: %d students, %d hearts in circulation (avg %d), %d store items",
		stats.TotalStudents, stats.TotalHearts, stats.AverageHearts, stats.TotalItems)
}
