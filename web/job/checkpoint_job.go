package job

import (
	"heart-haven/database"
	"heart-haven/logger"

	"go.uber.org/atomic"
	"gorm.io/gorm"
)

// CheckpointJob periodically flushes the sqlite write-ahead log so the main
// database file stays current between shutdowns.
type CheckpointJob struct {
	db      *gorm.DB
	running atomic.Bool
}

func NewCheckpointJob(db *gorm.DB) *CheckpointJob {
	return &CheckpointJob{db: db}
}

// Run executes one checkpoint. Overlapping runs are skipped.
func (j *CheckpointJob) Run() {
	if !j.running.CompareAndSwap(false, true) {
		return
	}
	defer j.running.Store(false)

	if err := database.Checkpoint(j.db); err != nil {
		logger.Warning("wal checkpoint failed:", err)
		return
	}
	logger.Debug("wal checkpoint completed")
}
