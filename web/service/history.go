package service

import (
	"time"

	"heart-haven/database/model"

	"gorm.io/gorm"
)

// HistoryService reads and writes the append-only activity trail. Entries
// are never updated or deleted; mutating services append them inside their
// own transactions through appendEntry so a mutation and its record commit
// together.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// appendEntry writes one history entry on the given transaction handle,
// stamping the timestamp when the caller left it zero.
func appendEntry(tx *gorm.DB, entry *model.HistoryEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	return tx.Create(entry).Error
}

// Append records a standalone entry outside any caller transaction and
// returns its id.
func (s *HistoryService) Append(userId string, action model.ActionType, details string, amount *int, itemId string) (int64, error) {
	entry := &model.HistoryEntry{
		UserId:     userId,
		ActionType: action,
		Details:    details,
		Amount:     amount,
		ItemId:     itemId,
	}
	if err := appendEntry(s.db, entry); err != nil {
		return 0, err
	}
	return entry.Id, nil
}

// ForUser lists one user's entries, newest first. Entries sharing a
// timestamp fall back to insertion order, still newest first.
func (s *HistoryService) ForUser(userId string) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	err := s.db.Model(model.HistoryEntry{}).
		Where("user_id = ?", userId).
		Order("timestamp DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// All lists every entry, newest first.
func (s *HistoryService) All() ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	err := s.db.Model(model.HistoryEntry{}).
		Order("timestamp DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// Recent returns the n newest entries.
func (s *HistoryService) Recent(n int) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	err := s.db.Model(model.HistoryEntry{}).
		Order("timestamp DESC, id DESC").
		Limit(n).
		Find(&entries).Error
	return entries, err
}
