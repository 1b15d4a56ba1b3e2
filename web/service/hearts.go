package service

import (
	"heart-haven/database"
	"heart-haven/database/model"
	"heart-haven/logger"

	"gorm.io/gorm"
)

// HeartsService applies admin-initiated balance adjustments. Deductions
// that exceed the balance clamp at zero rather than failing; contrast with
// PurchaseService, which rejects underfunded purchases outright.
type HeartsService struct {
	db *gorm.DB
}

func NewHeartsService(db *gorm.DB) *HeartsService {
	return &HeartsService{db: db}
}

// Adjust adds delta hearts to the student's balance, flooring at zero, and
// records the matching history entry in the same transaction. The recorded
// amount is the requested magnitude even when the write was clamped. The
// reason becomes the entry's details.
func (s *HeartsService) Adjust(studentId string, delta int, reason string) (*model.Student, error) {
	if delta == 0 {
		return nil, ErrInvalidAmount
	}

	student := &model.Student{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(model.Student{}).
			Where("id = ?", studentId).
			First(student).
			Error
		if database.IsNotFound(err) {
			return ErrStudentNotFound
		} else if err != nil {
			return err
		}

		newHearts := student.Hearts + delta
		if newHearts < 0 {
			newHearts = 0
		}
		student.Hearts = newHearts
		if err := tx.Save(student).Error; err != nil {
			return err
		}

		action := model.HeartsAdded
		if delta < 0 {
			action = model.HeartsRemoved
		}
		amount := delta
		if amount < 0 {
			amount = -amount
		}
		return appendEntry(tx, &model.HistoryEntry{
			UserId:     student.Id,
			ActionType: action,
			Details:    reason,
			Amount:     &amount,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Debugf("adjusted hearts for student %s by %d, balance now %d", student.Id, delta, student.Hearts)
	return student, nil
}
