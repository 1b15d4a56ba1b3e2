package service

import (
	"fmt"

	"heart-haven/database"
	"heart-haven/database/model"
	"heart-haven/logger"

	"gorm.io/gorm"
)

// PurchaseService runs the purchase protocol: resolve the item, check
// availability, check funds, debit and record — all in one transaction.
// An underfunded purchase is rejected with no state change; there is no
// clamping on this path.
type PurchaseService struct {
	db *gorm.DB
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

// Purchase debits the item's price from the student's balance and appends
// the ITEM_PURCHASED entry. Returns the updated student on success.
func (s *PurchaseService) Purchase(studentId string, itemId string) (*model.Student, error) {
	student := &model.Student{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		item := &model.StoreItem{}
		err := tx.Model(model.StoreItem{}).
			Where("id = ?", itemId).
			First(item).
			Error
		if database.IsNotFound(err) {
			return ErrItemUnavailable
		} else if err != nil {
			return err
		}
		if !item.Available {
			return ErrItemUnavailable
		}

		err = tx.Model(model.Student{}).
			Where("id = ?", studentId).
			First(student).
			Error
		if database.IsNotFound(err) {
			return ErrStudentNotFound
		} else if err != nil {
			return err
		}

		if student.Hearts < item.Price {
			return ErrInsufficientHearts
		}

		student.Hearts -= item.Price
		if err := tx.Save(student).Error; err != nil {
			return err
		}

		amount := item.Price
		return appendEntry(tx, &model.HistoryEntry{
			UserId:     student.Id,
			ActionType: model.ItemPurchased,
			Details:    fmt.Sprintf("Purchased %q", item.Name),
			Amount:     &amount,
			ItemId:     item.Id,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("student %s purchased item %s, balance now %d", student.Id, itemId, student.Hearts)
	return student, nil
}
