package service

import (
	"fmt"

	"heart-haven/database"
	"heart-haven/database/model"
	"heart-haven/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemSpec describes a new catalog item. Availability defaults to true
// when the caller leaves it unset.
type ItemSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageUrl    string `json:"imageUrl"`
	Available   *bool  `json:"available"`
}

// ItemUpdate carries a partial update; nil fields keep their current value.
type ItemUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	ImageUrl    *string `json:"imageUrl"`
	Available   *bool   `json:"available"`
}

// StoreService manages the redeemable-item catalog. Every successful
// mutation appends its history entry in the same transaction, attributed
// to the acting admin. Field content is trusted from the caller except for
// the price, which is re-checked here.
type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// AddItem stores a new item and returns its assigned id.
func (s *StoreService) AddItem(adminId string, spec ItemSpec) (string, error) {
	if spec.Price <= 0 {
		return "", ErrInvalidPrice
	}

	item := &model.StoreItem{
		Id:          uuid.NewString(),
		Name:        spec.Name,
		Description: spec.Description,
		Price:       spec.Price,
		ImageUrl:    spec.ImageUrl,
		Available:   true,
	}
	if spec.Available != nil {
		item.Available = *spec.Available
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return appendEntry(tx, &model.HistoryEntry{
			UserId:     adminId,
			ActionType: model.ItemAdded,
			Details:    fmt.Sprintf("Added %q to the store", item.Name),
		})
	})
	if err != nil {
		return "", err
	}

	logger.Infof("added store item %s (%s)", item.Id, item.Name)
	return item.Id, nil
}

// UpdateItem merges the provided fields into the existing item.
func (s *StoreService) UpdateItem(adminId string, id string, upd ItemUpdate) error {
	if upd.Price != nil && *upd.Price <= 0 {
		return ErrInvalidPrice
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		item := &model.StoreItem{}
		err := tx.Model(model.StoreItem{}).
			Where("id = ?", id).
			First(item).
			Error
		if database.IsNotFound(err) {
			return ErrItemNotFound
		} else if err != nil {
			return err
		}

		if upd.Name != nil {
			item.Name = *upd.Name
		}
		if upd.Description != nil {
			item.Description = *upd.Description
		}
		if upd.Price != nil {
			item.Price = *upd.Price
		}
		if upd.ImageUrl != nil {
			item.ImageUrl = *upd.ImageUrl
		}
		if upd.Available != nil {
			item.Available = *upd.Available
		}
		if err := tx.Save(item).Error; err != nil {
			return err
		}

		return appendEntry(tx, &model.HistoryEntry{
			UserId:     adminId,
			ActionType: model.ItemEdited,
			Details:    fmt.Sprintf("Updated %q in the store", item.Name),
			ItemId:     item.Id,
		})
	})
}

// DeleteItem removes the item outright. The history entry keeps the name
// captured at deletion time; its itemId is left to dangle.
func (s *StoreService) DeleteItem(adminId string, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		item := &model.StoreItem{}
		err := tx.Model(model.StoreItem{}).
			Where("id = ?", id).
			First(item).
			Error
		if database.IsNotFound(err) {
			return ErrItemNotFound
		} else if err != nil {
			return err
		}

		if err := tx.Delete(&model.StoreItem{}, "id = ?", id).Error; err != nil {
			return err
		}

		return appendEntry(tx, &model.HistoryEntry{
			UserId:     adminId,
			ActionType: model.ItemRemoved,
			Details:    fmt.Sprintf("Removed %q from the store", item.Name),
			ItemId:     item.Id,
		})
	})
}

// GetItem looks up one item by id.
func (s *StoreService) GetItem(id string) (*model.StoreItem, error) {
	item := &model.StoreItem{}
	err := s.db.Model(model.StoreItem{}).
		Where("id = ?", id).
		First(item).
		Error
	if database.IsNotFound(err) {
		return nil, ErrItemNotFound
	} else if err != nil {
		return nil, err
	}
	return item, nil
}

// AllItems lists the catalog in insertion order.
func (s *StoreService) AllItems() ([]model.StoreItem, error) {
	var items []model.StoreItem
	err := s.db.Model(model.StoreItem{}).Find(&items).Error
	return items, err
}

// AvailableItems lists only the items students can currently purchase.
func (s *StoreService) AvailableItems() ([]model.StoreItem, error) {
	var items []model.StoreItem
	err := s.db.Model(model.StoreItem{}).
		Where("available = ?", true).
		Find(&items).Error
	return items, err
}
