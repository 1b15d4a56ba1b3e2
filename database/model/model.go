// Package model defines the database models for the heart-haven panel.
package model

import "time"

// Role distinguishes the two account variants.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// User is the common view over the two account variants, used for
// authentication and session handoff. Only Student carries a hearts
// balance and an external student id.
type User interface {
	UserId() string
	UserRole() Role
	UserName() string
}

// Admin is a staff account. Admins manage balances and the catalog but
// hold no hearts themselves.
type Admin struct {
	Id          string `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"uniqueIndex;not null"`
	Password    string `json:"-"` // compared in plain text by product decision
	DisplayName string `json:"name"`
}

func (a Admin) UserId() string   { return a.Id }
func (a Admin) UserRole() Role   { return RoleAdmin }
func (a Admin) UserName() string { return a.Username }

// Student owns a hearts balance. Hearts never go below zero; every
// mutation path clamps or rejects before writing.
type Student struct {
	Id          string `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"uniqueIndex;not null"`
	Password    string `json:"-"`
	DisplayName string `json:"name"`
	StudentId   string `json:"studentId" gorm:"uniqueIndex"`
	Hearts      int    `json:"hearts"`
}

func (s Student) UserId() string   { return s.Id }
func (s Student) UserRole() Role   { return RoleStudent }
func (s Student) UserName() string { return s.Username }

// StoreItem is a reward redeemable for hearts.
type StoreItem struct {
	Id          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Price       int    `json:"price"` // always > 0, guarded at the service boundary
	ImageUrl    string `json:"imageUrl,omitempty"`
	Available   bool   `json:"available"`
}

// ActionType classifies a history entry.
type ActionType string

const (
	HeartsAdded   ActionType = "HEARTS_ADDED"
	HeartsRemoved ActionType = "HEARTS_REMOVED"
	ItemPurchased ActionType = "ITEM_PURCHASED"
	ItemAdded     ActionType = "ITEM_ADDED"
	ItemEdited    ActionType = "ITEM_EDITED"
	ItemRemoved   ActionType = "ITEM_REMOVED"
)

// HistoryEntry is one row of the append-only audit trail. Rows are never
// updated or deleted; ItemId may dangle once the item is removed, the
// details keep the name captured at that time. The auto-increment id
// breaks ordering ties between entries sharing a timestamp.
type HistoryEntry struct {
	Id         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamp  time.Time  `json:"timestamp" gorm:"index"`
	UserId     string     `json:"userId" gorm:"index"` // the student concerned, or the acting admin for catalog entries
	ActionType ActionType `json:"actionType" gorm:"index"`
	Details    string     `json:"details"`
	Amount     *int       `json:"amount,omitempty"` // magnitude of a heart change, when applicable
	ItemId     string     `json:"itemId,omitempty"`
}

// Setting is one key-value pair of panel runtime configuration.
type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
