// Package database handles opening the sqlite database, running migrations
// and seeding the initial data set.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"
	"time"

	"heart-haven/config"
	"heart-haven/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func initModels(db *gorm.DB) error {
	models := []any{
		&model.Admin{},
		&model.Student{},
		&model.StoreItem{},
		&model.HistoryEntry{},
		&model.Setting{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// seedData installs the bootstrap data set on an empty database: one admin,
// two students with non-zero balances, three catalog items and a few history
// entries, mirroring a freshly provisioned classroom.
func seedData(db *gorm.DB) error {
	empty, err := isTableEmpty(db, "admins")
	if err != nil {
		log.Printf("Error checking if admins table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &model.Admin{
			Id:          "1",
			Username:    "admin",
			Password:    "admin123",
			DisplayName: "Admin User",
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		students := []model.Student{
			{Id: "2", Username: "student1", Password: "student123", DisplayName: "John Smith", StudentId: "S12345", Hearts: 50},
			{Id: "3", Username: "student2", Password: "student123", DisplayName: "Jane Doe", StudentId: "S12346", Hearts: 30},
		}
		if err := tx.Create(&students).Error; err != nil {
			return err
		}

		items := []model.StoreItem{
			{Id: "1", Name: "Homework Pass", Description: "Skip one homework assignment without penalty", Price: 20, ImageUrl: "/homework-pass.png", Available: true},
			{Id: "2", Name: "Extra Computer Time", Description: "15 minutes of extra computer time during free periods", Price: 10, ImageUrl: "/computer-time.png", Available: true},
			{Id: "3", Name: "Lunch with Teacher", Description: "Have lunch with your favorite teacher", Price: 30, ImageUrl: "/lunch-teacher.png", Available: true},
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		now := time.Now()
		ten, twenty, five := 10, 20, 5
		entries := []model.HistoryEntry{
			{Timestamp: now.Add(-72 * time.Hour), UserId: "3", ActionType: model.HeartsAdded, Details: "Helped classmate with project", Amount: &five},
			{Timestamp: now.Add(-48 * time.Hour), UserId: "2", ActionType: model.ItemPurchased, Details: `Purchased "Homework Pass"`, Amount: &twenty, ItemId: "1"},
			{Timestamp: now.Add(-24 * time.Hour), UserId: "2", ActionType: model.HeartsAdded, Details: "Completed class assignment", Amount: &ten},
		}
		return tx.Create(&entries).Error
	})
}

func isTableEmpty(db *gorm.DB, tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

// InitDB opens (creating if necessary) the sqlite database at dbPath,
// migrates the schema and seeds the bootstrap data. The returned handle is
// owned by the caller; there is no package-level database state.
func InitDB(dbPath string) (*gorm.DB, error) {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return nil, err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	for _, pragma := range []string{
		"PRAGMA cache_size = -64000;",
		"PRAGMA temp_store = MEMORY;",
		"PRAGMA foreign_keys = ON;",
	} {
		if _, err = sqlDB.Exec(pragma); err != nil {
			return nil, err
		}
	}

	if err := initModels(db); err != nil {
		return nil, err
	}
	if err := seedData(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CloseDB checkpoints the WAL and closes the underlying connection.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := Checkpoint(db); err != nil {
		log.Printf("error executing checkpoint: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// Checkpoint flushes the write-ahead log into the main database file.
func Checkpoint(db *gorm.DB) error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
