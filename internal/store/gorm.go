package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Entry is one named collection and its serialized payload.
type Entry struct {
	Collection string `gorm:"primaryKey"`
	Payload    string `gorm:"not null"`
}

func (Entry) TableName() string {
	return "store_entries"
}

// GormStore keeps collections in a single-file SQLite database on the
// device. Writes are synchronous; a Save that returns nil is durable.
type GormStore struct {
	db *gorm.DB
}

// Open opens (creating if needed) the store file at path and migrates the
// schema.
func Open(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(name string) (string, bool, error) {
	var entry Entry
	err := s.db.First(&entry, "collection = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", name, err)
	}
	return entry.Payload, true, nil
}

func (s *GormStore) Save(name, payload string) error {
	entry := Entry{Collection: name, Payload: payload}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *GormStore) Delete(name string) error {
	if err := s.db.Delete(&Entry{}, "collection = ?", name).Error; err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}
