// Package history persists recent weather searches in SQLite.
package history

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ptuyizere/weatherapp-vercel/internal/domain"
)

// Search is one recorded lookup.
type Search struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	City      string    `gorm:"index" json:"city"`
	Detail    string    `json:"detail"`
	Succeeded bool      `json:"succeeded"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is a gorm-backed search-history repository.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and migrates
// the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.AutoMigrate(&Search{}); err != nil {
		return nil, fmt.Errorf("migrate history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts one search row, stamped with the package clock.
func (s *Store) Record(ctx context.Context, city string, detail domain.Detail, succeeded bool) error {
	row := Search{
		City:      city,
		Detail:    detail.String(),
		Succeeded: succeeded,
		CreatedAt: clock.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record search: %w", err)
	}
	return nil
}

// Recent returns up to limit searches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Search, error) {
	var rows []Search
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list recent searches: %w", err)
	}
	return rows, nil
}

// Ping verifies the underlying database connection, used by readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
