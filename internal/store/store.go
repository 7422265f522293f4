// Package store is the persistence layer: a GORM-backed relational store
// over a file-backed SQLite database. It exclusively owns all ledger rows;
// journal mutation goes through it so that an entry and its lines are
// written or deleted as one transaction.
package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// Store wraps a gorm.DB handle.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and migrates
// the schema. Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&model.Account{},
		&model.JournalEntry{},
		&model.JournalLine{},
		&model.Customer{},
		&model.Supplier{},
		&model.Item{},
		&model.User{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("unwrapping db: %w", err)
	}
	return sqlDB.Close()
}
