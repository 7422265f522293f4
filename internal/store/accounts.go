package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// CreateAccount inserts a new account. The code must be unique.
func (s *Store) CreateAccount(a *model.Account) error {
	var n int64
	if err := s.db.Model(&model.Account{}).Where("code = ?", a.Code).Count(&n).Error; err != nil {
		return fmt.Errorf("checking account code %q: %w", a.Code, err)
	}
	if n > 0 {
		return fmt.Errorf("account code %q: %w", a.Code, ErrDuplicate)
	}
	if err := s.db.Create(a).Error; err != nil {
		return fmt.Errorf("creating account %q: %w", a.Code, err)
	}
	return nil
}

// GetAccount returns the account with the given ID.
func (s *Store) GetAccount(id uint) (model.Account, error) {
	var a model.Account
	if err := s.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Account{}, fmt.Errorf("account %d: %w", id, ErrNotFound)
		}
		return model.Account{}, fmt.Errorf("loading account %d: %w", id, err)
	}
	return a, nil
}

// AccountByCode returns the account with the given code, or ErrNotFound.
func (s *Store) AccountByCode(code string) (model.Account, error) {
	var a model.Account
	if err := s.db.Where("code = ?", code).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Account{}, fmt.Errorf("account code %q: %w", code, ErrNotFound)
		}
		return model.Account{}, fmt.Errorf("loading account code %q: %w", code, err)
	}
	return a, nil
}

// ListAccounts returns all accounts sorted by code ascending, the order
// every report presents them in.
func (s *Store) ListAccounts() ([]model.Account, error) {
	var accts []model.Account
	if err := s.db.Order("code asc").Find(&accts).Error; err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return accts, nil
}

// AccountExists reports whether an account ID exists.
func (s *Store) AccountExists(id uint) bool {
	var n int64
	s.db.Model(&model.Account{}).Where("id = ?", id).Count(&n)
	return n > 0
}

// DeleteAccount removes an account. Deletion is restricted: an account
// referenced by any journal line returns ErrAccountInUse.
func (s *Store) DeleteAccount(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.JournalLine{}).Where("account_id = ?", id).Count(&n).Error; err != nil {
			return fmt.Errorf("checking account usage: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("account %d: %w", id, ErrAccountInUse)
		}
		res := tx.Delete(&model.Account{}, id)
		if res.Error != nil {
			return fmt.Errorf("deleting account %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("account %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// SeedAccounts inserts any of the given accounts whose code is not already
// present. Seeding is idempotent and never overwrites an existing account.
func (s *Store) SeedAccounts(accts []model.Account) error {
	for _, a := range accts {
		var n int64
		if err := s.db.Model(&model.Account{}).Where("code = ?", a.Code).Count(&n).Error; err != nil {
			return fmt.Errorf("checking account code %q: %w", a.Code, err)
		}
		if n > 0 {
			continue
		}
		a := a
		if err := s.db.Create(&a).Error; err != nil {
			return fmt.Errorf("seeding account %q: %w", a.Code, err)
		}
	}
	return nil
}
