package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// CreateUser inserts a login user. Usernames are unique.
func (s *Store) CreateUser(u *model.User) error {
	var n int64
	if err := s.db.Model(&model.User{}).Where("username = ?", u.Username).Count(&n).Error; err != nil {
		return fmt.Errorf("checking username %q: %w", u.Username, err)
	}
	if n > 0 {
		return fmt.Errorf("username %q: %w", u.Username, ErrDuplicate)
	}
	if err := s.db.Create(u).Error; err != nil {
		return fmt.Errorf("creating user %q: %w", u.Username, err)
	}
	return nil
}

// GetUser returns the user with the given ID.
func (s *Store) GetUser(id uint) (model.User, error) {
	var u model.User
	if err := s.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return model.User{}, fmt.Errorf("loading user %d: %w", id, err)
	}
	return u, nil
}

// UserByUsername returns the user with the given username, or ErrNotFound.
func (s *Store) UserByUsername(username string) (model.User, error) {
	var u model.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return model.User{}, fmt.Errorf("loading user %q: %w", username, err)
	}
	return u, nil
}

// CountUsers returns the number of login users. Zero means the bootstrap
// admin has not been created yet.
func (s *Store) CountUsers() (int64, error) {
	var n int64
	if err := s.db.Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}
