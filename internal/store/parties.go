package store

import (
	"fmt"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// Master data CRUD. Parties are referenced only weakly from journal lines
// (party_type + party_id), so deleting one never touches the journal.

func (s *Store) CreateCustomer(c *model.Customer) error {
	return s.createNamed(c, &model.Customer{}, c.Name)
}

func (s *Store) ListCustomers() ([]model.Customer, error) {
	var out []model.Customer
	if err := s.db.Order("name asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return out, nil
}

func (s *Store) DeleteCustomer(id uint) error {
	return s.deleteByID(&model.Customer{}, id, "customer")
}

func (s *Store) CreateSupplier(sp *model.Supplier) error {
	return s.createNamed(sp, &model.Supplier{}, sp.Name)
}

func (s *Store) ListSuppliers() ([]model.Supplier, error) {
	var out []model.Supplier
	if err := s.db.Order("name asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}
	return out, nil
}

func (s *Store) DeleteSupplier(id uint) error {
	return s.deleteByID(&model.Supplier{}, id, "supplier")
}

func (s *Store) CreateItem(it *model.Item) error {
	return s.createNamed(it, &model.Item{}, it.Name)
}

func (s *Store) ListItems() ([]model.Item, error) {
	var out []model.Item
	if err := s.db.Order("name asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return out, nil
}

func (s *Store) DeleteItem(id uint) error {
	return s.deleteByID(&model.Item{}, id, "item")
}

func (s *Store) createNamed(record, probe any, name string) error {
	var n int64
	if err := s.db.Model(probe).Where("name = ?", name).Count(&n).Error; err != nil {
		return fmt.Errorf("checking name %q: %w", name, err)
	}
	if n > 0 {
		return fmt.Errorf("name %q: %w", name, ErrDuplicate)
	}
	if err := s.db.Create(record).Error; err != nil {
		return fmt.Errorf("creating %q: %w", name, err)
	}
	return nil
}

func (s *Store) deleteByID(record any, id uint, kind string) error {
	res := s.db.Delete(record, id)
	if res.Error != nil {
		return fmt.Errorf("deleting %s %d: %w", kind, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return nil
}
