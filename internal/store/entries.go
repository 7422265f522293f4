package store

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// CreateEntry persists a journal entry together with all its lines in one
// transaction. Either the whole aggregate is written or none of it; a
// partial entry can never exist in the store. Balance validation is the
// caller's job (internal/journal).
func (s *Store) CreateEntry(e *model.JournalEntry) error {
	if len(e.Lines) == 0 {
		return fmt.Errorf("creating entry: no lines")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return fmt.Errorf("creating entry: %w", err)
		}
		return nil
	})
}

// GetEntry returns an entry with its lines.
func (s *Store) GetEntry(id uint) (model.JournalEntry, error) {
	var e model.JournalEntry
	if err := s.db.Preload("Lines").First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.JournalEntry{}, fmt.Errorf("entry %d: %w", id, ErrNotFound)
		}
		return model.JournalEntry{}, fmt.Errorf("loading entry %d: %w", id, err)
	}
	return e, nil
}

// ListEntries returns all entries with their lines, newest date first.
func (s *Store) ListEntries() ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := s.db.Preload("Lines").Order("date desc, id desc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes an entry and all its lines in one transaction.
// Returns ErrNotFound if the entry does not exist.
func (s *Store) DeleteEntry(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.JournalEntry{}, id)
		if res.Error != nil {
			return fmt.Errorf("deleting entry %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("entry %d: %w", id, ErrNotFound)
		}
		if err := tx.Where("entry_id = ?", id).Delete(&model.JournalLine{}).Error; err != nil {
			return fmt.Errorf("deleting lines of entry %d: %w", id, err)
		}
		return nil
	})
}

type totalsRow struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// AccountTotals returns the summed debit and credit over an account's
// journal lines, restricted to entries whose date falls in the inclusive
// range. Accounts with no lines in range total to zero, never an error.
func (s *Store) AccountTotals(accountID uint, r model.DateRange) (debit, credit decimal.Decimal, err error) {
	q := s.lineRange(r).Where("journal_lines.account_id = ?", accountID)

	var row totalsRow
	if err := q.Select("COALESCE(SUM(journal_lines.debit), 0) AS debit, COALESCE(SUM(journal_lines.credit), 0) AS credit").
		Scan(&row).Error; err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("summing account %d: %w", accountID, err)
	}
	return row.Debit, row.Credit, nil
}

// TypeTotals returns the summed debit and credit over all lines whose
// account has the given type, restricted to the inclusive date range.
func (s *Store) TypeTotals(t model.AccountType, r model.DateRange) (debit, credit decimal.Decimal, err error) {
	q := s.lineRange(r).
		Joins("JOIN accounts ON accounts.id = journal_lines.account_id").
		Where("accounts.type = ?", t)

	var row totalsRow
	if err := q.Select("COALESCE(SUM(journal_lines.debit), 0) AS debit, COALESCE(SUM(journal_lines.credit), 0) AS credit").
		Scan(&row).Error; err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("summing %s lines: %w", t, err)
	}
	return row.Debit, row.Credit, nil
}

func (s *Store) lineRange(r model.DateRange) *gorm.DB {
	q := s.db.Model(&model.JournalLine{}).
		Joins("JOIN journal_entries ON journal_entries.id = journal_lines.entry_id")
	if r.Start != nil {
		q = q.Where("journal_entries.date >= ?", *r.Start)
	}
	if r.End != nil {
		q = q.Where("journal_entries.date <= ?", *r.End)
	}
	return q
}
