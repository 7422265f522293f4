// Package journal validates and records journal entries. An entry is a
// dated group of debit/credit lines whose totals must balance; validation
// happens before the store writes the aggregate atomically.
package journal

import (
	"fmt"
	"time"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// Store is the persistence surface the service needs.
type Store interface {
	AccountChecker
	CreateEntry(e *model.JournalEntry) error
	DeleteEntry(id uint) error
	ListEntries() ([]model.JournalEntry, error)
}

// Service provides business logic for journal entries.
type Service struct {
	store Store
}

// NewService creates a journal Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateParams holds a submitted journal entry.
type CreateParams struct {
	Date  time.Time
	Memo  string
	Lines []LineInput
}

// Create validates the submitted lines and persists the entry with all its
// lines in one transaction. An UnbalancedError means total debits did not
// equal total credits at 2-decimal rounding; nothing is written in any
// failure case.
func (s *Service) Create(p CreateParams) (model.JournalEntry, error) {
	if verrs := ValidateLines(p.Lines, s.store); len(verrs) > 0 {
		return model.JournalEntry{}, verrs[0]
	}

	debit, credit := Totals(p.Lines)
	if !debit.Equal(credit) {
		return model.JournalEntry{}, UnbalancedError{Debit: debit, Credit: credit}
	}

	entry := model.JournalEntry{
		Date: p.Date,
		Memo: p.Memo,
	}
	for _, line := range p.Lines {
		entry.Lines = append(entry.Lines, model.JournalLine{
			AccountID:   line.AccountID,
			Description: line.Description,
			Debit:       line.Debit,
			Credit:      line.Credit,
			PartyType:   model.PartyType(line.PartyType),
			PartyID:     line.PartyID,
			Qty:         line.Qty,
		})
	}

	if err := s.store.CreateEntry(&entry); err != nil {
		return model.JournalEntry{}, fmt.Errorf("persisting entry: %w", err)
	}
	return entry, nil
}

// Delete removes an entry and its lines. The store performs the cascade
// within a single transaction.
func (s *Service) Delete(id uint) error {
	return s.store.DeleteEntry(id)
}

// List returns all entries, newest first.
func (s *Service) List() ([]model.JournalEntry, error) {
	return s.store.ListEntries()
}
