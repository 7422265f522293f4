// Package reports generates the three standard financial statements from
// the ledger: trial balance, income statement, and balance sheet. Every
// generator is read-only and stateless; the same stored data and
// parameters always produce the same report.
package reports

import (
	"github.com/shopspring/decimal"

	"github.com/keepbook-dev/keepbook/internal/balance"
	"github.com/keepbook-dev/keepbook/internal/model"
)

// Store is the read-only ledger surface the report engine needs.
type Store interface {
	balance.TotalsReader
	ListAccounts() ([]model.Account, error)
	TypeTotals(t model.AccountType, r model.DateRange) (debit, credit decimal.Decimal, err error)
}

// Engine generates financial statements.
type Engine struct {
	store Store
	calc  *balance.Calculator
}

// NewEngine creates an Engine over the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store, calc: balance.NewCalculator(store)}
}
