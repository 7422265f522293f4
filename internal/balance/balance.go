// Package balance computes account balances over a date range. The sign
// convention follows the account type: debit-normal accounts (ASSET,
// EXPENSE) balance as debits minus credits, credit-normal accounts
// (LIABILITY, EQUITY, INCOME) as credits minus debits.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// TotalsReader is the read-only aggregation surface the calculator needs.
// Accounts with no lines in range total to zero, never an error.
type TotalsReader interface {
	AccountTotals(accountID uint, r model.DateRange) (debit, credit decimal.Decimal, err error)
}

// Calculator derives account balances from a TotalsReader. It holds no
// state of its own; every call is a fresh read.
type Calculator struct {
	reader TotalsReader
}

// NewCalculator creates a Calculator over the given reader.
func NewCalculator(reader TotalsReader) *Calculator {
	return &Calculator{reader: reader}
}

// Balance returns the account's normalized signed balance over the range:
// positive when the account holds its natural balance, negative when it
// runs contrary.
func (c *Calculator) Balance(acct model.Account, r model.DateRange) (decimal.Decimal, error) {
	dr, cr, err := c.reader.AccountTotals(acct.ID, r)
	if err != nil {
		return decimal.Zero, err
	}
	if acct.Type.DebitNormal() {
		return dr.Sub(cr), nil
	}
	return cr.Sub(dr), nil
}

// Raw returns debits minus credits over the range with no sign
// normalization. The trial balance presents this value, not the
// normalized balance.
func (c *Calculator) Raw(acct model.Account, r model.DateRange) (decimal.Decimal, error) {
	dr, cr, err := c.reader.AccountTotals(acct.ID, r)
	if err != nil {
		return decimal.Zero, err
	}
	return dr.Sub(cr), nil
}

// Split divides a raw debits-minus-credits value into presentation
// columns: the debit column carries the value when positive, the credit
// column its magnitude when negative.
func Split(raw decimal.Decimal) (debit, credit decimal.Decimal) {
	if raw.IsPositive() {
		return raw, decimal.Zero
	}
	return decimal.Zero, raw.Neg()
}
