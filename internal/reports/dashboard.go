package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// cashAccountCodes are the accounts counted as cash on the dashboard,
// fixed by the seeded chart.
var cashAccountCodes = map[string]bool{
	"1000": true, // Cash on Hand
	"1010": true, // Bank - Current Account
}

// Dashboard summarizes the current month: revenue and expenses to date,
// their difference, and the all-time cash position.
type Dashboard struct {
	Revenue     decimal.Decimal
	Expenses    decimal.Decimal
	Profit      decimal.Decimal
	CashBalance decimal.Decimal
}

// Dashboard builds the month-to-date summary as of today.
func (e *Engine) Dashboard(today time.Time) (Dashboard, error) {
	startMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	month := model.Between(startMonth, today)

	_, revenue, err := e.store.TypeTotals(model.AccountTypeIncome, month)
	if err != nil {
		return Dashboard{}, err
	}
	expenses, _, err := e.store.TypeTotals(model.AccountTypeExpense, month)
	if err != nil {
		return Dashboard{}, err
	}

	accts, err := e.store.ListAccounts()
	if err != nil {
		return Dashboard{}, err
	}
	cash := decimal.Zero
	for _, acct := range accts {
		if !cashAccountCodes[acct.Code] {
			continue
		}
		dr, cr, err := e.store.AccountTotals(acct.ID, model.Unbounded)
		if err != nil {
			return Dashboard{}, err
		}
		cash = cash.Add(dr.Sub(cr))
	}

	return Dashboard{
		Revenue:     revenue,
		Expenses:    expenses,
		Profit:      revenue.Sub(expenses),
		CashBalance: cash,
	}, nil
}
