package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// COGSAccountCode is the account code of the cost-of-goods-sold account.
// This is a fixed convention of the seeded chart of accounts, not a
// configurable rule: the income statement treats exactly this account as
// COGS and every other expense account as operating expense.
const COGSAccountCode = "5000"

// IncomeStatement is the profit and loss report for a period.
type IncomeStatement struct {
	Income        decimal.Decimal
	COGS          decimal.Decimal
	OtherExpenses decimal.Decimal
	GrossProfit   decimal.Decimal
	NetProfit     decimal.Decimal
}

// IncomeStatement builds the P&L over [start, end]. If either bound is
// missing the report is all zeros rather than an error.
func (e *Engine) IncomeStatement(start, end *time.Time) (IncomeStatement, error) {
	zero := IncomeStatement{
		Income:        decimal.Zero,
		COGS:          decimal.Zero,
		OtherExpenses: decimal.Zero,
		GrossProfit:   decimal.Zero,
		NetProfit:     decimal.Zero,
	}
	if start == nil || end == nil {
		return zero, nil
	}

	accts, err := e.store.ListAccounts()
	if err != nil {
		return IncomeStatement{}, err
	}

	r := model.Between(*start, *end)
	is := zero
	for _, acct := range accts {
		switch acct.Type {
		case model.AccountTypeIncome:
			_, cr, err := e.store.AccountTotals(acct.ID, r)
			if err != nil {
				return IncomeStatement{}, err
			}
			is.Income = is.Income.Add(cr)
		case model.AccountTypeExpense:
			dr, _, err := e.store.AccountTotals(acct.ID, r)
			if err != nil {
				return IncomeStatement{}, err
			}
			if acct.Code == COGSAccountCode {
				is.COGS = is.COGS.Add(dr)
			} else {
				is.OtherExpenses = is.OtherExpenses.Add(dr)
			}
		}
	}

	is.GrossProfit = is.Income.Sub(is.COGS)
	is.NetProfit = is.GrossProfit.Sub(is.OtherExpenses)
	return is, nil
}
