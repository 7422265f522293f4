package reports

import (
	"github.com/shopspring/decimal"

	"github.com/keepbook-dev/keepbook/internal/balance"
	"github.com/keepbook-dev/keepbook/internal/model"
)

// TrialBalanceRow is one account's raw debit-or-credit balance for the
// period. At most one of Debit/Credit is non-zero.
type TrialBalanceRow struct {
	Code   string
	Name   string
	Type   model.AccountType
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// TrialBalance lists every account's period balance, sorted by code.
// For a ledger built only from balanced entries the two column totals
// are equal; the report states them without enforcing it.
type TrialBalance struct {
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// TrialBalance builds the trial balance over the inclusive date range.
// The columns carry the raw debits-minus-credits value split by sign,
// not the type-normalized balance.
func (e *Engine) TrialBalance(r model.DateRange) (TrialBalance, error) {
	accts, err := e.store.ListAccounts()
	if err != nil {
		return TrialBalance{}, err
	}

	tb := TrialBalance{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, acct := range accts {
		raw, err := e.calc.Raw(acct, r)
		if err != nil {
			return TrialBalance{}, err
		}
		debit, credit := balance.Split(raw)
		tb.Rows = append(tb.Rows, TrialBalanceRow{
			Code:   acct.Code,
			Name:   acct.Name,
			Type:   acct.Type,
			Debit:  debit,
			Credit: credit,
		})
		tb.TotalDebit = tb.TotalDebit.Add(debit)
		tb.TotalCredit = tb.TotalCredit.Add(credit)
	}
	return tb, nil
}
