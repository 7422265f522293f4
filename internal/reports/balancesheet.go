package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// materiality is the threshold below which an account's balance is left
// off the balance sheet entirely.
var materiality = decimal.RequireFromString("0.01")

// BalanceLine is one account's name and normalized balance.
type BalanceLine struct {
	Name   string
	Amount decimal.Decimal
}

// BalanceSheet buckets account balances as of a date. Retained earnings is
// computed on the fly: the RETAINED_EARNINGS equity balances plus all
// income balances minus all expense balances, i.e. undistributed P&L folds
// into equity without a posted closing entry. For a self-consistent ledger
// AssetsTotal equals LiabEquityTotal.
type BalanceSheet struct {
	AssetsCurrent    []BalanceLine
	AssetsNonCurrent []BalanceLine
	LiabCurrent      []BalanceLine
	LiabNonCurrent   []BalanceLine
	EquityCapital    []BalanceLine

	RetainedEarnings decimal.Decimal
	AssetsTotal      decimal.Decimal
	LiabTotal        decimal.Decimal
	EquityTotal      decimal.Decimal
	LiabEquityTotal  decimal.Decimal
}

// BalanceSheet builds the report as of the given date. A nil date yields
// an empty report rather than an error. Asset and liability accounts whose
// subtype matches no bucket are skipped; the seeded chart always carries
// subtypes.
func (e *Engine) BalanceSheet(asOf *time.Time) (BalanceSheet, error) {
	bs := BalanceSheet{
		RetainedEarnings: decimal.Zero,
		AssetsTotal:      decimal.Zero,
		LiabTotal:        decimal.Zero,
		EquityTotal:      decimal.Zero,
		LiabEquityTotal:  decimal.Zero,
	}
	if asOf == nil {
		return bs, nil
	}

	accts, err := e.store.ListAccounts()
	if err != nil {
		return BalanceSheet{}, err
	}

	r := model.Through(*asOf)
	capital := decimal.Zero
	for _, acct := range accts {
		bal, err := e.calc.Balance(acct, r)
		if err != nil {
			return BalanceSheet{}, err
		}
		if bal.Abs().LessThan(materiality) {
			continue
		}

		line := BalanceLine{Name: acct.Name, Amount: bal}
		switch acct.Type {
		case model.AccountTypeAsset:
			switch acct.Subtype {
			case model.SubtypeCurrentAsset:
				bs.AssetsCurrent = append(bs.AssetsCurrent, line)
				bs.AssetsTotal = bs.AssetsTotal.Add(bal)
			case model.SubtypeNonCurrentAsset:
				bs.AssetsNonCurrent = append(bs.AssetsNonCurrent, line)
				bs.AssetsTotal = bs.AssetsTotal.Add(bal)
			}
		case model.AccountTypeLiability:
			switch acct.Subtype {
			case model.SubtypeCurrentLiability:
				bs.LiabCurrent = append(bs.LiabCurrent, line)
				bs.LiabTotal = bs.LiabTotal.Add(bal)
			case model.SubtypeNonCurrentLiability:
				bs.LiabNonCurrent = append(bs.LiabNonCurrent, line)
				bs.LiabTotal = bs.LiabTotal.Add(bal)
			}
		case model.AccountTypeEquity:
			switch acct.Subtype {
			case model.SubtypeCapital:
				bs.EquityCapital = append(bs.EquityCapital, line)
				capital = capital.Add(bal)
			case model.SubtypeRetainedEarnings:
				bs.RetainedEarnings = bs.RetainedEarnings.Add(bal)
			}
		case model.AccountTypeIncome:
			bs.RetainedEarnings = bs.RetainedEarnings.Add(bal)
		case model.AccountTypeExpense:
			bs.RetainedEarnings = bs.RetainedEarnings.Sub(bal)
		}
	}

	bs.EquityTotal = capital.Add(bs.RetainedEarnings)
	bs.LiabEquityTotal = bs.LiabTotal.Add(bs.EquityTotal)
	return bs, nil
}
