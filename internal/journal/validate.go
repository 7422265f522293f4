package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnbalancedError reports that an entry's total debits do not equal its
// total credits at 2-decimal rounding. An entry failing this invariant is
// never persisted.
type UnbalancedError struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

func (e UnbalancedError) Error() string {
	return fmt.Sprintf("entry not balanced: debits (%s) != credits (%s)",
		e.Debit.StringFixed(2), e.Credit.StringFixed(2))
}

// ValidationError describes a single rejected line. Line is 1-based;
// zero means the violation applies to the entry as a whole.
type ValidationError struct {
	Line        int
	Description string
}

func (e ValidationError) Error() string {
	if e.Line == 0 {
		return e.Description
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	AccountExists(id uint) bool
}

// LineInput is one submitted debit/credit line. Exactly one of Debit/Credit
// is expected to carry the amount; the caller sets the other to zero.
type LineInput struct {
	AccountID   uint
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal

	PartyType string
	PartyID   uint
	Qty       decimal.Decimal
}

// ValidateLines checks the per-line constraints: the set is non-empty,
// every account reference exists, and amounts are non-negative with at
// most 2 decimal places. Balance across the entry is checked separately
// so callers can surface it as its own error.
func ValidateLines(lines []LineInput, accounts AccountChecker) []ValidationError {
	if len(lines) == 0 {
		return []ValidationError{{Description: "entry has no lines"}}
	}

	var errs []ValidationError
	for i, line := range lines {
		n := i + 1
		if !accounts.AccountExists(line.AccountID) {
			errs = append(errs, ValidationError{Line: n, Description: fmt.Sprintf("unknown account %d", line.AccountID)})
		}
		if line.Debit.IsNegative() {
			errs = append(errs, ValidationError{Line: n, Description: fmt.Sprintf("negative debit %s", line.Debit)})
		}
		if line.Credit.IsNegative() {
			errs = append(errs, ValidationError{Line: n, Description: fmt.Sprintf("negative credit %s", line.Credit)})
		}
		if !twoDecimals(line.Debit) {
			errs = append(errs, ValidationError{Line: n, Description: fmt.Sprintf("debit %s has more than 2 decimal places", line.Debit)})
		}
		if !twoDecimals(line.Credit) {
			errs = append(errs, ValidationError{Line: n, Description: fmt.Sprintf("credit %s has more than 2 decimal places", line.Credit)})
		}
	}
	return errs
}

// Totals returns the summed debit and credit of the lines, each rounded
// to 2 decimal places.
func Totals(lines []LineInput) (debit, credit decimal.Decimal) {
	debit = decimal.Zero
	credit = decimal.Zero
	for _, line := range lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit.Round(2), credit.Round(2)
}

func twoDecimals(v decimal.Decimal) bool {
	hundred := v.Mul(decimal.NewFromInt(100))
	return hundred.Equal(hundred.Floor())
}
