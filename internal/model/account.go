package model

// AccountType classifies accounts in the chart of accounts. Every balance
// sign rule in the ledger depends on this closed set of five kinds.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeIncome    AccountType = "INCOME"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// DebitNormal reports whether the type's natural positive balance is an
// excess of debits (ASSET, EXPENSE). The remaining types are credit-normal.
func (t AccountType) DebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// AccountSubtype refines an account type for balance sheet bucketing.
// Optional; asset and liability accounts without a subtype never appear
// on the balance sheet.
type AccountSubtype string

const (
	SubtypeCurrentAsset        AccountSubtype = "CURRENT_ASSET"
	SubtypeNonCurrentAsset     AccountSubtype = "NON_CURRENT_ASSET"
	SubtypeCurrentLiability    AccountSubtype = "CURRENT_LIABILITY"
	SubtypeNonCurrentLiability AccountSubtype = "NON_CURRENT_LIABILITY"
	SubtypeCapital             AccountSubtype = "CAPITAL"
	SubtypeRetainedEarnings    AccountSubtype = "RETAINED_EARNINGS"
)

// Account is a row in the chart of accounts. Code is the stable short
// identifier used for sort order and for fixed report conventions.
type Account struct {
	ID          uint           `gorm:"primaryKey"`
	Code        string         `gorm:"size:20;uniqueIndex;not null"`
	Name        string         `gorm:"size:100;index;not null"`
	Type        AccountType    `gorm:"size:20;index;not null"`
	Subtype     AccountSubtype `gorm:"size:30"`
	Description string         `gorm:"type:text"`
}

func (Account) TableName() string { return "accounts" }
