// Package chart holds the default chart of accounts seeded into a new
// ledger. Report conventions (COGS on code 5000, cash on 1000/1010)
// assume this chart's codes.
package chart

import "github.com/keepbook-dev/keepbook/internal/model"

// Default returns the default small-business chart of accounts. Every
// asset, liability, and equity account carries a subtype so the balance
// sheet can bucket it.
func Default() []model.Account {
	return []model.Account{
		{Code: "1000", Name: "Cash on Hand", Type: model.AccountTypeAsset, Subtype: model.SubtypeCurrentAsset},
		{Code: "1010", Name: "Bank - Current Account", Type: model.AccountTypeAsset, Subtype: model.SubtypeCurrentAsset},
		{Code: "1100", Name: "Accounts Receivable", Type: model.AccountTypeAsset, Subtype: model.SubtypeCurrentAsset},
		{Code: "1200", Name: "Inventory", Type: model.AccountTypeAsset, Subtype: model.SubtypeCurrentAsset},
		{Code: "1500", Name: "Prepaid Expenses", Type: model.AccountTypeAsset, Subtype: model.SubtypeCurrentAsset},
		{Code: "1800", Name: "Equipment & Fixtures", Type: model.AccountTypeAsset, Subtype: model.SubtypeNonCurrentAsset},
		{Code: "2000", Name: "Accounts Payable", Type: model.AccountTypeLiability, Subtype: model.SubtypeCurrentLiability},
		{Code: "2100", Name: "Taxes Payable", Type: model.AccountTypeLiability, Subtype: model.SubtypeCurrentLiability},
		{Code: "2500", Name: "Long-term Loan", Type: model.AccountTypeLiability, Subtype: model.SubtypeNonCurrentLiability},
		{Code: "3000", Name: "Owner's Equity", Type: model.AccountTypeEquity, Subtype: model.SubtypeCapital},
		{Code: "3100", Name: "Retained Earnings", Type: model.AccountTypeEquity, Subtype: model.SubtypeRetainedEarnings},
		{Code: "4000", Name: "Sales Revenue", Type: model.AccountTypeIncome},
		{Code: "4100", Name: "Other Income", Type: model.AccountTypeIncome},
		{Code: "5000", Name: "Cost of Goods Sold", Type: model.AccountTypeExpense},
		{Code: "5100", Name: "Delivery & Courier Expense", Type: model.AccountTypeExpense},
		{Code: "5200", Name: "Advertising & Marketing", Type: model.AccountTypeExpense},
		{Code: "5300", Name: "Rent Expense", Type: model.AccountTypeExpense},
		{Code: "5400", Name: "Utilities Expense", Type: model.AccountTypeExpense},
		{Code: "5500", Name: "Bank Charges", Type: model.AccountTypeExpense},
	}
}
