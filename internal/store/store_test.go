package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepbook-dev/keepbook/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedTwoAccounts(t *testing.T, st *Store) (cash, sales model.Account) {
	t.Helper()
	cash = model.Account{Code: "1000", Name: "Cash", Type: model.AccountTypeAsset, Subtype: model.SubtypeCurrentAsset}
	sales = model.Account{Code: "4000", Name: "Sales", Type: model.AccountTypeIncome}
	require.NoError(t, st.CreateAccount(&cash))
	require.NoError(t, st.CreateAccount(&sales))
	return cash, sales
}

func TestCreateAccountDuplicateCode(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.CreateAccount(&model.Account{Code: "1000", Name: "Cash", Type: model.AccountTypeAsset}))

	err := st.CreateAccount(&model.Account{Code: "1000", Name: "Other", Type: model.AccountTypeAsset})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestListAccountsSortedByCode(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.CreateAccount(&model.Account{Code: "4000", Name: "Sales", Type: model.AccountTypeIncome}))
	require.NoError(t, st.CreateAccount(&model.Account{Code: "1000", Name: "Cash", Type: model.AccountTypeAsset}))

	accts, err := st.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accts, 2)
	assert.Equal(t, "1000", accts[0].Code)
	assert.Equal(t, "4000", accts[1].Code)

	got, err := st.GetAccount(accts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Cash", got.Name)
	_, err = st.GetAccount(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateEntryAtomicWithLines(t *testing.T) {
	st := openTestStore(t)
	cash, sales := seedTwoAccounts(t, st)

	entry := model.JournalEntry{
		Date: day(2024, 1, 5),
		Memo: "cash sale",
		Lines: []model.JournalLine{
			{AccountID: cash.ID, Debit: dec("100.00"), Credit: decimal.Zero},
			{AccountID: sales.ID, Debit: decimal.Zero, Credit: dec("100.00")},
		},
	}
	require.NoError(t, st.CreateEntry(&entry))
	require.NotZero(t, entry.ID)

	got, err := st.GetEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "cash sale", got.Memo)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, entry.ID, got.Lines[0].EntryID)
}

func TestDeleteEntryCascadesLines(t *testing.T) {
	st := openTestStore(t)
	cash, sales := seedTwoAccounts(t, st)

	entry := model.JournalEntry{
		Date: day(2024, 1, 5),
		Lines: []model.JournalLine{
			{AccountID: cash.ID, Debit: dec("50.00")},
			{AccountID: sales.ID, Credit: dec("50.00")},
		},
	}
	require.NoError(t, st.CreateEntry(&entry))
	require.NoError(t, st.DeleteEntry(entry.ID))

	_, err := st.GetEntry(entry.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// The lines must be gone too: totals coalesce back to zero.
	dr, cr, err := st.AccountTotals(cash.ID, model.Unbounded)
	require.NoError(t, err)
	assert.True(t, dr.IsZero())
	assert.True(t, cr.IsZero())
}

func TestDeleteEntryNotFound(t *testing.T) {
	st := openTestStore(t)
	require.ErrorIs(t, st.DeleteEntry(99), ErrNotFound)
}

func TestDeleteAccountRestrictedWhileInUse(t *testing.T) {
	st := openTestStore(t)
	cash, sales := seedTwoAccounts(t, st)

	entry := model.JournalEntry{
		Date: day(2024, 1, 5),
		Lines: []model.JournalLine{
			{AccountID: cash.ID, Debit: dec("10.00")},
			{AccountID: sales.ID, Credit: dec("10.00")},
		},
	}
	require.NoError(t, st.CreateEntry(&entry))

	require.ErrorIs(t, st.DeleteAccount(cash.ID), ErrAccountInUse)

	// After the entry is gone the account can be deleted.
	require.NoError(t, st.DeleteEntry(entry.ID))
	require.NoError(t, st.DeleteAccount(cash.ID))
	require.ErrorIs(t, st.DeleteAccount(cash.ID), ErrNotFound)
}

func TestAccountTotalsDateRanges(t *testing.T) {
	st := openTestStore(t)
	cash, sales := seedTwoAccounts(t, st)

	post := func(d time.Time, amount string) {
		entry := model.JournalEntry{
			Date: d,
			Lines: []model.JournalLine{
				{AccountID: cash.ID, Debit: dec(amount)},
				{AccountID: sales.ID, Credit: dec(amount)},
			},
		}
		require.NoError(t, st.CreateEntry(&entry))
	}
	post(day(2024, 1, 10), "100.00")
	post(day(2024, 2, 10), "40.00")

	tests := []struct {
		name      string
		r         model.DateRange
		wantDebit string
	}{
		{"unbounded", model.Unbounded, "140.00"},
		{"through january", model.Through(day(2024, 1, 31)), "100.00"},
		{"february only", model.Between(day(2024, 2, 1), day(2024, 2, 29)), "40.00"},
		{"inclusive bounds", model.Between(day(2024, 1, 10), day(2024, 2, 10)), "140.00"},
		{"empty window", model.Between(day(2023, 1, 1), day(2023, 12, 31)), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, cr, err := st.AccountTotals(cash.ID, tt.r)
			require.NoError(t, err)
			assert.True(t, dr.Equal(dec(tt.wantDebit)), "debit = %s, want %s", dr, tt.wantDebit)
			assert.True(t, cr.IsZero())
		})
	}
}

func TestTypeTotals(t *testing.T) {
	st := openTestStore(t)
	cash, sales := seedTwoAccounts(t, st)

	entry := model.JournalEntry{
		Date: day(2024, 1, 10),
		Lines: []model.JournalLine{
			{AccountID: cash.ID, Debit: dec("75.00")},
			{AccountID: sales.ID, Credit: dec("75.00")},
		},
	}
	require.NoError(t, st.CreateEntry(&entry))

	_, cr, err := st.TypeTotals(model.AccountTypeIncome, model.Unbounded)
	require.NoError(t, err)
	assert.True(t, cr.Equal(dec("75.00")))

	dr, _, err := st.TypeTotals(model.AccountTypeExpense, model.Unbounded)
	require.NoError(t, err)
	assert.True(t, dr.IsZero())
}

func TestSeedAccountsIdempotent(t *testing.T) {
	st := openTestStore(t)
	chart := []model.Account{
		{Code: "1000", Name: "Cash", Type: model.AccountTypeAsset},
		{Code: "4000", Name: "Sales", Type: model.AccountTypeIncome},
	}
	require.NoError(t, st.SeedAccounts(chart))
	require.NoError(t, st.SeedAccounts(chart))

	accts, err := st.ListAccounts()
	require.NoError(t, err)
	assert.Len(t, accts, 2)
}

func TestPartyCRUD(t *testing.T) {
	st := openTestStore(t)

	c := model.Customer{Name: "Acme", Email: "acme@example.com"}
	require.NoError(t, st.CreateCustomer(&c))
	require.ErrorIs(t, st.CreateCustomer(&model.Customer{Name: "Acme"}), ErrDuplicate)

	customers, err := st.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)

	require.NoError(t, st.DeleteCustomer(c.ID))
	require.ErrorIs(t, st.DeleteCustomer(c.ID), ErrNotFound)

	it := model.Item{Name: "Widget", Unit: "pcs"}
	require.NoError(t, st.CreateItem(&it))
	sp := model.Supplier{Name: "Supplies Inc"}
	require.NoError(t, st.CreateSupplier(&sp))
	require.NoError(t, st.DeleteItem(it.ID))
	require.NoError(t, st.DeleteSupplier(sp.ID))
}

// Deleting a party leaves journal lines that referenced it untouched:
// the reference is weak by design.
func TestPartyDeleteLeavesLines(t *testing.T) {
	st := openTestStore(t)
	cash, sales := seedTwoAccounts(t, st)

	c := model.Customer{Name: "Acme"}
	require.NoError(t, st.CreateCustomer(&c))

	entry := model.JournalEntry{
		Date: day(2024, 3, 1),
		Lines: []model.JournalLine{
			{AccountID: cash.ID, Debit: dec("20.00"), PartyType: model.PartyCustomer, PartyID: c.ID},
			{AccountID: sales.ID, Credit: dec("20.00")},
		},
	}
	require.NoError(t, st.CreateEntry(&entry))
	require.NoError(t, st.DeleteCustomer(c.ID))

	got, err := st.GetEntry(entry.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, c.ID, got.Lines[0].PartyID)
}

func TestUsers(t *testing.T) {
	st := openTestStore(t)

	n, err := st.CountUsers()
	require.NoError(t, err)
	assert.Zero(t, n)

	u := model.User{Username: "admin", PasswordHash: "x"}
	require.NoError(t, st.CreateUser(&u))
	require.ErrorIs(t, st.CreateUser(&model.User{Username: "admin", PasswordHash: "y"}), ErrDuplicate)

	got, err := st.UserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	byID, err := st.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	_, err = st.UserByUsername("ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
