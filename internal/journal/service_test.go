package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// fakeStore implements Store in memory.
type fakeStore struct {
	*mockAccounts
	entries []model.JournalEntry
	nextID  uint
}

func newFakeStore(accountIDs ...uint) *fakeStore {
	return &fakeStore{mockAccounts: newMockAccounts(accountIDs...), nextID: 1}
}

func (f *fakeStore) CreateEntry(e *model.JournalEntry) error {
	e.ID = f.nextID
	f.nextID++
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeStore) DeleteEntry(id uint) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return assert.AnError
}

func (f *fakeStore) ListEntries() ([]model.JournalEntry, error) {
	return f.entries, nil
}

func TestCreateBalancedEntry(t *testing.T) {
	st := newFakeStore(1, 2)
	svc := NewService(st)

	entry, err := svc.Create(CreateParams{
		Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Memo: "cash sale",
		Lines: []LineInput{
			{AccountID: 1, Description: "cash in", Debit: dec("100.00")},
			{AccountID: 2, Description: "sale", Credit: dec("100.00")},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	require.Len(t, st.entries, 1)
	require.Len(t, st.entries[0].Lines, 2)
	assert.Equal(t, "cash sale", st.entries[0].Memo)
}

func TestCreateUnbalancedEntryRejected(t *testing.T) {
	st := newFakeStore(1, 2)
	svc := NewService(st)

	_, err := svc.Create(CreateParams{
		Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Lines: []LineInput{
			{AccountID: 1, Debit: dec("100.00")},
			{AccountID: 2, Credit: dec("90.00")},
		},
	})
	require.Error(t, err)
	var unbalanced UnbalancedError
	require.ErrorAs(t, err, &unbalanced)
	assert.True(t, unbalanced.Debit.Equal(dec("100.00")))
	assert.True(t, unbalanced.Credit.Equal(dec("90.00")))

	// Nothing may be persisted on rejection.
	assert.Empty(t, st.entries)
}

func TestCreateMultiLineEntry(t *testing.T) {
	st := newFakeStore(1, 2, 3)
	svc := NewService(st)

	_, err := svc.Create(CreateParams{
		Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Lines: []LineInput{
			{AccountID: 1, Debit: dec("60.00")},
			{AccountID: 2, Debit: dec("40.00")},
			{AccountID: 3, Credit: dec("100.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, st.entries, 1)
	assert.Len(t, st.entries[0].Lines, 3)
}

func TestCreateUnknownAccountRejected(t *testing.T) {
	st := newFakeStore(1)
	svc := NewService(st)

	_, err := svc.Create(CreateParams{
		Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Lines: []LineInput{
			{AccountID: 1, Debit: dec("10.00")},
			{AccountID: 42, Credit: dec("10.00")},
		},
	})
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Error(), "unknown account 42")
	assert.Empty(t, st.entries)
}
