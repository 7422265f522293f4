package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyType identifies which master table a journal line's party reference
// points into. The reference is weak: no foreign key is enforced and
// deleting a party leaves its lines untouched.
type PartyType string

const (
	PartyCustomer PartyType = "CUSTOMER"
	PartySupplier PartyType = "SUPPLIER"
	PartyItem     PartyType = "ITEM"
)

// JournalEntry is an atomic, dated, balanced group of debit/credit lines.
// It is created with all its lines in one transaction and deleting it
// cascades to its lines.
type JournalEntry struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"index;not null"`
	Memo      string    `gorm:"size:255"`
	CreatedAt time.Time

	Lines []JournalLine `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

func (JournalEntry) TableName() string { return "journal_entries" }

// JournalLine is one side of a double-entry. Exactly one of Debit/Credit
// carries the amount; callers set the other to zero.
type JournalLine struct {
	ID          uint            `gorm:"primaryKey"`
	EntryID     uint            `gorm:"index;not null"`
	AccountID   uint            `gorm:"index;not null"`
	Description string          `gorm:"size:255"`
	Debit       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Credit      decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	// Optional sub-ledger reference into customers/suppliers/items.
	PartyType PartyType `gorm:"size:20"`
	PartyID   uint
	Qty       decimal.Decimal `gorm:"type:numeric(14,2)"`
}

func (JournalLine) TableName() string { return "journal_lines" }

// DateRange restricts an aggregation to journal entries whose date falls
// within the inclusive bounds. A nil bound leaves that side open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Unbounded is the range covering the whole journal.
var Unbounded = DateRange{}

// Through returns a range with only an upper bound, as used by "as of"
// balance queries.
func Through(end time.Time) DateRange {
	return DateRange{End: &end}
}

// Between returns an explicit inclusive [start, end] window.
func Between(start, end time.Time) DateRange {
	return DateRange{Start: &start, End: &end}
}

// Contains reports whether d falls within the range bounds.
func (r DateRange) Contains(d time.Time) bool {
	if r.Start != nil && d.Before(*r.Start) {
		return false
	}
	if r.End != nil && d.After(*r.End) {
		return false
	}
	return true
}
