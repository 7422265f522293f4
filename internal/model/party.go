package model

import "time"

// Customer is sub-ledger master data, referenced weakly from journal lines.
type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:100"`
	Address   string `gorm:"size:255"`
	CreatedAt time.Time
}

func (Customer) TableName() string { return "customers" }

// Supplier is sub-ledger master data, referenced weakly from journal lines.
type Supplier struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:100"`
	Address   string `gorm:"size:255"`
	CreatedAt time.Time
}

func (Supplier) TableName() string { return "suppliers" }

// Item is inventory master data. Unit is the unit of measure ("pcs", "kg").
type Item struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	Unit      string `gorm:"size:20"`
	CreatedAt time.Time
}

func (Item) TableName() string { return "items" }
