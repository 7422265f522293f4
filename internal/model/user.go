package model

// User is a login account. There is no registration flow; the bootstrap
// admin is created at first startup when the table is empty.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
}

func (User) TableName() string { return "users" }
