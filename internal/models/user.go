package models

import (
	"time"
)

// User is a credential record. Username is immutable once created;
// PasswordHash only changes through a rotation.
type User struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"` // Case-sensitive
	PasswordHash string `gorm:"not null" json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table name stable across GORM naming strategies
func (User) TableName() string {
	return "users"
}
