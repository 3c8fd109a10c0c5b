package account

import (
	"strings"
	"time"
)

// Account is owned by the accounts module; employees only read it.
type Account struct {
	ID        uint       `gorm:"column:id;primaryKey"`
	Email     string     `gorm:"column:email;size:255;not null"`
	Title     string     `gorm:"column:title"`
	FirstName string     `gorm:"column:first_name;not null"`
	LastName  string     `gorm:"column:last_name;not null"`
	Role      string     `gorm:"column:role;not null"`
	Status    string     `gorm:"column:status;default:active"`
	Created   time.Time  `gorm:"column:created;autoCreateTime"`
	Updated   *time.Time `gorm:"column:updated"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
