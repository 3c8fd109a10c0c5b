package position

import (
	"strings"
	"time"
)

const (
	StatusActive   = "active"
	StatusDeactive = "deactive"

	// PrivilegedName is the single-holder position.
	PrivilegedName = "president"
)

type Position struct {
	ID        uint       `gorm:"column:id;primaryKey"`
	Name      string     `gorm:"column:position;size:100;uniqueIndex;not null"`
	Status    string     `gorm:"column:status;default:active;not null"`
	CreatedAt *time.Time `gorm:"column:created;autoCreateTime"`
	UpdatedAt *time.Time `gorm:"column:updated;autoUpdateTime"`
}

func (Position) TableName() string {
	return "positions"
}

// IsPrivileged reports whether name designates the President position,
// ignoring case and surrounding whitespace.
func IsPrivileged(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) == PrivilegedName
}
