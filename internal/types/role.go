package types

import (
	"github.com/google/uuid"
)

const (
	RoleStatusAvailable = "available"
	RoleStatusPending   = "pending"
	RoleStatusLocked    = "locked"
)

// Role is one entry of the static role catalog seeded at process start.
// Rows are reference data and never mutated by user requests.
type Role struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"not null;column:title" json:"title"`
	Company         string    `gorm:"not null;column:company" json:"company"`
	Location        string    `gorm:"not null;column:location" json:"location"`
	SalaryRange     string    `gorm:"column:salary_range" json:"salary_range,omitempty"`
	MatchPercentage int       `gorm:"not null;column:match_percentage" json:"match_percentage"`
	Status          string    `gorm:"not null;column:status" json:"status"`
	Description     string    `gorm:"column:description" json:"description,omitempty"`

	// Preserves catalog insertion order across backends.
	SortOrder int `gorm:"not null;default:0;column:sort_order" json:"-"`
}

func (Role) TableName() string { return "role" }

func ValidRoleStatus(s string) bool {
	switch s {
	case RoleStatusAvailable, RoleStatusPending, RoleStatusLocked:
		return true
	}
	return false
}
