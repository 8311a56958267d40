package types

import (
	"github.com/google/uuid"
)

// UserRole joins a user to a catalog role. At most one row per
// (user_id, role_id) pair; writes against an existing pair update it.
type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_role_pair;column:user_id" json:"user_id"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_role_pair;column:role_id" json:"role_id"`

	IsShortlisted bool `gorm:"not null;default:false;column:is_shortlisted" json:"is_shortlisted"`
	IsSelected    bool `gorm:"not null;default:false;column:is_selected" json:"is_selected"`
}

func (UserRole) TableName() string { return "user_role" }

// UserRoleWithRole is the join shape returned by the storage port for
// per-user role listings.
type UserRoleWithRole struct {
	UserRole
	Role Role `json:"role"`
}
