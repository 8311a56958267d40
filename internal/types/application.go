package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationStatusSent      = "sent"
	ApplicationStatusViewed    = "viewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusRejected  = "rejected"

	ApplicationMethodEasyApply = "easyapply"
	ApplicationMethodEmail     = "email"
)

type Application struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;column:role_id" json:"role_id"`

	Status      string `gorm:"not null;column:status" json:"status"`
	ResumeURL   string `gorm:"column:resume_url" json:"resume_url,omitempty"`
	CoverLetter string `gorm:"column:cover_letter" json:"cover_letter,omitempty"`
	Method      string `gorm:"column:method" json:"method,omitempty"`

	// Set server-side at creation, never patched afterwards.
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
}

func (Application) TableName() string { return "application" }

// ApplicationWithRole is the join shape returned by the storage port for
// per-user application listings.
type ApplicationWithRole struct {
	Application
	Role Role `json:"role"`
}

func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusSent, ApplicationStatusViewed, ApplicationStatusInterview, ApplicationStatusRejected:
		return true
	}
	return false
}

func ValidApplicationMethod(s string) bool {
	switch s {
	case ApplicationMethodEasyApply, ApplicationMethodEmail:
		return true
	}
	return false
}
