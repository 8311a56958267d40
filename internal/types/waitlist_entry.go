package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	WaitlistTypeTraining = "training"
	WaitlistTypeMentor   = "mentor"
	WaitlistTypeUpdates  = "updates"
)

type WaitlistEntry struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email string    `gorm:"not null;column:email" json:"email"`
	Type  string    `gorm:"not null;column:type" json:"type"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (WaitlistEntry) TableName() string { return "waitlist_entry" }

func ValidWaitlistType(s string) bool {
	switch s {
	case WaitlistTypeTraining, WaitlistTypeMentor, WaitlistTypeUpdates:
		return true
	}
	return false
}
