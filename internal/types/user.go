package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Whatsapp string    `gorm:"column:whatsapp" json:"whatsapp,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (User) TableName() string { return "user" }
