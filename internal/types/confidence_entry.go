package types

import (
	"time"

	"github.com/google/uuid"
)

// ConfidenceEntry is one point of the append-only per-user confidence
// time series. Rows are never updated after creation.
type ConfidenceEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`

	ConfidenceLevel int       `gorm:"not null;column:confidence_level" json:"confidence_level"`
	RecordedAt      time.Time `gorm:"not null" json:"recorded_at"`
}

func (ConfidenceEntry) TableName() string { return "confidence_entry" }
