package types

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Achievement is one item of the ordered achievements list captured
// during the discovery questionnaire.
type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UserProgress is the single per-user record tracking the journey through
// the coaching flow. One row per user, created together with the user.
type UserProgress struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`

	CurrentPhase       int    `gorm:"not null;default:0;column:current_phase" json:"current_phase"`
	ConfidenceBaseline *int   `gorm:"column:confidence_baseline" json:"confidence_baseline"`
	ConfidenceCurrent  *int   `gorm:"column:confidence_current" json:"confidence_current"`
	YearsExperience    *int   `gorm:"column:years_experience" json:"years_experience"`
	KeySkills          string `gorm:"column:key_skills" json:"key_skills,omitempty"`
	Narrative          string `gorm:"column:narrative" json:"narrative,omitempty"`

	Achievements datatypes.JSONSlice[Achievement] `gorm:"column:achievements" json:"achievements"`
	CoreSkills   datatypes.JSONSlice[string]      `gorm:"column:core_skills" json:"core_skills"`
	SkillGaps    datatypes.JSONSlice[string]      `gorm:"column:skill_gaps" json:"skill_gaps"`

	StoryScore int `gorm:"not null;default:0;column:story_score" json:"story_score"`
}

func (UserProgress) TableName() string { return "user_progress" }
