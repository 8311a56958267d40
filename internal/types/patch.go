package types

// Patch types carry partial updates. A nil field means "leave unchanged",
// so callers can PATCH any subset of mutable fields. Identifiers and
// server-set timestamps are not representable here; values for them in a
// request body are dropped and the stored value wins.

type ProgressPatch struct {
	CurrentPhase       *int           `json:"current_phase"`
	ConfidenceBaseline *int           `json:"confidence_baseline"`
	ConfidenceCurrent  *int           `json:"confidence_current"`
	YearsExperience    *int           `json:"years_experience"`
	KeySkills          *string        `json:"key_skills"`
	Narrative          *string        `json:"narrative"`
	Achievements       *[]Achievement `json:"achievements"`
	CoreSkills         *[]string      `json:"core_skills"`
	SkillGaps          *[]string      `json:"skill_gaps"`
	StoryScore         *int           `json:"story_score"`
}

// Apply merges the patch onto a progress record, field by field.
// Concurrent writers therefore resolve last-write-wins per field.
func (p ProgressPatch) Apply(up *UserProgress) {
	if p.CurrentPhase != nil {
		up.CurrentPhase = *p.CurrentPhase
	}
	if p.ConfidenceBaseline != nil {
		v := *p.ConfidenceBaseline
		up.ConfidenceBaseline = &v
	}
	if p.ConfidenceCurrent != nil {
		v := *p.ConfidenceCurrent
		up.ConfidenceCurrent = &v
	}
	if p.YearsExperience != nil {
		v := *p.YearsExperience
		up.YearsExperience = &v
	}
	if p.KeySkills != nil {
		up.KeySkills = *p.KeySkills
	}
	if p.Narrative != nil {
		up.Narrative = *p.Narrative
	}
	if p.Achievements != nil {
		up.Achievements = append([]Achievement(nil), (*p.Achievements)...)
	}
	if p.CoreSkills != nil {
		up.CoreSkills = append([]string(nil), (*p.CoreSkills)...)
	}
	if p.SkillGaps != nil {
		up.SkillGaps = append([]string(nil), (*p.SkillGaps)...)
	}
	if p.StoryScore != nil {
		up.StoryScore = *p.StoryScore
	}
}

type UserRolePatch struct {
	IsShortlisted *bool `json:"is_shortlisted"`
	IsSelected    *bool `json:"is_selected"`
}

func (p UserRolePatch) Apply(ur *UserRole) {
	if p.IsShortlisted != nil {
		ur.IsShortlisted = *p.IsShortlisted
	}
	if p.IsSelected != nil {
		ur.IsSelected = *p.IsSelected
	}
}

type ApplicationPatch struct {
	Status      *string `json:"status"`
	ResumeURL   *string `json:"resume_url"`
	CoverLetter *string `json:"cover_letter"`
	Method      *string `json:"method"`
}

func (p ApplicationPatch) Apply(a *Application) {
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.ResumeURL != nil {
		a.ResumeURL = *p.ResumeURL
	}
	if p.CoverLetter != nil {
		a.CoverLetter = *p.CoverLetter
	}
	if p.Method != nil {
		a.Method = *p.Method
	}
}
