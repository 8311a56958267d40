package phase

import (
	"fmt"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/types"
)

// Phases of the coaching journey. A progress record starts at Registered
// and only ever moves forward.
const (
	Registered   = 0
	Onboarding   = 1
	Discovery    = 2
	RoleMatching = 3
	Applications = 4
	Dashboard    = 5
	Complete     = 6

	Min = Registered
	Max = Complete
)

var names = map[int]string{
	Registered:   "registered",
	Onboarding:   "onboarding",
	Discovery:    "discovery",
	RoleMatching: "role_matching",
	Applications: "applications",
	Dashboard:    "dashboard",
	Complete:     "complete",
}

func Name(p int) string {
	if n, ok := names[p]; ok {
		return n
	}
	return fmt.Sprintf("unknown(%d)", p)
}

func Valid(p int) bool { return p >= Min && p <= Max }

// MaxCoreSkills bounds the core skills list captured during discovery.
const MaxCoreSkills = 3

// CheckUpdate validates a progress patch against the stored record.
// It enforces the two invariants of the progress state machine:
//
//  1. currentPhase never decreases, and
//  2. the fields a phase's preceding step collects must be present
//     (after the patch is applied) before that phase can be entered.
//
// It also bounds the scalar fields the patch may set.
func CheckUpdate(current types.UserProgress, patch types.ProgressPatch) error {
	if err := checkRanges(patch); err != nil {
		return err
	}
	if patch.CurrentPhase == nil {
		return nil
	}

	target := *patch.CurrentPhase
	if !Valid(target) {
		return errs.Invalidf("current_phase must be between %d and %d, got %d", Min, Max, target)
	}
	if target < current.CurrentPhase {
		return errs.Invalidf("current_phase cannot move backwards: %s(%d) -> %s(%d)",
			Name(current.CurrentPhase), current.CurrentPhase, Name(target), target)
	}

	merged := current
	patch.Apply(&merged)
	return checkEntry(target, merged)
}

// checkEntry verifies the cumulative field preconditions for entering a
// phase. Onboarding records the confidence baseline; discovery produces
// the narrative, achievements and core skills.
func checkEntry(target int, merged types.UserProgress) error {
	if target >= Onboarding {
		if merged.ConfidenceBaseline == nil {
			return errs.Invalidf("entering %s requires confidence_baseline", Name(target))
		}
	}
	if target >= Discovery {
		if merged.Narrative == "" {
			return errs.Invalidf("entering %s requires narrative", Name(target))
		}
		if len(merged.Achievements) == 0 {
			return errs.Invalidf("entering %s requires achievements", Name(target))
		}
		if len(merged.CoreSkills) == 0 {
			return errs.Invalidf("entering %s requires core_skills", Name(target))
		}
	}
	return nil
}

func checkRanges(patch types.ProgressPatch) error {
	if patch.ConfidenceBaseline != nil && !inConfidenceRange(*patch.ConfidenceBaseline) {
		return errs.Invalidf("confidence_baseline must be between 0 and 100")
	}
	if patch.ConfidenceCurrent != nil && !inConfidenceRange(*patch.ConfidenceCurrent) {
		return errs.Invalidf("confidence_current must be between 0 and 100")
	}
	if patch.YearsExperience != nil && *patch.YearsExperience < 0 {
		return errs.Invalidf("years_experience cannot be negative")
	}
	if patch.StoryScore != nil && *patch.StoryScore < 0 {
		return errs.Invalidf("story_score cannot be negative")
	}
	if patch.CoreSkills != nil && len(*patch.CoreSkills) > MaxCoreSkills {
		return errs.Invalidf("core_skills holds at most %d entries", MaxCoreSkills)
	}
	return nil
}

func inConfidenceRange(v int) bool { return v >= 0 && v <= 100 }
