package phase

import (
	"testing"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/types"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

func skills(v ...string) *[]string {
	s := append([]string(nil), v...)
	return &s
}

func achievements(n int) *[]types.Achievement {
	var out []types.Achievement
	for i := 1; i <= n; i++ {
		out = append(out, types.Achievement{ID: i, Title: "achievement"})
	}
	return &out
}

func TestCheckUpdateAllowsFieldOnlyPatch(t *testing.T) {
	current := types.UserProgress{CurrentPhase: Registered}
	patch := types.ProgressPatch{ConfidenceBaseline: intp(35)}
	if err := CheckUpdate(current, patch); err != nil {
		t.Fatalf("CheckUpdate: %v", err)
	}
}

func TestCheckUpdateEntersOnboardingWithBaselineInSamePatch(t *testing.T) {
	current := types.UserProgress{CurrentPhase: Registered}
	patch := types.ProgressPatch{CurrentPhase: intp(Onboarding), ConfidenceBaseline: intp(35)}
	if err := CheckUpdate(current, patch); err != nil {
		t.Fatalf("CheckUpdate: %v", err)
	}
}

func TestCheckUpdateRejectsOnboardingWithoutBaseline(t *testing.T) {
	current := types.UserProgress{CurrentPhase: Registered}
	patch := types.ProgressPatch{CurrentPhase: intp(Onboarding)}
	err := CheckUpdate(current, patch)
	if err == nil {
		t.Fatalf("CheckUpdate: expected error without confidence_baseline")
	}
	if !errs.IsValidation(err) {
		t.Fatalf("CheckUpdate: expected validation error, got %v", err)
	}
}

func TestCheckUpdateUsesStoredFieldsForPreconditions(t *testing.T) {
	baseline := 40
	current := types.UserProgress{CurrentPhase: Onboarding, ConfidenceBaseline: &baseline}
	patch := types.ProgressPatch{CurrentPhase: intp(Onboarding)}
	if err := CheckUpdate(current, patch); err != nil {
		t.Fatalf("CheckUpdate: %v", err)
	}
}

func TestCheckUpdateRejectsBackwardPhase(t *testing.T) {
	baseline := 40
	current := types.UserProgress{CurrentPhase: Discovery, ConfidenceBaseline: &baseline}
	patch := types.ProgressPatch{CurrentPhase: intp(Onboarding)}
	if err := CheckUpdate(current, patch); err == nil {
		t.Fatalf("CheckUpdate: expected error on backward phase move")
	}
}

func TestCheckUpdateRejectsPhaseOutOfRange(t *testing.T) {
	current := types.UserProgress{CurrentPhase: Registered}
	for _, target := range []int{-1, Max + 1} {
		patch := types.ProgressPatch{CurrentPhase: intp(target)}
		if err := CheckUpdate(current, patch); err == nil {
			t.Fatalf("CheckUpdate(%d): expected range error", target)
		}
	}
}

func TestCheckUpdateDiscoveryRequiresNarrativeAchievementsAndSkills(t *testing.T) {
	baseline := 35
	current := types.UserProgress{CurrentPhase: Onboarding, ConfidenceBaseline: &baseline}

	patch := types.ProgressPatch{CurrentPhase: intp(Discovery)}
	if err := CheckUpdate(current, patch); err == nil {
		t.Fatalf("CheckUpdate: expected error without discovery fields")
	}

	patch = types.ProgressPatch{
		CurrentPhase: intp(Discovery),
		Narrative:    strp("A dedicated professional."),
		Achievements: achievements(2),
		CoreSkills:   skills("communication", "analysis"),
	}
	if err := CheckUpdate(current, patch); err != nil {
		t.Fatalf("CheckUpdate: %v", err)
	}
}

func TestCheckUpdateBoundsScalarFields(t *testing.T) {
	current := types.UserProgress{CurrentPhase: Registered}

	if err := CheckUpdate(current, types.ProgressPatch{ConfidenceBaseline: intp(101)}); err == nil {
		t.Fatalf("CheckUpdate: expected error for confidence_baseline > 100")
	}
	if err := CheckUpdate(current, types.ProgressPatch{ConfidenceCurrent: intp(-1)}); err == nil {
		t.Fatalf("CheckUpdate: expected error for negative confidence_current")
	}
	if err := CheckUpdate(current, types.ProgressPatch{YearsExperience: intp(-2)}); err == nil {
		t.Fatalf("CheckUpdate: expected error for negative years_experience")
	}
	if err := CheckUpdate(current, types.ProgressPatch{CoreSkills: skills("a", "b", "c", "d")}); err == nil {
		t.Fatalf("CheckUpdate: expected error for more than %d core skills", MaxCoreSkills)
	}
}

func TestNameKnownAndUnknown(t *testing.T) {
	if got := Name(Onboarding); got != "onboarding" {
		t.Fatalf("Name: want=%q got=%q", "onboarding", got)
	}
	if got := Name(99); got != "unknown(99)" {
		t.Fatalf("Name: want=%q got=%q", "unknown(99)", got)
	}
}
