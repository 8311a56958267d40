package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/types"
)

// Store is the storage port every persistence backend implements. Both
// backends honor the same contract: sentinel errors from
// platform/errs, role listings in catalog order, confidence history in
// ascending recorded_at order, and progress updates gated by the phase
// state machine.
//
// The backend is chosen once at process start (STORAGE_BACKEND) and
// threaded through the services; no package-level store exists.
type Store interface {
	// Users. CreateUser fails with errs.ErrDuplicateEmail when the email
	// is taken. CreateUserWithProgress runs user + initial progress as a
	// single atomic onboarding step so a user can never exist without a
	// progress row.
	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	CreateUserWithProgress(ctx context.Context, user *types.User) (*types.User, *types.UserProgress, error)

	// Progress.
	CreateUserProgress(ctx context.Context, progress *types.UserProgress) (*types.UserProgress, error)
	GetUserProgress(ctx context.Context, userID uuid.UUID) (*types.UserProgress, error)
	UpdateUserProgress(ctx context.Context, userID uuid.UUID, patch types.ProgressPatch) (*types.UserProgress, error)

	// Role catalog. SeedRoles is idempotent: it only writes when the
	// catalog is empty.
	SeedRoles(ctx context.Context, roles []types.Role) error
	GetRoles(ctx context.Context) ([]types.Role, error)
	GetRole(ctx context.Context, id uuid.UUID) (*types.Role, error)

	// Per-user role links. AddUserRole upserts: a second write for the
	// same (user, role) pair updates the existing row instead of
	// creating a duplicate. GetUserRoles lists links in catalog order,
	// regardless of linking order.
	GetUserRoles(ctx context.Context, userID uuid.UUID) ([]types.UserRoleWithRole, error)
	AddUserRole(ctx context.Context, userID, roleID uuid.UUID, isShortlisted bool) (*types.UserRole, error)
	UpdateUserRole(ctx context.Context, userID, roleID uuid.UUID, patch types.UserRolePatch) (*types.UserRole, error)

	// Applications. SubmittedAt is set server-side at creation and is
	// never patched.
	GetUserApplications(ctx context.Context, userID uuid.UUID) ([]types.ApplicationWithRole, error)
	CreateApplication(ctx context.Context, app *types.Application) (*types.Application, error)
	UpdateApplication(ctx context.Context, id uuid.UUID, patch types.ApplicationPatch) (*types.Application, error)

	// Confidence time series, append-only.
	AddConfidenceEntry(ctx context.Context, entry *types.ConfidenceEntry) (*types.ConfidenceEntry, error)
	GetUserConfidenceHistory(ctx context.Context, userID uuid.UUID) ([]types.ConfidenceEntry, error)

	// Waitlist, append-only.
	AddToWaitlist(ctx context.Context, entry *types.WaitlistEntry) (*types.WaitlistEntry, error)
}
