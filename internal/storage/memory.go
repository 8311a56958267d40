package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/phase"
	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type userRoleKey struct {
	userID uuid.UUID
	roleID uuid.UUID
}

// MemStore keeps the whole entity set in process memory. It exists for
// local development and tests and honors the same port contract as the
// database-backed store. State lives for the process lifetime only.
type MemStore struct {
	mu sync.RWMutex

	users        map[uuid.UUID]types.User
	usersByEmail map[string]uuid.UUID
	progress     map[uuid.UUID]types.UserProgress // keyed by user id
	roles        []types.Role
	userRoles    map[userRoleKey]types.UserRole
	applications map[uuid.UUID]types.Application
	confidence   []types.ConfidenceEntry
	waitlist     []types.WaitlistEntry

	log *logger.Logger
}

func NewMemStore(baseLog *logger.Logger) *MemStore {
	return &MemStore{
		users:        make(map[uuid.UUID]types.User),
		usersByEmail: make(map[string]uuid.UUID),
		progress:     make(map[uuid.UUID]types.UserProgress),
		userRoles:    make(map[userRoleKey]types.UserRole),
		applications: make(map[uuid.UUID]types.Application),
		log:          baseLog.With("store", "MemStore"),
	}
}

func (ms *MemStore) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.createUserLocked(user)
}

func (ms *MemStore) createUserLocked(user *types.User) (*types.User, error) {
	if _, taken := ms.usersByEmail[user.Email]; taken {
		return nil, errs.ErrDuplicateEmail
	}
	created := *user
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.CreatedAt = time.Now().UTC()
	ms.users[created.ID] = created
	ms.usersByEmail[created.Email] = created.ID
	out := created
	return &out, nil
}

func (ms *MemStore) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	id, ok := ms.usersByEmail[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	out := ms.users[id]
	return &out, nil
}

func (ms *MemStore) CreateUserWithProgress(ctx context.Context, user *types.User) (*types.User, *types.UserProgress, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	createdUser, err := ms.createUserLocked(user)
	if err != nil {
		return nil, nil, err
	}
	createdProgress, err := ms.createUserProgressLocked(&types.UserProgress{
		UserID:       createdUser.ID,
		CurrentPhase: phase.Registered,
	})
	if err != nil {
		// Undo the user write so the onboarding step stays atomic.
		delete(ms.usersByEmail, createdUser.Email)
		delete(ms.users, createdUser.ID)
		return nil, nil, err
	}
	return createdUser, createdProgress, nil
}

func (ms *MemStore) CreateUserProgress(ctx context.Context, progress *types.UserProgress) (*types.UserProgress, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.createUserProgressLocked(progress)
}

func (ms *MemStore) createUserProgressLocked(progress *types.UserProgress) (*types.UserProgress, error) {
	if _, ok := ms.users[progress.UserID]; !ok {
		return nil, errs.ErrReferentialIntegrity
	}
	created := *progress
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	ms.progress[created.UserID] = created
	out := created
	return &out, nil
}

func (ms *MemStore) GetUserProgress(ctx context.Context, userID uuid.UUID) (*types.UserProgress, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	up, ok := ms.progress[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	out := up
	return &out, nil
}

func (ms *MemStore) UpdateUserProgress(ctx context.Context, userID uuid.UUID, patch types.ProgressPatch) (*types.UserProgress, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	current, ok := ms.progress[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if err := phase.CheckUpdate(current, patch); err != nil {
		return nil, err
	}
	patch.Apply(&current)
	ms.progress[userID] = current
	out := current
	return &out, nil
}

func (ms *MemStore) SeedRoles(ctx context.Context, roles []types.Role) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.roles) > 0 {
		return nil
	}
	for _, role := range roles {
		if role.ID == uuid.Nil {
			role.ID = uuid.New()
		}
		ms.roles = append(ms.roles, role)
	}
	ms.log.Debug("Seeded role catalog", "count", len(ms.roles))
	return nil
}

func (ms *MemStore) GetRoles(ctx context.Context) ([]types.Role, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := make([]types.Role, len(ms.roles))
	copy(out, ms.roles)
	return out, nil
}

func (ms *MemStore) GetRole(ctx context.Context, id uuid.UUID) (*types.Role, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	for _, role := range ms.roles {
		if role.ID == id {
			out := role
			return &out, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (ms *MemStore) GetUserRoles(ctx context.Context, userID uuid.UUID) ([]types.UserRoleWithRole, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var out []types.UserRoleWithRole
	for _, role := range ms.roles {
		if ur, ok := ms.userRoles[userRoleKey{userID: userID, roleID: role.ID}]; ok {
			out = append(out, types.UserRoleWithRole{UserRole: ur, Role: role})
		}
	}
	return out, nil
}

func (ms *MemStore) AddUserRole(ctx context.Context, userID, roleID uuid.UUID, isShortlisted bool) (*types.UserRole, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.users[userID]; !ok {
		return nil, errs.ErrReferentialIntegrity
	}
	if !ms.roleExistsLocked(roleID) {
		return nil, errs.ErrReferentialIntegrity
	}

	key := userRoleKey{userID: userID, roleID: roleID}
	if existing, ok := ms.userRoles[key]; ok {
		existing.IsShortlisted = isShortlisted
		ms.userRoles[key] = existing
		out := existing
		return &out, nil
	}

	created := types.UserRole{
		ID:            uuid.New(),
		UserID:        userID,
		RoleID:        roleID,
		IsShortlisted: isShortlisted,
	}
	ms.userRoles[key] = created
	out := created
	return &out, nil
}

func (ms *MemStore) UpdateUserRole(ctx context.Context, userID, roleID uuid.UUID, patch types.UserRolePatch) (*types.UserRole, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	key := userRoleKey{userID: userID, roleID: roleID}
	existing, ok := ms.userRoles[key]
	if !ok {
		return nil, errs.ErrNotFound
	}
	patch.Apply(&existing)
	ms.userRoles[key] = existing
	out := existing
	return &out, nil
}

func (ms *MemStore) GetUserApplications(ctx context.Context, userID uuid.UUID) ([]types.ApplicationWithRole, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var out []types.ApplicationWithRole
	for _, app := range ms.applications {
		if app.UserID != userID {
			continue
		}
		withRole := types.ApplicationWithRole{Application: app}
		for _, role := range ms.roles {
			if role.ID == app.RoleID {
				withRole.Role = role
				break
			}
		}
		out = append(out, withRole)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out, nil
}

func (ms *MemStore) CreateApplication(ctx context.Context, app *types.Application) (*types.Application, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.users[app.UserID]; !ok {
		return nil, errs.ErrReferentialIntegrity
	}
	if !ms.roleExistsLocked(app.RoleID) {
		return nil, errs.ErrReferentialIntegrity
	}

	created := *app
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.SubmittedAt = time.Now().UTC()
	ms.applications[created.ID] = created
	out := created
	return &out, nil
}

func (ms *MemStore) UpdateApplication(ctx context.Context, id uuid.UUID, patch types.ApplicationPatch) (*types.Application, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	existing, ok := ms.applications[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	patch.Apply(&existing)
	ms.applications[id] = existing
	out := existing
	return &out, nil
}

func (ms *MemStore) AddConfidenceEntry(ctx context.Context, entry *types.ConfidenceEntry) (*types.ConfidenceEntry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.users[entry.UserID]; !ok {
		return nil, errs.ErrReferentialIntegrity
	}

	created := *entry
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.RecordedAt = time.Now().UTC()
	ms.confidence = append(ms.confidence, created)
	out := created
	return &out, nil
}

func (ms *MemStore) GetUserConfidenceHistory(ctx context.Context, userID uuid.UUID) ([]types.ConfidenceEntry, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var out []types.ConfidenceEntry
	for _, entry := range ms.confidence {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	// Insertion order already matches recorded_at, but sort stably so the
	// ordering contract survives equal timestamps.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.Before(out[j].RecordedAt)
	})
	return out, nil
}

func (ms *MemStore) AddToWaitlist(ctx context.Context, entry *types.WaitlistEntry) (*types.WaitlistEntry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	created := *entry
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.CreatedAt = time.Now().UTC()
	ms.waitlist = append(ms.waitlist, created)
	out := created
	return &out, nil
}

func (ms *MemStore) roleExistsLocked(roleID uuid.UUID) bool {
	for _, role := range ms.roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}
