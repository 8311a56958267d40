package storage

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/phase"
	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/repos"
	"github.com/yungbote/careerpath-backend/internal/types"
)

// DBStore is the relational implementation of the storage port, built on
// the per-entity GORM repos. It owns the mapping from GORM errors to the
// port's sentinel errors.
type DBStore struct {
	db  *gorm.DB
	log *logger.Logger

	users        repos.UserRepo
	progress     repos.UserProgressRepo
	roles        repos.RoleRepo
	userRoles    repos.UserRoleRepo
	applications repos.ApplicationRepo
	confidence   repos.ConfidenceEntryRepo
	waitlist     repos.WaitlistEntryRepo
}

func NewDBStore(db *gorm.DB, baseLog *logger.Logger) *DBStore {
	storeLog := baseLog.With("store", "DBStore")
	return &DBStore{
		db:           db,
		log:          storeLog,
		users:        repos.NewUserRepo(db, baseLog),
		progress:     repos.NewUserProgressRepo(db, baseLog),
		roles:        repos.NewRoleRepo(db, baseLog),
		userRoles:    repos.NewUserRoleRepo(db, baseLog),
		applications: repos.NewApplicationRepo(db, baseLog),
		confidence:   repos.NewConfidenceEntryRepo(db, baseLog),
		waitlist:     repos.NewWaitlistEntryRepo(db, baseLog),
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	return err
}

// mapDuplicateEmail translates the unique violation on user.email into
// the port sentinel. The pre-insert existence check cannot catch two
// concurrent registrations, so the insert itself is the backstop;
// TranslateError on the gorm connection surfaces the driver error as
// gorm.ErrDuplicatedKey.
func mapDuplicateEmail(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.ErrDuplicateEmail
	}
	return err
}

func (ds *DBStore) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	var created *types.User
	err := ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = ds.createUserTx(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (ds *DBStore) createUserTx(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
	taken, err := ds.users.EmailExists(ctx, tx, user.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.ErrDuplicateEmail
	}

	row := *user
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.CreatedAt = time.Now().UTC()
	created, err := ds.users.Create(ctx, tx, &row)
	if err != nil {
		return nil, mapDuplicateEmail(err)
	}
	return created, nil
}

func (ds *DBStore) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	user, err := ds.users.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user, nil
}

func (ds *DBStore) CreateUserWithProgress(ctx context.Context, user *types.User) (*types.User, *types.UserProgress, error) {
	var (
		createdUser     *types.User
		createdProgress *types.UserProgress
	)
	err := ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := ds.createUserTx(ctx, tx, user)
		if err != nil {
			return err
		}
		p, err := ds.progress.Create(ctx, tx, &types.UserProgress{
			ID:           uuid.New(),
			UserID:       u.ID,
			CurrentPhase: phase.Registered,
		})
		if err != nil {
			return err
		}
		createdUser, createdProgress = u, p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return createdUser, createdProgress, nil
}

func (ds *DBStore) CreateUserProgress(ctx context.Context, progress *types.UserProgress) (*types.UserProgress, error) {
	exists, err := ds.users.Exists(ctx, nil, progress.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrReferentialIntegrity
	}

	row := *progress
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return ds.progress.Create(ctx, nil, &row)
}

func (ds *DBStore) GetUserProgress(ctx context.Context, userID uuid.UUID) (*types.UserProgress, error) {
	progress, err := ds.progress.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return progress, nil
}

func (ds *DBStore) UpdateUserProgress(ctx context.Context, userID uuid.UUID, patch types.ProgressPatch) (*types.UserProgress, error) {
	var updated *types.UserProgress
	err := ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := ds.progress.GetByUserID(ctx, tx, userID)
		if err != nil {
			return mapNotFound(err)
		}
		if err := phase.CheckUpdate(*current, patch); err != nil {
			return err
		}
		patch.Apply(current)
		updated, err = ds.progress.Save(ctx, tx, current)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (ds *DBStore) SeedRoles(ctx context.Context, roles []types.Role) error {
	return ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := ds.roles.Count(ctx, tx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		rows := make([]types.Role, len(roles))
		for i, role := range roles {
			if role.ID == uuid.Nil {
				role.ID = uuid.New()
			}
			rows[i] = role
		}
		if err := ds.roles.CreateAll(ctx, tx, rows); err != nil {
			return err
		}
		ds.log.Info("Seeded role catalog", "count", len(rows))
		return nil
	})
}

func (ds *DBStore) GetRoles(ctx context.Context) ([]types.Role, error) {
	return ds.roles.List(ctx, nil)
}

func (ds *DBStore) GetRole(ctx context.Context, id uuid.UUID) (*types.Role, error) {
	role, err := ds.roles.GetByID(ctx, nil, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return role, nil
}

func (ds *DBStore) GetUserRoles(ctx context.Context, userID uuid.UUID) ([]types.UserRoleWithRole, error) {
	links, err := ds.userRoles.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}

	roleIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		roleIDs = append(roleIDs, link.RoleID)
	}
	roleRows, err := ds.roles.GetByIDs(ctx, nil, roleIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]types.Role, len(roleRows))
	for _, role := range roleRows {
		byID[role.ID] = role
	}

	out := make([]types.UserRoleWithRole, 0, len(links))
	for _, link := range links {
		out = append(out, types.UserRoleWithRole{UserRole: link, Role: byID[link.RoleID]})
	}
	// Catalog order, matching the in-memory store.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Role.SortOrder < out[j].Role.SortOrder
	})
	return out, nil
}

func (ds *DBStore) AddUserRole(ctx context.Context, userID, roleID uuid.UUID, isShortlisted bool) (*types.UserRole, error) {
	var out *types.UserRole
	err := ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ds.checkUserAndRole(ctx, tx, userID, roleID); err != nil {
			return err
		}

		existing, err := ds.userRoles.GetPair(ctx, tx, userID, roleID)
		switch {
		case err == nil:
			existing.IsShortlisted = isShortlisted
			out, err = ds.userRoles.Save(ctx, tx, existing)
			return err
		case errors.Is(err, gorm.ErrRecordNotFound):
			out, err = ds.userRoles.Create(ctx, tx, &types.UserRole{
				ID:            uuid.New(),
				UserID:        userID,
				RoleID:        roleID,
				IsShortlisted: isShortlisted,
			})
			return err
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (ds *DBStore) UpdateUserRole(ctx context.Context, userID, roleID uuid.UUID, patch types.UserRolePatch) (*types.UserRole, error) {
	var out *types.UserRole
	err := ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := ds.userRoles.GetPair(ctx, tx, userID, roleID)
		if err != nil {
			return mapNotFound(err)
		}
		patch.Apply(existing)
		out, err = ds.userRoles.Save(ctx, tx, existing)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (ds *DBStore) GetUserApplications(ctx context.Context, userID uuid.UUID) ([]types.ApplicationWithRole, error) {
	apps, err := ds.applications.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, nil
	}

	roleIDs := make([]uuid.UUID, 0, len(apps))
	for _, app := range apps {
		roleIDs = append(roleIDs, app.RoleID)
	}
	roleRows, err := ds.roles.GetByIDs(ctx, nil, roleIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]types.Role, len(roleRows))
	for _, role := range roleRows {
		byID[role.ID] = role
	}

	out := make([]types.ApplicationWithRole, 0, len(apps))
	for _, app := range apps {
		out = append(out, types.ApplicationWithRole{Application: app, Role: byID[app.RoleID]})
	}
	return out, nil
}

func (ds *DBStore) CreateApplication(ctx context.Context, app *types.Application) (*types.Application, error) {
	var out *types.Application
	err := ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ds.checkUserAndRole(ctx, tx, app.UserID, app.RoleID); err != nil {
			return err
		}
		row := *app
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		row.SubmittedAt = time.Now().UTC()
		var err error
		out, err = ds.applications.Create(ctx, tx, &row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (ds *DBStore) UpdateApplication(ctx context.Context, id uuid.UUID, patch types.ApplicationPatch) (*types.Application, error) {
	var out *types.Application
	err := ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := ds.applications.GetByID(ctx, tx, id)
		if err != nil {
			return mapNotFound(err)
		}
		submittedAt := existing.SubmittedAt
		patch.Apply(existing)
		existing.SubmittedAt = submittedAt
		out, err = ds.applications.Save(ctx, tx, existing)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (ds *DBStore) AddConfidenceEntry(ctx context.Context, entry *types.ConfidenceEntry) (*types.ConfidenceEntry, error) {
	exists, err := ds.users.Exists(ctx, nil, entry.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrReferentialIntegrity
	}

	row := *entry
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.RecordedAt = time.Now().UTC()
	return ds.confidence.Create(ctx, nil, &row)
}

func (ds *DBStore) GetUserConfidenceHistory(ctx context.Context, userID uuid.UUID) ([]types.ConfidenceEntry, error) {
	return ds.confidence.ListByUser(ctx, nil, userID)
}

func (ds *DBStore) AddToWaitlist(ctx context.Context, entry *types.WaitlistEntry) (*types.WaitlistEntry, error) {
	row := *entry
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.CreatedAt = time.Now().UTC()
	return ds.waitlist.Create(ctx, nil, &row)
}

func (ds *DBStore) checkUserAndRole(ctx context.Context, tx *gorm.DB, userID, roleID uuid.UUID) error {
	userExists, err := ds.users.Exists(ctx, tx, userID)
	if err != nil {
		return err
	}
	if !userExists {
		return errs.ErrReferentialIntegrity
	}
	roleExists, err := ds.roles.Exists(ctx, tx, roleID)
	if err != nil {
		return err
	}
	if !roleExists {
		return errs.ErrReferentialIntegrity
	}
	return nil
}
