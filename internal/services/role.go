package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/storage"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type RoleService interface {
	List(ctx context.Context) ([]types.Role, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Role, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]types.UserRoleWithRole, error)
	// Link upserts the (user, role) pair; relinking an already linked
	// role overwrites its shortlist flag instead of duplicating the row.
	Link(ctx context.Context, userID, roleID uuid.UUID, isShortlisted bool) (*types.UserRole, error)
	UpdateLink(ctx context.Context, userID, roleID uuid.UUID, patch types.UserRolePatch) (*types.UserRole, error)
}

type roleService struct {
	store storage.Store
	log   *logger.Logger
}

func NewRoleService(store storage.Store, log *logger.Logger) RoleService {
	serviceLog := log.With("service", "RoleService")
	return &roleService{store: store, log: serviceLog}
}

func (rs *roleService) List(ctx context.Context) ([]types.Role, error) {
	return rs.store.GetRoles(ctx)
}

func (rs *roleService) Get(ctx context.Context, id uuid.UUID) (*types.Role, error) {
	return rs.store.GetRole(ctx, id)
}

func (rs *roleService) ListForUser(ctx context.Context, userID uuid.UUID) ([]types.UserRoleWithRole, error) {
	return rs.store.GetUserRoles(ctx, userID)
}

func (rs *roleService) Link(ctx context.Context, userID, roleID uuid.UUID, isShortlisted bool) (*types.UserRole, error) {
	return rs.store.AddUserRole(ctx, userID, roleID, isShortlisted)
}

func (rs *roleService) UpdateLink(ctx context.Context, userID, roleID uuid.UUID, patch types.UserRolePatch) (*types.UserRole, error) {
	return rs.store.UpdateUserRole(ctx, userID, roleID, patch)
}
