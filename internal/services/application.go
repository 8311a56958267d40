package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/storage"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type ApplicationService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]types.ApplicationWithRole, error)
	Create(ctx context.Context, app *types.Application) (*types.Application, error)
	Update(ctx context.Context, id uuid.UUID, patch types.ApplicationPatch) (*types.Application, error)
}

type applicationService struct {
	store storage.Store
	log   *logger.Logger
}

func NewApplicationService(store storage.Store, log *logger.Logger) ApplicationService {
	serviceLog := log.With("service", "ApplicationService")
	return &applicationService{store: store, log: serviceLog}
}

func (as *applicationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]types.ApplicationWithRole, error) {
	return as.store.GetUserApplications(ctx, userID)
}

func (as *applicationService) Create(ctx context.Context, app *types.Application) (*types.Application, error) {
	if app.UserID == uuid.Nil {
		return nil, errs.Invalidf("user_id required")
	}
	if app.RoleID == uuid.Nil {
		return nil, errs.Invalidf("role_id required")
	}
	if !types.ValidApplicationStatus(app.Status) {
		return nil, errs.Invalidf("invalid application status %q", app.Status)
	}
	if app.Method != "" && !types.ValidApplicationMethod(app.Method) {
		return nil, errs.Invalidf("invalid application method %q", app.Method)
	}

	created, err := as.store.CreateApplication(ctx, app)
	if err != nil {
		return nil, err
	}
	as.log.Info("Application submitted", "user_id", created.UserID, "role_id", created.RoleID, "method", created.Method)
	return created, nil
}

func (as *applicationService) Update(ctx context.Context, id uuid.UUID, patch types.ApplicationPatch) (*types.Application, error) {
	if patch.Status != nil && !types.ValidApplicationStatus(*patch.Status) {
		return nil, errs.Invalidf("invalid application status %q", *patch.Status)
	}
	if patch.Method != nil && *patch.Method != "" && !types.ValidApplicationMethod(*patch.Method) {
		return nil, errs.Invalidf("invalid application method %q", *patch.Method)
	}
	return as.store.UpdateApplication(ctx, id, patch)
}
