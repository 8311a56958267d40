package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/storage"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type ProgressService interface {
	Get(ctx context.Context, userID uuid.UUID) (*types.UserProgress, error)
	Update(ctx context.Context, userID uuid.UUID, patch types.ProgressPatch) (*types.UserProgress, error)
}

type progressService struct {
	store storage.Store
	log   *logger.Logger
}

func NewProgressService(store storage.Store, log *logger.Logger) ProgressService {
	serviceLog := log.With("service", "ProgressService")
	return &progressService{store: store, log: serviceLog}
}

func (ps *progressService) Get(ctx context.Context, userID uuid.UUID) (*types.UserProgress, error) {
	return ps.store.GetUserProgress(ctx, userID)
}

// Update applies a partial merge over the stored record. The phase state
// machine is enforced by the storage port itself, so both backends reject
// regressions and premature advances identically.
func (ps *progressService) Update(ctx context.Context, userID uuid.UUID, patch types.ProgressPatch) (*types.UserProgress, error) {
	updated, err := ps.store.UpdateUserProgress(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	if patch.CurrentPhase != nil {
		ps.log.Info("Progress advanced", "user_id", userID, "current_phase", updated.CurrentPhase)
	}
	return updated, nil
}
