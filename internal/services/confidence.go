package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/storage"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type ConfidenceService interface {
	Add(ctx context.Context, userID uuid.UUID, level int) (*types.ConfidenceEntry, error)
	History(ctx context.Context, userID uuid.UUID) ([]types.ConfidenceEntry, error)
}

type confidenceService struct {
	store storage.Store
	log   *logger.Logger
}

func NewConfidenceService(store storage.Store, log *logger.Logger) ConfidenceService {
	serviceLog := log.With("service", "ConfidenceService")
	return &confidenceService{store: store, log: serviceLog}
}

func (cs *confidenceService) Add(ctx context.Context, userID uuid.UUID, level int) (*types.ConfidenceEntry, error) {
	if userID == uuid.Nil {
		return nil, errs.Invalidf("user_id required")
	}
	if level < 0 || level > 100 {
		return nil, errs.Invalidf("confidence_level must be between 0 and 100, got %d", level)
	}
	return cs.store.AddConfidenceEntry(ctx, &types.ConfidenceEntry{
		UserID:          userID,
		ConfidenceLevel: level,
	})
}

func (cs *confidenceService) History(ctx context.Context, userID uuid.UUID) ([]types.ConfidenceEntry, error) {
	return cs.store.GetUserConfidenceHistory(ctx, userID)
}
