package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type ConfidenceEntryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entry *types.ConfidenceEntry) (*types.ConfidenceEntry, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.ConfidenceEntry, error)
}

type confidenceEntryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConfidenceEntryRepo(db *gorm.DB, baseLog *logger.Logger) ConfidenceEntryRepo {
	repoLog := baseLog.With("repo", "ConfidenceEntryRepo")
	return &confidenceEntryRepo{db: db, log: repoLog}
}

func (cr *confidenceEntryRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.ConfidenceEntry) (*types.ConfidenceEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (cr *confidenceEntryRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.ConfidenceEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []types.ConfidenceEntry
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
