package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type WaitlistEntryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entry *types.WaitlistEntry) (*types.WaitlistEntry, error)
}

type waitlistEntryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWaitlistEntryRepo(db *gorm.DB, baseLog *logger.Logger) WaitlistEntryRepo {
	repoLog := baseLog.With("repo", "WaitlistEntryRepo")
	return &waitlistEntryRepo{db: db, log: repoLog}
}

func (wr *waitlistEntryRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.WaitlistEntry) (*types.WaitlistEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
