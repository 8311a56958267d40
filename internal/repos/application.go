package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type ApplicationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, app *types.Application) (*types.Application, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Application, error)
	Save(ctx context.Context, tx *gorm.DB, app *types.Application) (*types.Application, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Application, error)
}

type applicationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewApplicationRepo(db *gorm.DB, baseLog *logger.Logger) ApplicationRepo {
	repoLog := baseLog.With("repo", "ApplicationRepo")
	return &applicationRepo{db: db, log: repoLog}
}

func (ar *applicationRepo) Create(ctx context.Context, tx *gorm.DB, app *types.Application) (*types.Application, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if err := transaction.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (ar *applicationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Application, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var result types.Application
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *applicationRepo) Save(ctx context.Context, tx *gorm.DB, app *types.Application) (*types.Application, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if err := transaction.WithContext(ctx).Save(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (ar *applicationRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Application, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []types.Application
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
