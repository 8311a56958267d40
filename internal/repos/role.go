package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type RoleRepo interface {
	CreateAll(ctx context.Context, tx *gorm.DB, roles []types.Role) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	List(ctx context.Context, tx *gorm.DB) ([]types.Role, error)
	GetByID(ctx context.Context, tx *gorm.DB, roleID uuid.UUID) (*types.Role, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, roleIDs []uuid.UUID) ([]types.Role, error)
	Exists(ctx context.Context, tx *gorm.DB, roleID uuid.UUID) (bool, error)
}

type roleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoleRepo(db *gorm.DB, baseLog *logger.Logger) RoleRepo {
	repoLog := baseLog.With("repo", "RoleRepo")
	return &roleRepo{db: db, log: repoLog}
}

func (rr *roleRepo) CreateAll(ctx context.Context, tx *gorm.DB, roles []types.Role) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if len(roles) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&roles).Error
}

func (rr *roleRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Role{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (rr *roleRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Role, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []types.Role
	if err := transaction.WithContext(ctx).
		Order("sort_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *roleRepo) GetByID(ctx context.Context, tx *gorm.DB, roleID uuid.UUID) (*types.Role, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var result types.Role
	if err := transaction.WithContext(ctx).
		Where("id = ?", roleID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (rr *roleRepo) GetByIDs(ctx context.Context, tx *gorm.DB, roleIDs []uuid.UUID) ([]types.Role, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []types.Role
	if len(roleIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", roleIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *roleRepo) Exists(ctx context.Context, tx *gorm.DB, roleID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Role{}).
		Where("id = ?", roleID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
