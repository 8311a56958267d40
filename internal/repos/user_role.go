package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type UserRoleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, userRole *types.UserRole) (*types.UserRole, error)
	GetPair(ctx context.Context, tx *gorm.DB, userID, roleID uuid.UUID) (*types.UserRole, error)
	Save(ctx context.Context, tx *gorm.DB, userRole *types.UserRole) (*types.UserRole, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.UserRole, error)
}

type userRoleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRoleRepo(db *gorm.DB, baseLog *logger.Logger) UserRoleRepo {
	repoLog := baseLog.With("repo", "UserRoleRepo")
	return &userRoleRepo{db: db, log: repoLog}
}

func (ur *userRoleRepo) Create(ctx context.Context, tx *gorm.DB, userRole *types.UserRole) (*types.UserRole, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	if err := transaction.WithContext(ctx).Create(userRole).Error; err != nil {
		return nil, err
	}
	return userRole, nil
}

func (ur *userRoleRepo) GetPair(ctx context.Context, tx *gorm.DB, userID, roleID uuid.UUID) (*types.UserRole, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var result types.UserRole
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ur *userRoleRepo) Save(ctx context.Context, tx *gorm.DB, userRole *types.UserRole) (*types.UserRole, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	if err := transaction.WithContext(ctx).Save(userRole).Error; err != nil {
		return nil, err
	}
	return userRole, nil
}

func (ur *userRoleRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.UserRole, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []types.UserRole
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
