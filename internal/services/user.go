package services

import (
	"context"
	"net/mail"
	"strings"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/storage"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type UserService interface {
	// Register creates the user together with its initial progress record
	// as one atomic onboarding step.
	Register(ctx context.Context, email, whatsapp string) (*types.User, *types.UserProgress, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
}

type userService struct {
	store storage.Store
	log   *logger.Logger
}

func NewUserService(store storage.Store, log *logger.Logger) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{store: store, log: serviceLog}
}

func (us *userService) Register(ctx context.Context, email, whatsapp string) (*types.User, *types.UserProgress, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, nil, err
	}

	user, progress, err := us.store.CreateUserWithProgress(ctx, &types.User{
		Email:    email,
		Whatsapp: strings.TrimSpace(whatsapp),
	})
	if err != nil {
		return nil, nil, err
	}
	us.log.Info("Registered user", "email", user.Email, "user_id", user.ID)
	return user, progress, nil
}

func (us *userService) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return us.store.GetUserByEmail(ctx, email)
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.Invalidf("email required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", errs.Invalidf("invalid email %q", email)
	}
	return email, nil
}
