package services

import (
	"context"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/storage"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type WaitlistService interface {
	Add(ctx context.Context, email, waitlistType string) (*types.WaitlistEntry, error)
}

type waitlistService struct {
	store storage.Store
	log   *logger.Logger
}

func NewWaitlistService(store storage.Store, log *logger.Logger) WaitlistService {
	serviceLog := log.With("service", "WaitlistService")
	return &waitlistService{store: store, log: serviceLog}
}

func (ws *waitlistService) Add(ctx context.Context, email, waitlistType string) (*types.WaitlistEntry, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !types.ValidWaitlistType(waitlistType) {
		return nil, errs.Invalidf("invalid waitlist type %q", waitlistType)
	}

	entry, err := ws.store.AddToWaitlist(ctx, &types.WaitlistEntry{
		Email: email,
		Type:  waitlistType,
	})
	if err != nil {
		return nil, err
	}
	ws.log.Info("Waitlist signup", "email", entry.Email, "type", entry.Type)
	return entry, nil
}
