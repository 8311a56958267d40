package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/storage"
	"github.com/yungbote/careerpath-backend/internal/types"
)

func TestConfidenceServiceRejectsOutOfRangeLevels(t *testing.T) {
	log := newTestLogger(t)
	svc := NewConfidenceService(storage.NewMemStore(log), log)

	for _, level := range []int{-1, 101} {
		_, err := svc.Add(context.Background(), uuid.New(), level)
		if !errs.IsValidation(err) {
			t.Fatalf("Add(%d): want validation error, got %v", level, err)
		}
	}
	if _, err := svc.Add(context.Background(), uuid.Nil, 50); !errs.IsValidation(err) {
		t.Fatalf("Add: want validation error for nil user id")
	}
}

func TestConfidenceServiceRecordsHistory(t *testing.T) {
	log := newTestLogger(t)
	store := storage.NewMemStore(log)
	svc := NewConfidenceService(store, log)
	ctx := context.Background()

	user, _, err := store.CreateUserWithProgress(ctx, &types.User{Email: "conf@example.com"})
	if err != nil {
		t.Fatalf("CreateUserWithProgress: %v", err)
	}

	if _, err := svc.Add(ctx, user.ID, 30); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, user.ID, 55); err != nil {
		t.Fatalf("Add: %v", err)
	}

	history, err := svc.History(ctx, user.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length: want=2 got=%d", len(history))
	}
	if history[0].ConfidenceLevel != 30 || history[1].ConfidenceLevel != 55 {
		t.Fatalf("history out of order: got=%d,%d", history[0].ConfidenceLevel, history[1].ConfidenceLevel)
	}
}
