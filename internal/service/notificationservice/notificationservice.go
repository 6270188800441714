package notificationservice

import (
	"context"

	"github.com/campushub/progression/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	ListByUserID(ctx context.Context, userID, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

const listLimit = 50

func (s *Service) List(ctx context.Context, userID int) ([]domain.Notification, error) {
	notifications, err := s.repo.ListByUserID(ctx, userID, listLimit)
	if err != nil {
		zap.L().Error("failed to list notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID int) error {
	if err := s.repo.MarkRead(ctx, userID, notificationID); err != nil {
		zap.L().Error("failed to mark notification read", zap.Error(err))
		return err
	}
	return nil
}
