package leaderboardservice

import (
	"context"
	"errors"
	"time"

	"github.com/campushub/progression/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	TopByXP(ctx context.Context, limit int) ([]domain.LeaderboardRow, error)
	TopActive(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardRow, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrInvalidPeriod = errors.New("invalid leaderboard period")

const boardSize = 50

// GetLeaderboard ranks users for the requested period. The all-time board
// orders by total XP; period boards order by activity volume inside the
// rolling window.
func (s *Service) GetLeaderboard(ctx context.Context, period domain.Period) ([]domain.LeaderboardRow, error) {
	var board []domain.LeaderboardRow
	var err error

	switch period {
	case domain.PeriodAllTime:
		board, err = s.repo.TopByXP(ctx, boardSize)
	case domain.PeriodWeekly:
		board, err = s.repo.TopActive(ctx, time.Now().AddDate(0, 0, -7), boardSize)
	case domain.PeriodMonthly:
		board, err = s.repo.TopActive(ctx, time.Now().AddDate(0, 0, -30), boardSize)
	default:
		return nil, ErrInvalidPeriod
	}
	if err != nil {
		zap.L().Error("failed to get leaderboard", zap.Error(err))
		return nil, err
	}
	return board, nil
}
