package leaderboardservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/progression/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)
	return service, repo
}

func TestService_GetLeaderboard(t *testing.T) {
	ctx := context.Background()
	board := []domain.LeaderboardRow{
		{UserID: 1, Login: "first", Level: 3, XP: 2400, Score: 2400},
		{UserID: 2, Login: "second", Level: 2, XP: 1100, Score: 1100},
	}

	tests := []struct {
		name        string
		period      domain.Period
		prepareMock func(repo *MockRepo)
		expectedErr error
	}{
		{
			name:   "all time ranks by xp",
			period: domain.PeriodAllTime,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopByXP(ctx, boardSize).Return(board, nil)
			},
		},
		{
			name:   "weekly ranks by recent activity",
			period: domain.PeriodWeekly,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().
					TopActive(ctx, gomock.AssignableToTypeOf(time.Time{}), boardSize).
					DoAndReturn(func(_ context.Context, since time.Time, _ int) ([]domain.LeaderboardRow, error) {
						assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), since, time.Minute)
						return board, nil
					})
			},
		},
		{
			name:   "monthly ranks by recent activity",
			period: domain.PeriodMonthly,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().
					TopActive(ctx, gomock.AssignableToTypeOf(time.Time{}), boardSize).
					DoAndReturn(func(_ context.Context, since time.Time, _ int) ([]domain.LeaderboardRow, error) {
						assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), since, time.Minute)
						return board, nil
					})
			},
		},
		{
			name:        "unknown period",
			period:      domain.Period("yearly"),
			prepareMock: func(repo *MockRepo) {},
			expectedErr: ErrInvalidPeriod,
		},
		{
			name:   "query fails",
			period: domain.PeriodAllTime,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopByXP(ctx, boardSize).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			got, err := service.GetLeaderboard(ctx, tt.period)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, board, got)
			}
		})
	}
}
