package metricservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/progression/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockActivityRepo, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := NewMockUserRepo(ctrl)
	activityRepo := NewMockActivityRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	service := New(userRepo, activityRepo, ledgerRepo)
	return service, userRepo, activityRepo, ledgerRepo
}

func TestService_ComputeMetric(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 1, Login: "student"}

	tests := []struct {
		name        string
		metric      domain.Metric
		period      domain.Period
		prepareMock func(userRepo *MockUserRepo, activityRepo *MockActivityRepo, ledgerRepo *MockLedgerRepo)
		expected    int
		expectedErr error
	}{
		{
			name:   "posts created all time",
			metric: domain.MetricPostsCreated,
			period: domain.PeriodAllTime,
			prepareMock: func(userRepo *MockUserRepo, activityRepo *MockActivityRepo, ledgerRepo *MockLedgerRepo) {
				userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				activityRepo.EXPECT().
					CountByTypes(ctx, 1, []string{ActivityPostCreated}, nil).
					Return(42, nil)
			},
			expected: 42,
		},
		{
			name:   "answers given weekly",
			metric: domain.MetricAnswersGiven,
			period: domain.PeriodWeekly,
			prepareMock: func(userRepo *MockUserRepo, activityRepo *MockActivityRepo, ledgerRepo *MockLedgerRepo) {
				userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				activityRepo.EXPECT().
					CountByTypes(ctx, 1, []string{ActivityAnswerGiven}, gomock.Not(gomock.Nil())).
					Return(3, nil)
			},
			expected: 3,
		},
		{
			name:   "coins earned",
			metric: domain.MetricCoinsEarned,
			period: domain.PeriodAllTime,
			prepareMock: func(userRepo *MockUserRepo, activityRepo *MockActivityRepo, ledgerRepo *MockLedgerRepo) {
				userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				ledgerRepo.EXPECT().SumEarned(ctx, 1, nil).Return(250, nil)
			},
			expected: 250,
		},
		{
			name:   "surfaces used monthly",
			metric: domain.MetricSurfacesUsed,
			period: domain.PeriodMonthly,
			prepareMock: func(userRepo *MockUserRepo, activityRepo *MockActivityRepo, ledgerRepo *MockLedgerRepo) {
				userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				activityRepo.EXPECT().
					CountDistinctSurfaces(ctx, 1, gomock.Not(gomock.Nil())).
					Return(4, nil)
			},
			expected: 4,
		},
		{
			name:   "unknown metric",
			metric: domain.Metric("reputation"),
			period: domain.PeriodAllTime,
			prepareMock: func(userRepo *MockUserRepo, activityRepo *MockActivityRepo, ledgerRepo *MockLedgerRepo) {
				userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
			},
			expectedErr: ErrInvalidMetric,
		},
		{
			name:   "user not found",
			metric: domain.MetricPostsCreated,
			period: domain.PeriodAllTime,
			prepareMock: func(userRepo *MockUserRepo, activityRepo *MockActivityRepo, ledgerRepo *MockLedgerRepo) {
				userRepo.EXPECT().GetByID(ctx, 1).Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:   "user lookup fails",
			metric: domain.MetricPostsCreated,
			period: domain.PeriodAllTime,
			prepareMock: func(userRepo *MockUserRepo, activityRepo *MockActivityRepo, ledgerRepo *MockLedgerRepo) {
				userRepo.EXPECT().GetByID(ctx, 1).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, activityRepo, ledgerRepo := NewMock(t)
			tt.prepareMock(userRepo, activityRepo, ledgerRepo)

			value, err := service.ComputeMetric(ctx, 1, tt.metric, tt.period)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}

func TestService_ComputeMetric_DailyWindow(t *testing.T) {
	ctx := context.Background()
	service, userRepo, activityRepo, _ := NewMock(t)

	userRepo.EXPECT().GetByID(ctx, 1).Return(&domain.User{ID: 1}, nil)
	activityRepo.EXPECT().
		CountByTypes(ctx, 1, []string{ActivityPostCreated}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ []string, since *time.Time) (int, error) {
			assert.NotNil(t, since)
			assert.WithinDuration(t, time.Now().AddDate(0, 0, -1), *since, time.Minute)
			return 2, nil
		})

	value, err := service.ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodDaily)
	assert.NoError(t, err)
	assert.Equal(t, 2, value)
}

func TestService_ComputeMetric_Streak(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name     string
		times    []time.Time
		expected int
	}{
		{
			name: "three consecutive days",
			times: []time.Time{
				now,
				now.AddDate(0, 0, -1),
				now.AddDate(0, 0, -1).Add(-time.Hour),
				now.AddDate(0, 0, -2),
			},
			expected: 3,
		},
		{
			name: "gap resets streak",
			times: []time.Time{
				now,
				now.AddDate(0, 0, -2),
				now.AddDate(0, 0, -3),
			},
			expected: 1,
		},
		{
			name:     "no activity today",
			times:    []time.Time{now.AddDate(0, 0, -1)},
			expected: 0,
		},
		{
			name:     "no activity at all",
			times:    nil,
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, activityRepo, _ := NewMock(t)
			userRepo.EXPECT().GetByID(ctx, 1).Return(&domain.User{ID: 1}, nil)
			activityRepo.EXPECT().RecentTimes(ctx, 1, streakSampleSize).Return(tt.times, nil)

			value, err := service.ComputeMetric(ctx, 1, domain.MetricStreakDays, domain.PeriodAllTime)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestService_ComputeMetric_ProfileCompleteness(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		user     *domain.User
		expected int
	}{
		{
			name:     "empty profile",
			user:     &domain.User{ID: 1},
			expected: 0,
		},
		{
			name: "half filled",
			user: &domain.User{
				ID:          1,
				DisplayName: "Alex",
				AvatarURL:   "https://cdn.example.org/a.png",
				Bio:         "CS student",
			},
			expected: 50,
		},
		{
			name: "full profile",
			user: &domain.User{
				ID:          1,
				DisplayName: "Alex",
				AvatarURL:   "https://cdn.example.org/a.png",
				Bio:         "CS student",
				Major:       "Computer Science",
				Institution: "State University",
				Semester:    "4",
			},
			expected: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _, _ := NewMock(t)
			userRepo.EXPECT().GetByID(ctx, 1).Return(tt.user, nil)

			value, err := service.ComputeMetric(ctx, 1, domain.MetricProfileCompleteness, domain.PeriodAllTime)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}
