package unlockservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/service/metricservice"
	"github.com/campushub/progression/internal/service/rewardservice"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	metrics          *MockMetrics
	rewards          *MockRewards
	userRepo         *MockUserRepo
	achievementRepo  *MockAchievementRepo
	unlockRepo       *MockUnlockRepo
	activityRepo     *MockActivityRepo
	notificationRepo *MockNotificationRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &mocks{
		metrics:          NewMockMetrics(ctrl),
		rewards:          NewMockRewards(ctrl),
		userRepo:         NewMockUserRepo(ctrl),
		achievementRepo:  NewMockAchievementRepo(ctrl),
		unlockRepo:       NewMockUnlockRepo(ctrl),
		activityRepo:     NewMockActivityRepo(ctrl),
		notificationRepo: NewMockNotificationRepo(ctrl),
	}
	service := New(m.metrics, m.rewards, m.userRepo, m.achievementRepo, m.unlockRepo, m.activityRepo, m.notificationRepo)
	return service, m
}

var (
	firstPost = domain.Achievement{
		ID: 1, Code: "first_post", Name: "First Post",
		Metric: domain.MetricPostsCreated, Threshold: 1,
		RewardCoins: 10, RewardXP: 25,
	}
	noteCenturion = domain.Achievement{
		ID: 2, Code: "note_centurion", Name: "Note Centurion",
		Metric: domain.MetricPostsCreated, Threshold: 100,
		RewardCoins: 200, RewardXP: 500,
	}
)

func TestService_CheckAndUnlock(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 1, Login: "student"}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedCodes int
		expectedErr   error
	}{
		{
			name: "unlocks the eligible achievement",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return([]domain.Achievement{firstPost}, nil)
				m.metrics.EXPECT().ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodAllTime).Return(1, nil)
				m.unlockRepo.EXPECT().
					CreateUnlock(ctx, gomock.Any()).
					Return(&domain.Unlock{ID: 10, UserID: 1, AchievementID: 1}, nil)
				m.rewards.EXPECT().
					GrantRewards(ctx, 1, rewardservice.Reward{Coins: 10, XP: 25}, "first_post").
					Return(&rewardservice.GrantResult{XP: 25, Level: 1}, nil)
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Notification{}, nil)
			},
			expectedCodes: 1,
		},
		{
			name: "threshold is inclusive",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return([]domain.Achievement{noteCenturion}, nil)
				m.metrics.EXPECT().ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodAllTime).Return(100, nil)
				m.unlockRepo.EXPECT().CreateUnlock(ctx, gomock.Any()).Return(&domain.Unlock{ID: 11}, nil)
				m.rewards.EXPECT().
					GrantRewards(ctx, 1, rewardservice.Reward{Coins: 200, XP: 500}, "note_centurion").
					Return(&rewardservice.GrantResult{}, nil)
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Notification{}, nil)
			},
			expectedCodes: 1,
		},
		{
			name: "one below threshold stays locked",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return([]domain.Achievement{noteCenturion}, nil)
				m.metrics.EXPECT().ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodAllTime).Return(99, nil)
			},
			expectedCodes: 0,
		},
		{
			name: "nothing left to unlock",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return([]domain.Achievement{}, nil)
			},
			expectedCodes: 0,
		},
		{
			name: "concurrent unlock is skipped without reward",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return([]domain.Achievement{firstPost}, nil)
				m.metrics.EXPECT().ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodAllTime).Return(5, nil)
				m.unlockRepo.EXPECT().CreateUnlock(ctx, gomock.Any()).Return(nil, ErrAlreadyUnlocked)
			},
			expectedCodes: 0,
		},
		{
			name: "unknown metric skips only that achievement",
			prepareMock: func(m *mocks) {
				broken := domain.Achievement{ID: 3, Code: "time_traveler", Metric: domain.Metric("naps_taken"), Threshold: 1}
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				m.achievementRepo.EXPECT().
					ListLockedForUser(ctx, 1).
					Return([]domain.Achievement{broken, firstPost}, nil)
				m.metrics.EXPECT().
					ComputeMetric(ctx, 1, domain.Metric("naps_taken"), domain.PeriodAllTime).
					Return(0, metricservice.ErrInvalidMetric)
				m.metrics.EXPECT().ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodAllTime).Return(1, nil)
				m.unlockRepo.EXPECT().CreateUnlock(ctx, gomock.Any()).Return(&domain.Unlock{ID: 12, AchievementID: 1}, nil)
				m.rewards.EXPECT().GrantRewards(ctx, 1, gomock.Any(), "first_post").Return(&rewardservice.GrantResult{}, nil)
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Notification{}, nil)
			},
			expectedCodes: 1,
		},
		{
			name: "metric failure isolates the achievement",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				m.achievementRepo.EXPECT().
					ListLockedForUser(ctx, 1).
					Return([]domain.Achievement{firstPost, noteCenturion}, nil)
				gomock.InOrder(
					m.metrics.EXPECT().
						ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodAllTime).
						Return(0, errors.New("db error")),
					m.metrics.EXPECT().
						ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodAllTime).
						Return(150, nil),
				)
				m.unlockRepo.EXPECT().CreateUnlock(ctx, gomock.Any()).Return(&domain.Unlock{ID: 13, AchievementID: 2}, nil)
				m.rewards.EXPECT().GrantRewards(ctx, 1, gomock.Any(), "note_centurion").Return(&rewardservice.GrantResult{}, nil)
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Notification{}, nil)
			},
			expectedCodes: 1,
		},
		{
			name: "reward failure keeps the rest of the run going",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				m.achievementRepo.EXPECT().
					ListLockedForUser(ctx, 1).
					Return([]domain.Achievement{firstPost, noteCenturion}, nil)
				m.metrics.EXPECT().
					ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodAllTime).
					Return(150, nil).
					Times(2)
				gomock.InOrder(
					m.unlockRepo.EXPECT().CreateUnlock(ctx, gomock.Any()).Return(&domain.Unlock{ID: 14, AchievementID: 1}, nil),
					m.unlockRepo.EXPECT().CreateUnlock(ctx, gomock.Any()).Return(&domain.Unlock{ID: 15, AchievementID: 2}, nil),
				)
				gomock.InOrder(
					m.rewards.EXPECT().GrantRewards(ctx, 1, gomock.Any(), "first_post").Return(nil, errors.New("db error")),
					m.rewards.EXPECT().GrantRewards(ctx, 1, gomock.Any(), "note_centurion").Return(&rewardservice.GrantResult{}, nil),
				)
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Notification{}, nil)
			},
			expectedCodes: 1,
		},
		{
			name: "user not found",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "catalog listing fails",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
				m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			unlocked, err := service.CheckAndUnlock(ctx, 1)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Len(t, unlocked, tt.expectedCodes)
			}
		})
	}
}

// A second evaluation sees an empty locked list and must report nothing new.
func TestService_CheckAndUnlock_Idempotent(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)
	user := &domain.User{ID: 1}

	m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil).Times(2)
	gomock.InOrder(
		m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return([]domain.Achievement{firstPost}, nil),
		m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return([]domain.Achievement{}, nil),
	)
	m.metrics.EXPECT().ComputeMetric(ctx, 1, domain.MetricPostsCreated, domain.PeriodAllTime).Return(3, nil)
	m.unlockRepo.EXPECT().CreateUnlock(ctx, gomock.Any()).Return(&domain.Unlock{ID: 10, AchievementID: 1}, nil)
	m.rewards.EXPECT().GrantRewards(ctx, 1, gomock.Any(), "first_post").Return(&rewardservice.GrantResult{}, nil)
	m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Notification{}, nil)

	first, err := service.CheckAndUnlock(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := service.CheckAndUnlock(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, second)
}

func TestService_RecordActivity(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 1}

	t.Run("records and re-evaluates", func(t *testing.T) {
		service, m := NewMock(t)

		m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil).Times(2)
		m.activityRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
				assert.Equal(t, "post_created", a.Type)
				assert.Equal(t, "notes", a.Surface)
				assert.Equal(t, "{}", a.Metadata)
				return a, nil
			})
		m.userRepo.EXPECT().TouchActivity(ctx, 1, gomock.Any()).Return(nil)
		m.metrics.EXPECT().ComputeMetric(ctx, 1, domain.MetricStreakDays, domain.PeriodAllTime).Return(4, nil)
		m.userRepo.EXPECT().UpdateStreak(ctx, 1, 4).Return(nil)
		m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return([]domain.Achievement{}, nil)

		unlocked, err := service.RecordActivity(ctx, 1, "post_created", "notes", "")
		assert.NoError(t, err)
		assert.Empty(t, unlocked)
	})

	t.Run("bookkeeping failures do not abort", func(t *testing.T) {
		service, m := NewMock(t)

		m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil).Times(2)
		m.activityRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Activity{}, nil)
		m.userRepo.EXPECT().TouchActivity(ctx, 1, gomock.Any()).Return(errors.New("db error"))
		m.metrics.EXPECT().
			ComputeMetric(ctx, 1, domain.MetricStreakDays, domain.PeriodAllTime).
			Return(0, errors.New("db error"))
		m.achievementRepo.EXPECT().ListLockedForUser(ctx, 1).Return([]domain.Achievement{}, nil)

		_, err := service.RecordActivity(ctx, 1, "answer_given", "qa", `{"question_id":7}`)
		assert.NoError(t, err)
	})

	t.Run("activity insert failure aborts", func(t *testing.T) {
		service, m := NewMock(t)

		m.userRepo.EXPECT().GetByID(ctx, 1).Return(user, nil)
		m.activityRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.RecordActivity(ctx, 1, "post_created", "notes", "")
		assert.Error(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.userRepo.EXPECT().GetByID(ctx, 1).Return(nil, nil)

		_, err := service.RecordActivity(ctx, 1, "post_created", "notes", "")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_ListAchievements(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)
	unlockedAt := time.Now().Add(-time.Hour)

	m.achievementRepo.EXPECT().ListAll(ctx).Return([]domain.Achievement{firstPost, noteCenturion}, nil)
	m.unlockRepo.EXPECT().
		ListByUserID(ctx, 1).
		Return([]domain.Unlock{{ID: 10, UserID: 1, AchievementID: 1, UnlockedAt: unlockedAt}}, nil)

	statuses, err := service.ListAchievements(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, statuses, 2)
	assert.True(t, statuses[0].Unlocked)
	assert.Equal(t, unlockedAt, *statuses[0].UnlockedAt)
	assert.False(t, statuses[1].Unlocked)
	assert.Nil(t, statuses[1].UnlockedAt)
}
