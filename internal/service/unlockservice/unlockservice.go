package unlockservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/service/metricservice"
	"github.com/campushub/progression/internal/service/rewardservice"
	"go.uber.org/zap"
)

type Metrics interface {
	ComputeMetric(ctx context.Context, userID int, metric domain.Metric, period domain.Period) (int, error)
}

type Rewards interface {
	GrantRewards(ctx context.Context, userID int, reward rewardservice.Reward, reference string) (*rewardservice.GrantResult, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.User, error)
	TouchActivity(ctx context.Context, userID int, at time.Time) error
	UpdateStreak(ctx context.Context, userID, days int) error
}

type AchievementRepo interface {
	ListAll(ctx context.Context) ([]domain.Achievement, error)
	ListLockedForUser(ctx context.Context, userID int) ([]domain.Achievement, error)
}

type UnlockRepo interface {
	CreateUnlock(ctx context.Context, unlock *domain.Unlock) (*domain.Unlock, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Unlock, error)
}

type ActivityRepo interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
}

type Service struct {
	metrics          Metrics
	rewards          Rewards
	userRepo         UserRepo
	achievementRepo  AchievementRepo
	unlockRepo       UnlockRepo
	activityRepo     ActivityRepo
	notificationRepo NotificationRepo
}

func New(
	metrics Metrics,
	rewards Rewards,
	userRepo UserRepo,
	achievementRepo AchievementRepo,
	unlockRepo UnlockRepo,
	activityRepo ActivityRepo,
	notificationRepo NotificationRepo,
) *Service {
	return &Service{
		metrics:          metrics,
		rewards:          rewards,
		userRepo:         userRepo,
		achievementRepo:  achievementRepo,
		unlockRepo:       unlockRepo,
		activityRepo:     activityRepo,
		notificationRepo: notificationRepo,
	}
}

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyUnlocked marks a unique violation on the unlock insert: a
	// concurrent invocation unlocked the achievement first.
	ErrAlreadyUnlocked = errors.New("achievement already unlocked")
)

// CheckAndUnlock evaluates every achievement the user has not unlocked yet
// and unlocks the eligible ones. Each achievement is processed inside its
// own error boundary: a failing catalog entry is skipped for this run and
// picked up again on the next invocation. Only a missing user aborts the
// whole call.
func (s *Service) CheckAndUnlock(ctx context.Context, userID int) ([]domain.Unlock, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't load user for unlock check", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	locked, err := s.achievementRepo.ListLockedForUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't list locked achievements", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	unlocked := make([]domain.Unlock, 0)
	for _, achievement := range locked {
		if !s.isEligible(ctx, userID, achievement) {
			continue
		}

		unlock, err := s.unlockRepo.CreateUnlock(ctx, &domain.Unlock{
			UserID:        userID,
			AchievementID: achievement.ID,
			UnlockedAt:    time.Now(),
		})
		if err != nil {
			if errors.Is(err, ErrAlreadyUnlocked) {
				zap.L().Info("achievement unlocked concurrently, skipping",
					zap.Int("userID", userID), zap.String("code", achievement.Code))
				continue
			}
			zap.L().Error("can't create unlock",
				zap.Int("userID", userID), zap.String("code", achievement.Code), zap.Error(err))
			continue
		}

		reward := rewardservice.Reward{Coins: achievement.RewardCoins, XP: achievement.RewardXP}
		if _, err := s.rewards.GrantRewards(ctx, userID, reward, achievement.Code); err != nil {
			zap.L().Error("can't grant achievement reward",
				zap.Int("userID", userID), zap.String("code", achievement.Code), zap.Error(err))
			continue
		}

		s.notifyUnlocked(ctx, userID, achievement)
		unlocked = append(unlocked, *unlock)
	}

	return unlocked, nil
}

// isEligible compares the metric's current value against the achievement
// threshold, inclusively. Any failure counts as not eligible for this run
// only; the achievement stays in the catalog for future evaluations.
func (s *Service) isEligible(ctx context.Context, userID int, achievement domain.Achievement) bool {
	value, err := s.metrics.ComputeMetric(ctx, userID, achievement.Metric, achievement.Period)
	if err != nil {
		if errors.Is(err, metricservice.ErrInvalidMetric) {
			zap.L().Warn("achievement references unknown metric",
				zap.String("code", achievement.Code), zap.String("metric", string(achievement.Metric)))
			return false
		}
		zap.L().Error("metric computation failed, treating as not eligible",
			zap.String("code", achievement.Code), zap.Error(err))
		return false
	}
	return value >= achievement.Threshold
}

func (s *Service) notifyUnlocked(ctx context.Context, userID int, achievement domain.Achievement) {
	metadata, _ := json.Marshal(map[string]any{
		"achievement_id": achievement.ID,
		"code":           achievement.Code,
		"rarity":         achievement.Rarity,
		"reward_coins":   achievement.RewardCoins,
		"reward_xp":      achievement.RewardXP,
	})
	notification := &domain.Notification{
		UserID:    userID,
		Type:      "achievement_unlocked",
		Title:     fmt.Sprintf("Achievement unlocked: %s", achievement.Name),
		Message:   achievement.Description,
		Metadata:  string(metadata),
		CreatedAt: time.Now(),
	}
	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		zap.L().Error("failed to create unlock notification",
			zap.Int("userID", userID), zap.String("code", achievement.Code), zap.Error(err))
	}
}

// RecordActivity stores an activity event reported by a platform surface,
// refreshes the user's activity bookkeeping and immediately re-evaluates
// achievements.
func (s *Service) RecordActivity(ctx context.Context, userID int, activityType, surface, metadata string) ([]domain.Unlock, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	if metadata == "" {
		metadata = "{}"
	}
	_, err = s.activityRepo.Create(ctx, &domain.Activity{
		UserID:    userID,
		Type:      activityType,
		Surface:   surface,
		Metadata:  metadata,
		CreatedAt: now,
	})
	if err != nil {
		zap.L().Error("can't record activity", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	if err := s.userRepo.TouchActivity(ctx, userID, now); err != nil {
		zap.L().Error("can't update last activity", zap.Int("userID", userID), zap.Error(err))
	}
	if streak, err := s.metrics.ComputeMetric(ctx, userID, domain.MetricStreakDays, domain.PeriodAllTime); err == nil {
		if err := s.userRepo.UpdateStreak(ctx, userID, streak); err != nil {
			zap.L().Error("can't update streak", zap.Int("userID", userID), zap.Error(err))
		}
	}

	return s.CheckAndUnlock(ctx, userID)
}

// AchievementStatus is a catalog entry joined with the user's unlock state.
type AchievementStatus struct {
	Achievement domain.Achievement
	Unlocked    bool
	UnlockedAt  *time.Time
}

func (s *Service) ListAchievements(ctx context.Context, userID int) ([]AchievementStatus, error) {
	catalog, err := s.achievementRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list achievement catalog", zap.Error(err))
		return nil, err
	}
	unlocks, err := s.unlockRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list user unlocks", zap.Error(err))
		return nil, err
	}

	unlockedAt := make(map[int]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	statuses := make([]AchievementStatus, 0, len(catalog))
	for _, a := range catalog {
		status := AchievementStatus{Achievement: a}
		if at, ok := unlockedAt[a.ID]; ok {
			status.Unlocked = true
			at := at
			status.UnlockedAt = &at
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
