package rewardservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.User, error)
	IncrementBalances(ctx context.Context, userID, coins, xp int) (*domain.User, error)
	UpdateLevel(ctx context.Context, userID, level int) error
}

type LedgerRepo interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	GetHistoryByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
	SumEarned(ctx context.Context, userID int, since *time.Time) (int, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
}

type Service struct {
	userRepo         UserRepo
	ledgerRepo       LedgerRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager
}

func New(userRepo UserRepo, ledgerRepo LedgerRepo, notificationRepo NotificationRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:         userRepo,
		ledgerRepo:       ledgerRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

var ErrUserNotFound = errors.New("user not found")

// xpPerLevel is the canonical progression curve: level = xp/1000 + 1.
const xpPerLevel = 1000

func LevelForXP(xp int) int {
	return xp/xpPerLevel + 1
}

// XPToNextLevel returns how much XP the user still needs for the next level.
func XPToNextLevel(xp int) int {
	return LevelForXP(xp)*xpPerLevel - xp
}

type Reward struct {
	Coins int
	XP    int
}

type GrantResult struct {
	XP        int
	Level     int
	LeveledUp bool
}

// GrantRewards credits the reward to the user. The balance increment, the
// ledger entry and the conditional level write happen in one transaction so
// concurrent grants can neither lose updates nor observe a stale level.
func (s *Service) GrantRewards(ctx context.Context, userID int, reward Reward, reference string) (*GrantResult, error) {
	if reward.Coins == 0 && reward.XP == 0 {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		return &GrantResult{XP: user.XP, Level: user.Level}, nil
	}

	var result GrantResult
	var oldLevel int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.IncrementBalances(ctx, userID, reward.Coins, reward.XP)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		oldLevel = user.Level
		result.XP = user.XP
		result.Level = user.Level

		if newLevel := LevelForXP(user.XP); newLevel > user.Level {
			if err := s.userRepo.UpdateLevel(ctx, userID, newLevel); err != nil {
				return err
			}
			result.Level = newLevel
			result.LeveledUp = true
		}

		if reward.Coins > 0 {
			entry := &domain.LedgerEntry{
				UserID:    userID,
				Amount:    reward.Coins,
				Reason:    "achievement_reward",
				Reference: reference,
				CreatedAt: time.Now(),
			}
			if _, err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to grant rewards", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	if result.LeveledUp {
		s.notifyLevelUp(ctx, userID, oldLevel, result.Level)
	}

	return &result, nil
}

// notifyLevelUp is best-effort: a failed notification must not undo an
// already committed grant.
func (s *Service) notifyLevelUp(ctx context.Context, userID, oldLevel, newLevel int) {
	metadata, _ := json.Marshal(map[string]int{
		"old_level": oldLevel,
		"new_level": newLevel,
	})
	notification := &domain.Notification{
		UserID:    userID,
		Type:      "level_up",
		Title:     fmt.Sprintf("Level %d reached!", newLevel),
		Message:   fmt.Sprintf("You advanced from level %d to level %d.", oldLevel, newLevel),
		Metadata:  string(metadata),
		CreatedAt: time.Now(),
	}
	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		zap.L().Error("failed to create level-up notification", zap.Int("userID", userID), zap.Error(err))
	}
}

func (s *Service) GetProgression(ctx context.Context, userID int) (*domain.User, int, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get progression", zap.Error(err))
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrUserNotFound
	}
	return user, XPToNextLevel(user.XP), nil
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.User, int, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrUserNotFound
	}
	earned, err := s.ledgerRepo.SumEarned(ctx, userID, nil)
	if err != nil {
		return nil, 0, err
	}
	return user, earned, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetHistoryByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
