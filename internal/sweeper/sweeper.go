// Package sweeper periodically re-evaluates achievements for recently
// active users. It catches unlocks whose qualifying activity arrived
// through paths that never trigger the inline check, such as admin edits
// or bulk imports.
package sweeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/campushub/progression/internal/config"
	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var sweepingUsers sync.Map

type UnlockService interface {
	CheckAndUnlock(ctx context.Context, userID int) ([]domain.Unlock, error)
}

type ActivityRepo interface {
	ListActiveUserIDs(ctx context.Context, since time.Time, limit int) ([]int, error)
}

// UnlockEvent is the payload pushed to the notification gateway for each
// user that gained unlocks during a sweep.
type UnlockEvent struct {
	UserID   int             `json:"user_id"`
	Unlocked []domain.Unlock `json:"unlocked"`
}

type Service struct {
	gatewayURL    string
	unlockService UnlockService
	activityRepo  ActivityRepo
	client        clients.HTTPClientI
	batchSize     int
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, unlockService UnlockService, activityRepo ActivityRepo, client clients.HTTPClientI) *Service {
	return &Service{
		gatewayURL:    cfg.NotifyGateway,
		unlockService: unlockService,
		activityRepo:  activityRepo,
		client:        client,
		batchSize:     cfg.SweepBatchSize,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Duration(cfg.SweepInterval) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Unlock sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	// One extra interval of slack so activity landing mid-sweep is not
	// missed by the next pass.
	since := time.Now().Add(-2 * s.sweepInterval)
	userIDs, err := s.activityRepo.ListActiveUserIDs(ctx, since, s.batchSize)
	if err != nil {
		zap.L().Error("Failed to fetch active users for sweep", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, userID := range userIDs {
		userID := userID

		if _, loaded := sweepingUsers.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingUsers.Delete(userID)
				return s.sweepUser(ctx, userID)
			})
			if err != nil {
				sweepingUsers.Delete(userID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping users", zap.Error(err))
	}
}

func (s *Service) sweepUser(ctx context.Context, userID int) error {
	unlocked, err := s.unlockService.CheckAndUnlock(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to sweep user %d: %w", userID, err)
	}
	if len(unlocked) == 0 || s.gatewayURL == "" {
		return nil
	}
	return s.pushEvent(ctx, UnlockEvent{UserID: userID, Unlocked: unlocked})
}

// pushEvent delivers the unlock event to the notification gateway,
// retrying transient failures with a linear backoff.
func (s *Service) pushEvent(ctx context.Context, event UnlockEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal unlock event: %w", err)
	}

	url := s.gatewayURL + "/api/events/unlocks"
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, err := s.client.Post(url, nil, body)
			if err == nil && statusCode < http.StatusInternalServerError {
				if statusCode >= http.StatusBadRequest {
					zap.L().Error("Gateway rejected unlock event",
						zap.Int("userID", event.UserID), zap.Int("status", statusCode))
				}
				return nil
			}
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to push unlock event for user %d after %d retries: %w", event.UserID, maxRetries, err)
			}
			return fmt.Errorf("failed to push unlock event for user %d after %d retries: status %d", event.UserID, maxRetries, statusCode)
		}
	}
	return nil
}
