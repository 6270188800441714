package service

import (
	"github.com/campushub/progression/internal/handlers/auth"
	"github.com/campushub/progression/internal/handlers/leaderboard"
	"github.com/campushub/progression/internal/handlers/notifications"

	pkgauth "github.com/campushub/progression/pkg/auth"

	"github.com/campushub/progression/internal/pg"
	"github.com/campushub/progression/internal/repo"
	"github.com/campushub/progression/internal/service/authservice"
	"github.com/campushub/progression/internal/service/leaderboardservice"
	"github.com/campushub/progression/internal/service/metricservice"
	"github.com/campushub/progression/internal/service/notificationservice"
	"github.com/campushub/progression/internal/service/rewardservice"
	"github.com/campushub/progression/internal/service/unlockservice"
)

type Services struct {
	AuthService         auth.Service
	MetricService       *metricservice.Service
	RewardService       *rewardservice.Service
	UnlockService       *unlockservice.Service
	LeaderboardService  leaderboard.Service
	NotificationService notifications.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	metricService := metricservice.New(repo.UserRepo, repo.ActivityRepo, repo.LedgerRepo)
	rewardService := rewardservice.New(repo.UserRepo, repo.LedgerRepo, repo.NotificationRepo, txManager)
	unlockService := unlockservice.New(
		metricService,
		rewardService,
		repo.UserRepo,
		repo.AchievementRepo,
		repo.UnlockRepo,
		repo.ActivityRepo,
		repo.NotificationRepo,
	)
	leaderboardService := leaderboardservice.New(repo.UserRepo)
	notificationService := notificationservice.New(repo.NotificationRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:         authService,
		MetricService:       metricService,
		RewardService:       rewardService,
		UnlockService:       unlockService,
		LeaderboardService:  leaderboardService,
		NotificationService: notificationService,
	}
}
