package handlers

import (
	"net/http"

	_ "github.com/campushub/progression/docs"
	achievementshandlers "github.com/campushub/progression/internal/handlers/achievements"
	authhandlers "github.com/campushub/progression/internal/handlers/auth"
	leaderboardhandlers "github.com/campushub/progression/internal/handlers/leaderboard"
	notificationshandlers "github.com/campushub/progression/internal/handlers/notifications"
	progressionhandlers "github.com/campushub/progression/internal/handlers/progression"
	wallethandlers "github.com/campushub/progression/internal/handlers/wallet"
	"github.com/campushub/progression/internal/service"
	"github.com/campushub/progression/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProgressionHandler interface {
	CheckUnlocks(w http.ResponseWriter, r *http.Request)
	RecordActivity(w http.ResponseWriter, r *http.Request)
	GetProgression(w http.ResponseWriter, r *http.Request)
}

type AchievementsHandler interface {
	ListAchievements(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type LeaderboardHandler interface {
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
}

type NotificationsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler          AuthHandler
	ProgressionHandler   ProgressionHandler
	AchievementsHandler  AchievementsHandler
	WalletHandler        WalletHandler
	LeaderboardHandler   LeaderboardHandler
	NotificationsHandler NotificationsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:          authhandlers.New(s.AuthService),
		ProgressionHandler:   progressionhandlers.New(s.UnlockService, s.RewardService),
		AchievementsHandler:  achievementshandlers.New(s.UnlockService),
		WalletHandler:        wallethandlers.New(s.RewardService),
		LeaderboardHandler:   leaderboardhandlers.New(s.LeaderboardService),
		NotificationsHandler: notificationshandlers.New(s.NotificationService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/leaderboard", h.LeaderboardHandler.GetLeaderboard)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/progression", func(r chi.Router) {
				r.Get("/", h.ProgressionHandler.GetProgression)
				r.Post("/check", h.ProgressionHandler.CheckUnlocks)
			})
			r.Post("/activity", h.ProgressionHandler.RecordActivity)
			r.Get("/achievements", h.AchievementsHandler.ListAchievements)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/history", h.WalletHandler.GetHistory)
			})
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationsHandler.List)
				r.Post("/{id}/read", h.NotificationsHandler.MarkRead)
			})
		})
	})

	return r
}
