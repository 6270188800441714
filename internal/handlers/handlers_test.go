package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/campushub/progression/docs"
	authhandlers "github.com/campushub/progression/internal/handlers/auth"
	leaderboardhandlers "github.com/campushub/progression/internal/handlers/leaderboard"
	notificationshandlers "github.com/campushub/progression/internal/handlers/notifications"
	"github.com/campushub/progression/internal/service"
	"github.com/campushub/progression/internal/service/rewardservice"
	"github.com/campushub/progression/internal/service/unlockservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:         authhandlers.NewMockService(ctrl),
		RewardService:       &rewardservice.Service{},
		UnlockService:       &unlockservice.Service{},
		LeaderboardService:  leaderboardhandlers.NewMockService(ctrl),
		NotificationService: notificationshandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockProgressionHandler := NewMockProgressionHandler(ctrl)
	mockAchievementsHandler := NewMockAchievementsHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockLeaderboardHandler := NewMockLeaderboardHandler(ctrl)
	mockNotificationsHandler := NewMockNotificationsHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockProgressionHandler.EXPECT().GetProgression(gomock.Any(), gomock.Any()).AnyTimes()
	mockProgressionHandler.EXPECT().CheckUnlocks(gomock.Any(), gomock.Any()).AnyTimes()
	mockProgressionHandler.EXPECT().RecordActivity(gomock.Any(), gomock.Any()).AnyTimes()
	mockAchievementsHandler.EXPECT().ListAchievements(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaderboardHandler.EXPECT().GetLeaderboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockNotificationsHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockNotificationsHandler.EXPECT().MarkRead(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:          mockAuthHandler,
		ProgressionHandler:   mockProgressionHandler,
		AchievementsHandler:  mockAchievementsHandler,
		WalletHandler:        mockWalletHandler,
		LeaderboardHandler:   mockLeaderboardHandler,
		NotificationsHandler: mockNotificationsHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/leaderboard", http.StatusOK},
		{"GET", "/api/user/progression", http.StatusUnauthorized},
		{"POST", "/api/user/progression/check", http.StatusUnauthorized},
		{"POST", "/api/user/activity", http.StatusUnauthorized},
		{"GET", "/api/user/achievements", http.StatusUnauthorized},
		{"GET", "/api/user/wallet", http.StatusUnauthorized},
		{"GET", "/api/user/wallet/history", http.StatusUnauthorized},
		{"GET", "/api/user/notifications", http.StatusUnauthorized},
		{"POST", "/api/user/notifications/1/read", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
