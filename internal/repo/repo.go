package repo

import (
	"github.com/campushub/progression/internal/pg"
	achievementrepo "github.com/campushub/progression/internal/repo/achievement-repo"
	activityrepo "github.com/campushub/progression/internal/repo/activity-repo"
	ledgerrepo "github.com/campushub/progression/internal/repo/ledger-repo"
	notificationrepo "github.com/campushub/progression/internal/repo/notification-repo"
	unlockrepo "github.com/campushub/progression/internal/repo/unlock-repo"
	userrepo "github.com/campushub/progression/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	AchievementRepo  *achievementrepo.Repository
	UnlockRepo       *unlockrepo.Repository
	LedgerRepo       *ledgerrepo.Repository
	ActivityRepo     *activityrepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		AchievementRepo:  achievementrepo.New(conn),
		UnlockRepo:       unlockrepo.New(conn),
		LedgerRepo:       ledgerrepo.New(conn),
		ActivityRepo:     activityrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}
