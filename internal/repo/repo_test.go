package repo

import (
	"testing"

	achievementrepo "github.com/campushub/progression/internal/repo/achievement-repo"
	activityrepo "github.com/campushub/progression/internal/repo/activity-repo"
	ledgerrepo "github.com/campushub/progression/internal/repo/ledger-repo"
	notificationrepo "github.com/campushub/progression/internal/repo/notification-repo"
	unlockrepo "github.com/campushub/progression/internal/repo/unlock-repo"
	userrepo "github.com/campushub/progression/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.AchievementRepo)
	assert.NotNil(t, repo.UnlockRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.ActivityRepo)
	assert.NotNil(t, repo.NotificationRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &achievementrepo.Repository{}, repo.AchievementRepo)
	assert.IsType(t, &unlockrepo.Repository{}, repo.UnlockRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &activityrepo.Repository{}, repo.ActivityRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
