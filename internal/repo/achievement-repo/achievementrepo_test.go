package achievementrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/campushub/progression/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var achievementRows = []string{
	"id", "code", "name", "description", "rarity", "metric", "threshold",
	"period", "reward_coins", "reward_xp", "created_at",
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Returns catalog in id order", func(t *testing.T) {
		rows := pgxmock.NewRows(achievementRows).
			AddRow(1, "first_post", "First Post", "Create your first post", "common", domain.MetricPostsCreated, 1, domain.PeriodAllTime, 10, 25, createdAt).
			AddRow(2, "note_centurion", "Note Centurion", "Create 100 posts", "epic", domain.MetricPostsCreated, 100, domain.PeriodAllTime, 200, 500, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM achievements`)).
			WillReturnRows(rows)

		achievements, err := repo.ListAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, achievements, 2)
		assert.Equal(t, "first_post", achievements[0].Code)
		assert.Equal(t, domain.MetricPostsCreated, achievements[0].Metric)
		assert.Equal(t, domain.PeriodAllTime, achievements[0].Period)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM achievements`)).
			WillReturnError(errors.New("database error"))

		achievements, err := repo.ListAll(context.Background())
		assert.Error(t, err)
		assert.Nil(t, achievements)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListLockedForUser(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Returns only locked entries", func(t *testing.T) {
		rows := pgxmock.NewRows(achievementRows).
			AddRow(3, "daily_grind", "Daily Grind", "Three posts in a day", "rare", domain.MetricPostsCreated, 3, domain.PeriodDaily, 30, 75, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE NOT EXISTS`)).
			WithArgs(1).
			WillReturnRows(rows)

		achievements, err := repo.ListLockedForUser(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, achievements, 1)
		assert.Equal(t, domain.PeriodDaily, achievements[0].Period)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Everything unlocked returns empty", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE NOT EXISTS`)).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(achievementRows))

		achievements, err := repo.ListLockedForUser(context.Background(), 1)
		assert.NoError(t, err)
		assert.Empty(t, achievements)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
