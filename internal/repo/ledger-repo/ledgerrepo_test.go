package ledgerrepo

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

func TestRepository_CreateEntry(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Entry is created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO coin_ledger (user_id, amount, reason, reference, created_at)`)).
			WithArgs(1, 50, "achievement_reward", "first_post", createdAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		entry := &domain.LedgerEntry{UserID: 1, Amount: 50, Reason: "achievement_reward", Reference: "first_post", CreatedAt: createdAt}
		result, err := repo.CreateEntry(context.Background(), entry)
		assert.NoError(t, err)
		assert.Equal(t, 7, result.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO coin_ledger (user_id, amount, reason, reference, created_at)`)).
			WithArgs(1, 50, "achievement_reward", "first_post", createdAt).
			WillReturnError(errors.New("database error"))

		entry := &domain.LedgerEntry{UserID: 1, Amount: 50, Reason: "achievement_reward", Reference: "first_post", CreatedAt: createdAt}
		result, err := repo.CreateEntry(context.Background(), entry)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetHistoryByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Returns entries newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "reason", "reference", "created_at"}).
			AddRow(8, 1, 200, "achievement_reward", "note_centurion", createdAt).
			AddRow(7, 1, 10, "achievement_reward", "first_post", createdAt.Add(-time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM coin_ledger`)).
			WithArgs(1).
			WillReturnRows(rows)

		entries, err := repo.GetHistoryByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "note_centurion", entries[0].Reference)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM coin_ledger`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		entries, err := repo.GetHistoryByUserID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SumEarned(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("All time total", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND amount > 0`)).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(260))

		total, err := repo.SumEarned(context.Background(), 1, nil)
		assert.NoError(t, err)
		assert.Equal(t, 260, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Windowed total", func(t *testing.T) {
		since := time.Now().AddDate(0, 0, -7)
		mock.ExpectQuery(regexp.QuoteMeta(`AND created_at >= $2`)).
			WithArgs(1, since).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(30))

		total, err := repo.SumEarned(context.Background(), 1, &since)
		assert.NoError(t, err)
		assert.Equal(t, 30, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND amount > 0`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		total, err := repo.SumEarned(context.Background(), 1, nil)
		assert.Error(t, err)
		assert.Zero(t, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
