package unlockrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/service/unlockservice"
	"github.com/jackc/pgx/v5/pgconn"
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

func TestRepository_CreateUnlock(t *testing.T) {
	repo, mock := NewMock(t)
	unlockedAt := time.Now()

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Unlock is created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO unlocks (user_id, achievement_id, unlocked_at)`)).
					WithArgs(1, 2, unlockedAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
			},
		},
		{
			name: "Unique violation maps to already unlocked",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO unlocks (user_id, achievement_id, unlocked_at)`)).
					WithArgs(1, 2, unlockedAt).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "unlocks_user_achievement_key"})
			},
			expectedErr: unlockservice.ErrAlreadyUnlocked,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO unlocks (user_id, achievement_id, unlocked_at)`)).
					WithArgs(1, 2, unlockedAt).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			unlock := &domain.Unlock{UserID: 1, AchievementID: 2, UnlockedAt: unlockedAt}
			result, err := repo.CreateUnlock(context.Background(), unlock)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	unlockedAt := time.Now()

	t.Run("Returns unlocks newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "achievement_id", "unlocked_at"}).
			AddRow(11, 1, 3, unlockedAt).
			AddRow(10, 1, 1, unlockedAt.Add(-time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM unlocks`)).
			WithArgs(1).
			WillReturnRows(rows)

		unlocks, err := repo.ListByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, unlocks, 2)
		assert.Equal(t, 3, unlocks[0].AchievementID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM unlocks`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		unlocks, err := repo.ListByUserID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, unlocks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
