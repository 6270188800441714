package unlockrepo

import (
	"context"
	"errors"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/pg"
	"github.com/campushub/progression/internal/service/unlockservice"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateUnlock inserts the unlock record. A unique violation on
// (user_id, achievement_id) means a concurrent invocation got there first
// and is reported as unlockservice.ErrAlreadyUnlocked.
func (r *Repository) CreateUnlock(ctx context.Context, unlock *domain.Unlock) (*domain.Unlock, error) {
	query := `
		INSERT INTO unlocks (user_id, achievement_id, unlocked_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, unlock.UserID, unlock.AchievementID, unlock.UnlockedAt).Scan(&unlock.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, unlockservice.ErrAlreadyUnlocked
		}
		zap.L().Error("can't save unlock", zap.Error(err))
		return nil, err
	}
	return unlock, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Unlock, error) {
	query := `
        SELECT id, user_id, achievement_id, unlocked_at
        FROM unlocks
        WHERE user_id = $1
        ORDER BY unlocked_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list unlocks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var unlocks []domain.Unlock
	for rows.Next() {
		var u domain.Unlock
		err := rows.Scan(&u.ID, &u.UserID, &u.AchievementID, &u.UnlockedAt)
		if err != nil {
			zap.L().Error("can't scan unlock row", zap.Error(err))
			return nil, err
		}
		unlocks = append(unlocks, u)
	}
	return unlocks, nil
}
