package achievementrepo

import (
	"context"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const achievementColumns = `id, code, name, description, rarity, metric, threshold, period, reward_coins, reward_xp, created_at`

func (r *Repository) ListAll(ctx context.Context) ([]domain.Achievement, error) {
	query := `
        SELECT ` + achievementColumns + `
        FROM achievements
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list achievements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Description, &a.Rarity, &a.Metric, &a.Threshold, &a.Period, &a.RewardCoins, &a.RewardXP, &a.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan achievement row", zap.Error(err))
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, nil
}

// ListLockedForUser returns catalog entries the user has not unlocked yet,
// in catalog order.
func (r *Repository) ListLockedForUser(ctx context.Context, userID int) ([]domain.Achievement, error) {
	query := `
        SELECT ` + achievementColumns + `
        FROM achievements a
        WHERE NOT EXISTS (
            SELECT 1 FROM unlocks u
            WHERE u.achievement_id = a.id AND u.user_id = $1
        )
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list locked achievements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Description, &a.Rarity, &a.Metric, &a.Threshold, &a.Period, &a.RewardCoins, &a.RewardXP, &a.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan achievement row", zap.Error(err))
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, nil
}
