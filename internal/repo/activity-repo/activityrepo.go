package activityrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	query := `
		INSERT INTO activities (user_id, type, surface, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, activity.UserID, activity.Type, activity.Surface, activity.Metadata, activity.CreatedAt).Scan(&activity.ID)
	if err != nil {
		zap.L().Error("can't save activity", zap.Error(err))
		return nil, err
	}
	return activity, nil
}

// CountByTypes counts the user's activities of the given types, optionally
// restricted to rows created at or after since.
func (r *Repository) CountByTypes(ctx context.Context, userID int, types []string, since *time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM activities
        WHERE user_id = $1 AND type = ANY($2)
    `
	args := []any{userID, types}
	if since != nil {
		query += ` AND created_at >= $3`
		args = append(args, *since)
	}

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		zap.L().Error("can't count activities", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountDistinctSurfaces(ctx context.Context, userID int, since *time.Time) (int, error) {
	query := `
        SELECT COUNT(DISTINCT surface)
        FROM activities
        WHERE user_id = $1 AND surface <> ''
    `
	args := []any{userID}
	if since != nil {
		query += ` AND created_at >= $2`
		args = append(args, *since)
	}

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		zap.L().Error("can't count distinct surfaces", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// RecentTimes returns creation timestamps of the user's most recent
// activities, newest first, capped at limit.
func (r *Repository) RecentTimes(ctx context.Context, userID, limit int) ([]time.Time, error) {
	query := `
        SELECT created_at
        FROM activities
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get recent activity times", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			zap.L().Error("can't scan activity time", zap.Error(err))
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}

// ListActiveUserIDs returns ids of users with any activity at or after
// since, for the background unlock sweep.
func (r *Repository) ListActiveUserIDs(ctx context.Context, since time.Time, limit int) ([]int, error) {
	query := `
        SELECT DISTINCT user_id
        FROM activities
        WHERE created_at >= $1
        ORDER BY user_id ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		zap.L().Error("can't list active users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
