package userrepo

import (
	"context"
	"time"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/pg"
	"github.com/jackc/pgx/v5"
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

const userColumns = `id, login, password_hash, student_card, display_name, avatar_url, bio, major, institution, semester, xp, level, coins, streak_days, last_activity_at, created_at`

func scanUser(row pgx.Row, user *domain.User) error {
	return row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.StudentCard,
		&user.DisplayName, &user.AvatarURL, &user.Bio, &user.Major,
		&user.Institution, &user.Semester, &user.XP, &user.Level,
		&user.Coins, &user.StreakDays, &user.LastActivityAt, &user.CreatedAt,
	)
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	row := repo.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE login = $1`, login)
	err := scanUser(row, &user)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) GetByID(ctx context.Context, userID int) (*domain.User, error) {
	var user domain.User
	row := repo.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	err := scanUser(row, &user)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, student_card)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.StudentCard).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// IncrementBalances applies a reward as a single read-modify-write so
// concurrent grants cannot lose updates. Returns the row after the update.
func (repo *Repository) IncrementBalances(ctx context.Context, userID, coins, xp int) (*domain.User, error) {
	query := `
		UPDATE users
		SET coins = coins + $1, xp = xp + $2
		WHERE id = $3
		RETURNING id, xp, level, coins
	`
	var user domain.User
	row := repo.db.QueryRow(ctx, query, coins, xp, userID)
	err := row.Scan(&user.ID, &user.XP, &user.Level, &user.Coins)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't increment balances", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdateLevel(ctx context.Context, userID, level int) error {
	query := `
		UPDATE users
		SET level = $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, level, userID)
	if err != nil {
		zap.L().Error("can't update level", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) TouchActivity(ctx context.Context, userID int, at time.Time) error {
	query := `
		UPDATE users
		SET last_activity_at = $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, at, userID)
	if err != nil {
		zap.L().Error("can't touch last activity", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) TopByXP(ctx context.Context, limit int) ([]domain.LeaderboardRow, error) {
	query := `
        SELECT id, login, display_name, level, xp, streak_days, xp AS score
        FROM users
        ORDER BY xp DESC, id ASC
        LIMIT $1
    `
	rows, err := repo.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var board []domain.LeaderboardRow
	for rows.Next() {
		var r domain.LeaderboardRow
		err := rows.Scan(&r.UserID, &r.Login, &r.DisplayName, &r.Level, &r.XP, &r.StreakDays, &r.Score)
		if err != nil {
			zap.L().Error("can't scan leaderboard row", zap.Error(err))
			return nil, err
		}
		board = append(board, r)
	}
	return board, nil
}

// TopActive ranks users by number of tracked activities at or after since.
func (repo *Repository) TopActive(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardRow, error) {
	query := `
        SELECT u.id, u.login, u.display_name, u.level, u.xp, u.streak_days, COUNT(a.id) AS score
        FROM users u
        JOIN activities a ON a.user_id = u.id AND a.created_at >= $1
        GROUP BY u.id, u.login, u.display_name, u.level, u.xp, u.streak_days
        ORDER BY score DESC, u.id ASC
        LIMIT $2
    `
	rows, err := repo.db.Query(ctx, query, since, limit)
	if err != nil {
		zap.L().Error("can't get period leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var board []domain.LeaderboardRow
	for rows.Next() {
		var r domain.LeaderboardRow
		err := rows.Scan(&r.UserID, &r.Login, &r.DisplayName, &r.Level, &r.XP, &r.StreakDays, &r.Score)
		if err != nil {
			zap.L().Error("can't scan leaderboard row", zap.Error(err))
			return nil, err
		}
		board = append(board, r)
	}
	return board, nil
}

func (repo *Repository) UpdateStreak(ctx context.Context, userID, days int) error {
	query := `
		UPDATE users
		SET streak_days = $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, days, userID)
	if err != nil {
		zap.L().Error("can't update streak", zap.Error(err))
		return err
	}
	return nil
}
