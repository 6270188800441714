package ledgerrepo

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

func (r *Repository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO coin_ledger (user_id, amount, reason, reference, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Amount, entry.Reason, entry.Reference, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) GetHistoryByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, user_id, amount, reason, reference, created_at
        FROM coin_ledger
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Reason, &e.Reference, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// SumEarned totals positive ledger amounts for the user, optionally
// restricted to entries at or after since.
func (r *Repository) SumEarned(ctx context.Context, userID int, since *time.Time) (int, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM coin_ledger
        WHERE user_id = $1 AND amount > 0
    `
	args := []any{userID}
	if since != nil {
		query += ` AND created_at >= $2`
		args = append(args, *since)
	}

	var total int
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum earned coins", zap.Error(err))
		return 0, err
	}
	return total, nil
}
