package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/arcade/internal/arcade/domain"
	"github.com/aussiebroadwan/arcade/internal/arcade/store"
)

const (
	selectBestScoreSQL = `SELECT best_score FROM scores WHERE user_id = ? AND level = ?`

	listBestScoresSQL = `
SELECT user_id, level, best_score, created_at, updated_at
FROM scores
WHERE user_id = ?
ORDER BY level`

	// The WHERE on the update arm makes a non-improving score a no-op, in
	// which case RETURNING yields no row.
	raiseBestScoreSQL = `
INSERT INTO scores (user_id, level, best_score, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (user_id, level) DO UPDATE
SET best_score = excluded.best_score,
    updated_at = excluded.updated_at
WHERE excluded.best_score > scores.best_score
RETURNING best_score`
)

type scoresRepo struct {
	q querier

	// withTx is set on the pool-backed repo; tx-scoped repos already run
	// inside a transaction.
	withTx func(ctx context.Context, fn func(tx store.Tx) error) error
}

func (r *scoresRepo) GetBestScore(ctx context.Context, userID string, level int) (int64, error) {
	var best int64
	if err := r.q.QueryRowContext(ctx, selectBestScoreSQL, userID, level).Scan(&best); err != nil {
		return 0, mapNotFound(err)
	}
	return best, nil
}

func (r *scoresRepo) ListBestScores(ctx context.Context, userID string) ([]domain.ScoreRecord, error) {
	rows, err := r.q.QueryContext(ctx, listBestScoresSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ScoreRecord
	for rows.Next() {
		var rec domain.ScoreRecord
		if err := rows.Scan(&rec.UserID, &rec.Level, &rec.BestScore, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *scoresRepo) RaiseBestScore(ctx context.Context, userID string, level int, score int64) (domain.SubmitResult, error) {
	if r.withTx == nil {
		return raiseBestScore(ctx, r.q, userID, level, score)
	}

	var res domain.SubmitResult
	err := r.withTx(ctx, func(tx store.Tx) error {
		var err error
		res, err = tx.Scores().RaiseBestScore(ctx, userID, level, score)
		return err
	})
	return res, err
}

// raiseBestScore must run inside a transaction: the upsert takes the write
// lock, so the fallback read below sees the value that beat this score.
func raiseBestScore(ctx context.Context, q querier, userID string, level int, score int64) (domain.SubmitResult, error) {
	now := time.Now().UTC()

	var best int64
	err := q.QueryRowContext(ctx, raiseBestScoreSQL, userID, level, score, now, now).Scan(&best)
	switch {
	case err == nil:
		return domain.SubmitResult{Accepted: true, BestScore: best}, nil
	case !errors.Is(err, sql.ErrNoRows):
		return domain.SubmitResult{}, mapConstraint(err)
	}

	if err := q.QueryRowContext(ctx, selectBestScoreSQL, userID, level).Scan(&best); err != nil {
		return domain.SubmitResult{}, err
	}
	return domain.SubmitResult{Accepted: false, BestScore: best}, nil
}
