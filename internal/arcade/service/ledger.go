package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/aussiebroadwan/arcade/internal/arcade/domain"
	"github.com/aussiebroadwan/arcade/internal/arcade/store"
)

// MaxLevel is the highest level the schema can store (a 32-bit column).
const MaxLevel = math.MaxInt32

func validLevel(level int) bool { return level >= 1 && level <= MaxLevel }

// ScoreLedger keeps each user's best score per level. It trusts the user id
// it is given; session checks happen before it is called.
type ScoreLedger struct {
	Store store.Store
}

func NewScoreLedger(s store.Store) *ScoreLedger {
	return &ScoreLedger{Store: s}
}

// GetBestScore returns 0 when nothing has been submitted for level yet.
func (l *ScoreLedger) GetBestScore(ctx context.Context, userID string, level int) (int64, error) {
	if !validLevel(level) {
		return 0, ErrInvalidInput
	}

	best, err := l.Store.Scores().GetBestScore(ctx, userID, level)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return best, nil
}

// GetAllBestScores maps level to best score. The map is empty, not nil, for
// a user with no submissions.
func (l *ScoreLedger) GetAllBestScores(ctx context.Context, userID string) (map[int]int64, error) {
	recs, err := l.Store.Scores().ListBestScores(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	out := make(map[int]int64, len(recs))
	for _, rec := range recs {
		out[rec.Level] = rec.BestScore
	}
	return out, nil
}

// SubmitScore raises the stored best for (userID, level) to score when score
// is higher, creating the record on first submission. The compare and write
// happen in a single statement, so concurrent submissions for the same key
// always leave the maximum behind.
func (l *ScoreLedger) SubmitScore(ctx context.Context, userID string, level int, score int64) (domain.SubmitResult, error) {
	if !validLevel(level) || score < 0 {
		return domain.SubmitResult{}, ErrInvalidInput
	}

	res, err := l.Store.Scores().RaiseBestScore(ctx, userID, level, score)
	switch {
	case errors.Is(err, store.ErrForeignKey):
		return domain.SubmitResult{}, ErrUserNotFound
	case err != nil:
		return domain.SubmitResult{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return res, nil
}
