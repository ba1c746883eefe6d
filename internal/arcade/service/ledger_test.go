package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/aussiebroadwan/arcade/internal/arcade/domain"
	"github.com/aussiebroadwan/arcade/pkg/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBestScoreDefaultsToZero(t *testing.T) {
	t.Parallel()
	reg, ledger, _ := newTestServices(t)
	id := mustRegister(t, reg, "alice")

	best, err := ledger.GetBestScore(context.Background(), id, 7)
	require.NoError(t, err)
	require.Zero(t, best)

	all, err := ledger.GetAllBestScores(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)
}

func TestSubmitScoreSequence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, ledger, _ := newTestServices(t)
	id := mustRegister(t, reg, "bob")

	res, err := ledger.SubmitScore(ctx, id, 1, 50)
	require.NoError(t, err)
	require.Equal(t, domain.SubmitResult{Accepted: true, BestScore: 50}, res)

	res, err = ledger.SubmitScore(ctx, id, 1, 30)
	require.NoError(t, err)
	require.Equal(t, domain.SubmitResult{Accepted: false, BestScore: 50}, res)

	res, err = ledger.SubmitScore(ctx, id, 1, 80)
	require.NoError(t, err)
	require.Equal(t, domain.SubmitResult{Accepted: true, BestScore: 80}, res)

	best, err := ledger.GetBestScore(ctx, id, 1)
	require.NoError(t, err)
	require.EqualValues(t, 80, best)
}

func TestSubmitScoreInvalidInput(t *testing.T) {
	t.Parallel()
	reg, ledger, _ := newTestServices(t)
	id := mustRegister(t, reg, "carol")

	tests := []struct {
		name  string
		level int
		score int64
	}{
		{"zero level", 0, 10},
		{"negative level", -3, 10},
		{"negative score", 1, -1},
		{"level past the column range", MaxLevel + 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.SubmitScore(context.Background(), id, tt.level, tt.score)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := ledger.GetBestScore(context.Background(), id, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ledger.GetBestScore(context.Background(), id, MaxLevel+1)
	require.ErrorIs(t, err, ErrInvalidInput)

	res, err := ledger.SubmitScore(context.Background(), id, MaxLevel, 10)
	require.NoError(t, err)
	require.True(t, res.Accepted)
}

func TestSubmitScoreUnknownUser(t *testing.T) {
	t.Parallel()
	_, ledger, _ := newTestServices(t)

	_, err := ledger.SubmitScore(context.Background(), idx.New().String(), 1, 10)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubmitScoreSequenceEndsAtMax(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, ledger, _ := newTestServices(t)
	id := mustRegister(t, reg, "dave")

	rng := rand.New(rand.NewPCG(1, 2))
	var top int64
	for range 50 {
		score := rng.Int64N(10_000)
		top = max(top, score)

		res, err := ledger.SubmitScore(ctx, id, 3, score)
		require.NoError(t, err)
		require.Equal(t, top, res.BestScore)
	}

	best, err := ledger.GetBestScore(ctx, id, 3)
	require.NoError(t, err)
	require.Equal(t, top, best)
}

func TestSubmitScoreConcurrentRace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, ledger, _ := newTestServices(t)
	id := mustRegister(t, reg, "erin")

	for round := 1; round <= 5; round++ {
		var wg sync.WaitGroup
		var r60, r90 domain.SubmitResult
		wg.Add(2)
		go func() {
			defer wg.Done()
			var err error
			r60, err = ledger.SubmitScore(ctx, id, round, 60)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			var err error
			r90, err = ledger.SubmitScore(ctx, id, round, 90)
			assert.NoError(t, err)
		}()
		wg.Wait()

		require.True(t, r90.Accepted)
		require.EqualValues(t, 90, r90.BestScore)
		// 60 either ran first and created the record or lost to 90.
		if r60.Accepted {
			require.EqualValues(t, 60, r60.BestScore)
		} else {
			require.EqualValues(t, 90, r60.BestScore)
		}

		best, err := ledger.GetBestScore(ctx, id, round)
		require.NoError(t, err)
		require.EqualValues(t, 90, best)
	}
}

func TestGetAllBestScoresMatchesRaisedLevels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, ledger, _ := newTestServices(t)
	id := mustRegister(t, reg, "frank")
	other := mustRegister(t, reg, "gina")

	submissions := []struct {
		level int
		score int64
	}{
		{1, 10}, {1, 40}, {2, 5}, {5, 100}, {5, 20}, {2, 0},
	}
	want := map[int]int64{}
	for _, s := range submissions {
		_, err := ledger.SubmitScore(ctx, id, s.level, s.score)
		require.NoError(t, err)
		want[s.level] = max(want[s.level], s.score)
	}
	_, err := ledger.SubmitScore(ctx, other, 9, 999)
	require.NoError(t, err)

	got, err := ledger.GetAllBestScores(ctx, id)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLedgerStorageUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, ledger, s := newTestServices(t)
	id := mustRegister(t, reg, "hank")

	require.NoError(t, s.Close())

	_, err := ledger.SubmitScore(ctx, id, 1, 10)
	require.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = ledger.GetBestScore(ctx, id, 1)
	require.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = ledger.GetAllBestScores(ctx, id)
	require.ErrorIs(t, err, ErrStorageUnavailable)
}
