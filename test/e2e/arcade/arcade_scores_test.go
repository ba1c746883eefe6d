package arcade_test

import (
	"sync"
	"testing"

	"github.com/aussiebroadwan/arcade/pkg/arcadesdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginSubmit tests the complete flow:
// 1. Register and log in
// 2. Submit scores on two levels
// 3. Verify only improvements are accepted
// 4. Verify the per-level map
func TestRegisterLoginSubmit(t *testing.T) {
	baseURL, cleanup := setupArcadeContainer(t)
	defer cleanup()

	client := arcadesdk.NewClient(baseURL)
	session := registerAndLogin(t, client)

	profile, err := session.Profile(t.Context())
	require.NoError(t, err)
	require.Equal(t, playerUsername, profile.Username)

	best, err := session.BestScore(t.Context(), 1)
	require.NoError(t, err)
	require.Zero(t, best, "Unplayed level should report zero")

	res, err := session.SubmitScore(t.Context(), 1, 50)
	require.NoError(t, err)
	require.True(t, res.Accepted)

	res, err = session.SubmitScore(t.Context(), 1, 30)
	require.NoError(t, err)
	require.False(t, res.Accepted, "Lower score must not replace the best")
	require.EqualValues(t, 50, res.BestScore)

	_, err = session.SubmitScore(t.Context(), 2, 10)
	require.NoError(t, err)

	scores, err := session.Scores(t.Context())
	require.NoError(t, err)
	require.Equal(t, map[int]int64{1: 50, 2: 10}, scores)

	t.Logf("Scores after submissions: %v", scores)
}

// TestConcurrentSubmissions fires racing submissions for one level and checks
// the stored best is the maximum.
func TestConcurrentSubmissions(t *testing.T) {
	baseURL, cleanup := setupArcadeContainer(t)
	defer cleanup()

	client := arcadesdk.NewClient(baseURL)
	session := registerAndLogin(t, client)

	var wg sync.WaitGroup
	for score := int64(1); score <= 40; score++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := session.SubmitScore(t.Context(), 3, score)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	best, err := session.BestScore(t.Context(), 3)
	require.NoError(t, err)
	require.EqualValues(t, 40, best)
}
