package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/arcade/internal/arcade/domain"
	"github.com/aussiebroadwan/arcade/pkg/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAuthenticateRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, _, _ := newTestServices(t)

	id, err := reg.Register(ctx, "alice", "pw123")
	require.NoError(t, err)
	require.True(t, idx.Valid(id))

	got, err := reg.Authenticate(ctx, "alice", "pw123")
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = reg.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, _, _ := newTestServices(t)

	first, err := reg.Register(ctx, "bob", "pw")
	require.NoError(t, err)

	_, err = reg.Register(ctx, "bob", "other")
	require.ErrorIs(t, err, ErrDuplicateUsername)

	// The original credentials are untouched.
	got, err := reg.Authenticate(ctx, "bob", "pw")
	require.NoError(t, err)
	require.Equal(t, first, got)

	_, err = reg.Authenticate(ctx, "bob", "other")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterAssignsDistinctIDs(t *testing.T) {
	t.Parallel()
	reg, _, _ := newTestServices(t)

	a := mustRegister(t, reg, "one")
	b := mustRegister(t, reg, "two")
	require.NotEqual(t, a, b)

	// Case differs, so this is a different user.
	c := mustRegister(t, reg, "ONE")
	require.NotEqual(t, a, c)
}

func TestRegisterInvalidInput(t *testing.T) {
	t.Parallel()
	reg, _, _ := newTestServices(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"empty password", "carol", ""},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Register(context.Background(), tt.username, tt.password)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, _, _ := newTestServices(t)
	mustRegister(t, reg, "dave")

	_, unknownErr := reg.Authenticate(ctx, "nobody", "pw-dave")
	_, wrongErr := reg.Authenticate(ctx, "dave", "nope")
	_, emptyErr := reg.Authenticate(ctx, "", "")

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	require.ErrorIs(t, emptyErr, ErrInvalidCredentials)
	require.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestExistsAndLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, _, _ := newTestServices(t)
	id := mustRegister(t, reg, "erin")

	ok, err := reg.Exists(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = reg.Exists(ctx, idx.New().String())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = reg.Exists(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)

	u, err := reg.Lookup(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "erin", u.Username)
	require.NotEqual(t, "pw-erin", u.PasswordHash)

	_, err = reg.Lookup(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegistryStorageUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, _, s := newTestServices(t)
	id := mustRegister(t, reg, "frank")

	require.NoError(t, s.Close())

	_, err := reg.Register(ctx, "gina", "pw")
	require.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = reg.Authenticate(ctx, "frank", "pw-frank")
	require.ErrorIs(t, err, ErrStorageUnavailable)

	ok, err := reg.Exists(ctx, id)
	require.ErrorIs(t, err, ErrStorageUnavailable)
	require.False(t, ok)

	_, err = reg.Lookup(ctx, id)
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestRegisterConcurrentSameUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, _, _ := newTestServices(t)

	const racers = 16
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		winner string
		wins   int
		dups   int
	)
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := reg.Register(ctx, "dana", "pw")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
				winner = id
			case errors.Is(err, ErrDuplicateUsername):
				dups++
			default:
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, racers-1, dups)

	got, err := reg.Authenticate(ctx, "dana", "pw")
	require.NoError(t, err)
	require.Equal(t, winner, got)
}

func TestAuthenticateCorruptHash(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, _, s := newTestServices(t)

	err := s.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Username:     "mallory",
		PasswordHash: "$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$aGFzaA",
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NotPanics(t, func() {
		_, err = reg.Authenticate(ctx, "mallory", "pw")
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
