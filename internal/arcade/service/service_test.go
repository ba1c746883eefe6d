package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/arcade/internal/arcade/store/drivers/sqlite"
	"github.com/aussiebroadwan/arcade/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

var cheapParams = cryptox.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	KeyLength:   32,
	SaltLength:  16,
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "arcade.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestServices(t *testing.T) (*UserRegistry, *ScoreLedger, *sqlite.Store) {
	t.Helper()

	s := newTestStore(t)
	hasher := &cryptox.PasswordHasher{Pepper: "test-pepper", Params: cheapParams}
	return NewUserRegistry(s, hasher), NewScoreLedger(s), s
}

func mustRegister(t *testing.T, r *UserRegistry, username string) string {
	t.Helper()

	id, err := r.Register(context.Background(), username, "pw-"+username)
	require.NoError(t, err)
	return id
}
