package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// cheapParams keeps the suite fast; production uses DefaultParams.
var cheapParams = Params{Memory: 1024, Iterations: 1, Parallelism: 1, KeyLength: 32, SaltLength: 16}

func newTestHasher(pepper string) *PasswordHasher {
	return &PasswordHasher{Pepper: pepper, Params: cheapParams}
}

func TestHash_PHCFormat(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "pw123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	h := newTestHasher("pepper")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.Equal(t, "m=1024,t=1,p=1", parts[3])
			require.NotEmpty(t, parts[4])
			require.NotEmpty(t, parts[5])
			require.NotContains(t, hash, tt.password)

			require.NoError(t, h.Verify(tt.password, hash))
		})
	}
}

func TestHash_UniqueSalts(t *testing.T) {
	h := newTestHasher("pepper")

	hash1, err := h.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := h.Hash("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.NoError(t, h.Verify("samepassword", hash1))
	require.NoError(t, h.Verify("samepassword", hash2))
}

func TestVerify_WrongPassword(t *testing.T) {
	h := newTestHasher("pepper")
	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{
		"wrong-password",
		"Correct-Password",
		"correct-password ",
		"",
		strings.Repeat("x", 10000),
	} {
		require.ErrorIs(t, h.Verify(wrong, hash), ErrPasswordMismatch, "password %q", wrong)
	}
}

func TestVerify_PepperMatters(t *testing.T) {
	hash, err := newTestHasher("pepper-a").Hash("pw")
	require.NoError(t, err)

	require.ErrorIs(t, newTestHasher("pepper-b").Verify("pw", hash), ErrPasswordMismatch)
	require.NoError(t, newTestHasher("pepper-a").Verify("pw", hash))
}

func TestVerify_UsesParamsFromHash(t *testing.T) {
	old := newTestHasher("pepper")
	hash, err := old.Hash("pw")
	require.NoError(t, err)

	upgraded := &PasswordHasher{Pepper: "pepper", Params: Params{Memory: 2048, Iterations: 2, Parallelism: 1, KeyLength: 32, SaltLength: 16}}
	require.NoError(t, upgraded.Verify("pw", hash))
}

func TestVerify_InvalidHashFormat(t *testing.T) {
	h := newTestHasher("pepper")

	tests := []struct {
		name        string
		invalidHash string
	}{
		{"empty hash", ""},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"zero parallelism", "$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$aGFzaA"},
		{"zero iterations", "$argon2id$v=19$m=1024,t=0,p=1$c2FsdA$aGFzaA"},
		{"empty hash segment", "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				require.ErrorIs(t, h.Verify("pw", tt.invalidHash), ErrInvalidHash)
			})
		})
	}
}

func TestNewPasswordHasher_Defaults(t *testing.T) {
	h := NewPasswordHasher("pepper")
	hash, err := h.Hash("pw")
	require.NoError(t, err)
	require.Contains(t, hash, "m=19456,t=2,p=1")
}
