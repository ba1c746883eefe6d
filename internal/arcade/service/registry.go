package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aussiebroadwan/arcade/internal/arcade/domain"
	"github.com/aussiebroadwan/arcade/internal/arcade/store"
	"github.com/aussiebroadwan/arcade/pkg/idx"
)

// PasswordHasher is satisfied by *cryptox.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

// UserRegistry creates users and checks their credentials.
type UserRegistry struct {
	Store  store.Store
	Hasher PasswordHasher

	dummyOnce sync.Once
	dummyHash string
	dummyErr  error
}

func NewUserRegistry(s store.Store, h PasswordHasher) *UserRegistry {
	return &UserRegistry{Store: s, Hasher: h}
}

// Register stores a new user and returns its id. Callers trim username and
// password first. A taken username is detected by the unique index on insert.
func (r *UserRegistry) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidInput
	}

	hash, err := r.Hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = r.Store.Users().CreateUser(ctx, u)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return "", ErrDuplicateUsername
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return u.ID, nil
}

// Authenticate returns the id of the user whose password matches. An unknown
// username still pays for one hash verification so the two failure cases
// take the same time.
func (r *UserRegistry) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := r.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		r.burnVerify(password)
		return "", ErrInvalidCredentials
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := r.Hasher.Verify(password, u.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}
	return u.ID, nil
}

// Exists reports whether userID still refers to a stored user. A store
// failure is returned as ErrStorageUnavailable, never as false.
func (r *UserRegistry) Exists(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ok, err := r.Store.Users().UserExists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return ok, nil
}

// Lookup returns the stored user for userID.
func (r *UserRegistry) Lookup(ctx context.Context, userID string) (domain.User, error) {
	u, err := r.Store.Users().GetUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrUserNotFound
	case err != nil:
		return domain.User{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return u, nil
}

func (r *UserRegistry) burnVerify(password string) {
	r.dummyOnce.Do(func() {
		r.dummyHash, r.dummyErr = r.Hasher.Hash("arcade-dummy-password")
	})
	if r.dummyErr != nil {
		return
	}
	_ = r.Hasher.Verify(password, r.dummyHash)
}
