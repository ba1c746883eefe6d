package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/arcade/internal/arcade/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrForeignKey    = errors.New("store: referenced row missing")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are reached through methods so a Tx-scoped
// store hands out repos bound to the same transaction.
type Store interface {
	Users() Users
	Scores() Scores

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. A taken username is reported as
	// ErrAlreadyExists straight from the unique index.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UserExists is the cheap liveness check for session validation.
	UserExists(ctx context.Context, id string) (bool, error)
}

type Scores interface {
	// GetBestScore returns ErrNotFound when the user has no record for level.
	GetBestScore(ctx context.Context, userID string, level int) (int64, error)

	// ListBestScores returns every record for the user ordered by level.
	ListBestScores(ctx context.Context, userID string) ([]domain.ScoreRecord, error)

	// RaiseBestScore atomically inserts the record or raises best_score to
	// score when score is greater. Accepted reports whether a row was
	// created or raised. A missing user is reported as ErrForeignKey.
	RaiseBestScore(ctx context.Context, userID string, level int, score int64) (domain.SubmitResult, error)
}
