package domain

import "time"

// ScoreRecord is the best score a user has reached on one level. There is at
// most one per (UserID, Level) and BestScore only ever goes up.
type ScoreRecord struct {
	UserID    string
	Level     int
	BestScore int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubmitResult reports the outcome of a score submission. Accepted is true
// when the submission created the record or raised the stored best.
type SubmitResult struct {
	Accepted  bool
	BestScore int64
}
