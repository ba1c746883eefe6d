package arcadesdk

import "time"

// ErrorResponse is the wire shape of APIError.
type ErrorResponse struct {
	Error            string `json:"error" example:"invalid_request"`
	ErrorDescription string `json:"error_description" example:"level must be a positive integer"`
}

// ============================================================================
// Accounts
// ============================================================================

type RegisterResponse struct {
	UserID   string `json:"user_id" example:"01JAB3XQ6T4E2K9V8N5M7P1R0S"`
	Username string `json:"username" example:"alice"`
}

// LoginResponse is returned by POST /v1/login. The same token is also set as
// the session cookie.
type LoginResponse struct {
	SessionToken string `json:"session_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type" example:"Bearer"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int `json:"expires_in" example:"86400"`

	UserID   string `json:"user_id" example:"01JAB3XQ6T4E2K9V8N5M7P1R0S"`
	Username string `json:"username" example:"alice"`
}

type ProfileResponse struct {
	UserID    string    `json:"user_id" example:"01JAB3XQ6T4E2K9V8N5M7P1R0S"`
	Username  string    `json:"username" example:"alice"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================================================================
// Scores
// ============================================================================

// ScoresResponse maps level to best score. Levels without a submission are
// absent.
type ScoresResponse struct {
	Scores map[int]int64 `json:"scores"`
}

type BestScoreResponse struct {
	Level     int   `json:"level" example:"3"`
	BestScore int64 `json:"best_score" example:"1200"`
}

type SubmitScoreRequest struct {
	Score int64 `json:"score" example:"1200"`
}

// SubmitScoreResponse reports whether the submission raised the stored best.
// BestScore is the stored best after the submission either way.
type SubmitScoreResponse struct {
	Level     int   `json:"level" example:"3"`
	Accepted  bool  `json:"accepted" example:"true"`
	BestScore int64 `json:"best_score" example:"1200"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime,omitempty" example:"1h23m45s"`
	Version string        `json:"version,omitempty" example:"v1.0.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database" example:"ok"`
}
