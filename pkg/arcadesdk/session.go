package arcadesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// ErrSessionExpired is returned locally, without a request, once the
// session token's lifetime has passed.
var ErrSessionExpired = errors.New("arcadesdk: session expired, log in again")

// Session is a logged-in player.
type Session struct {
	client *Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	userID    string
	username  string
}

func newSession(c *Client, resp *LoginResponse) *Session {
	return &Session{
		client:    c,
		token:     resp.SessionToken,
		expiresAt: time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		userID:    resp.UserID,
		username:  resp.Username,
	}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Expired reports whether the token has passed its expiry or was logged out.
func (s *Session) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return true
	}
	return !s.expiresAt.IsZero() && !time.Now().Before(s.expiresAt)
}

func (s *Session) validToken() (string, error) {
	if s.Expired() {
		return "", ErrSessionExpired
	}
	return s.Token(), nil
}

func (s *Session) do(ctx context.Context, method, path string, body []byte, headers map[string]string) (*http.Response, error) {
	token, err := s.validToken()
	if err != nil {
		return nil, err
	}

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	return s.client.doRequest(ctx, method, path, rdr, headers, token)
}

// Profile returns the logged-in user.
func (s *Session) Profile(ctx context.Context) (*ProfileResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/profile", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.userID, s.username = out.UserID, out.Username
	s.mu.Unlock()
	return &out, nil
}

// Scores returns the best score for every level the player has submitted.
func (s *Session) Scores(ctx context.Context) (map[int]int64, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/scores", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ScoresResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if out.Scores == nil {
		out.Scores = map[int]int64{}
	}
	return out.Scores, nil
}

// BestScore returns the player's best for level, 0 if never submitted.
func (s *Session) BestScore(ctx context.Context, level int) (int64, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/scores/"+strconv.Itoa(level), nil, nil)
	if err != nil {
		return 0, err
	}

	var out BestScoreResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return 0, err
	}
	return out.BestScore, nil
}

// SubmitScore records score for level.
func (s *Session) SubmitScore(ctx context.Context, level int, score int64) (*SubmitScoreResponse, error) {
	body, err := json.Marshal(SubmitScoreRequest{Score: score})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	headers := map[string]string{"Content-Type": "application/json"}
	resp, err := s.do(ctx, http.MethodPost, "/v1/scores/"+strconv.Itoa(level), body, headers)
	if err != nil {
		return nil, err
	}

	var out SubmitScoreResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout tells the server to clear the session cookie and forgets the token
// locally. Bearer tokens stay valid until expiry; the server keeps no
// session state to revoke.
func (s *Session) Logout(ctx context.Context) error {
	token, err := s.validToken()
	if err != nil {
		return err
	}

	resp, err := s.client.doRequest(ctx, http.MethodPost, "/v1/logout", nil, nil, token)
	if err != nil {
		return err
	}
	if err := checkStatusNoContent(resp); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
