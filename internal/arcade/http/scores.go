package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/arcade/internal/arcade/metrics"
	"github.com/aussiebroadwan/arcade/internal/arcade/service"
	"github.com/aussiebroadwan/arcade/pkg/arcadesdk"
	"github.com/aussiebroadwan/arcade/pkg/httpx"
	"github.com/aussiebroadwan/arcade/pkg/slogx"
)

// maxScoreBody bounds the submit request body.
const maxScoreBody = 1 << 10

type ScoresHandler struct {
	Ledger  *service.ScoreLedger
	Cookie  httpx.SessionCookie
	Metrics metrics.Recorder
}

// HandleList godoc
//
//	@Summary		All best scores
//	@Description	Best score per level for the logged-in player. Levels never played are absent.
//	@Tags			Scores
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	arcadesdk.ScoresResponse	"scores"
//	@Failure		401	{object}	arcadesdk.ErrorResponse		"invalid session"
//	@Failure		503	{object}	arcadesdk.ErrorResponse		"storage unavailable"
//	@Router			/v1/scores [get].
func (h *ScoresHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		arcadesdk.ErrInvalidSession.WriteError(w)
		return
	}

	scores, err := h.Ledger.GetAllBestScores(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, arcadesdk.ScoresResponse{Scores: scores})
}

// HandleGet godoc
//
//	@Summary		Best score for a level
//	@Description	Returns 0 when the player has not submitted a score for the level yet.
//	@Tags			Scores
//	@Produce		json
//	@Security		BearerAuth
//	@Param			level	path		int							true	"Level, starting at 1"
//	@Success		200		{object}	arcadesdk.BestScoreResponse	"level, best_score"
//	@Failure		400		{object}	arcadesdk.ErrorResponse		"invalid level"
//	@Failure		401		{object}	arcadesdk.ErrorResponse		"invalid session"
//	@Router			/v1/scores/{level} [get].
func (h *ScoresHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		arcadesdk.ErrInvalidSession.WriteError(w)
		return
	}

	level, ok := parseLevel(r)
	if !ok {
		arcadesdk.ErrInvalidLevel.WriteError(w)
		return
	}

	best, err := h.Ledger.GetBestScore(r.Context(), userID, level)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, arcadesdk.BestScoreResponse{Level: level, BestScore: best})
}

// HandleSubmit godoc
//
//	@Summary		Submit a score
//	@Description	Raises the stored best for the level when the score is higher. accepted is false when the stored best was not beaten; best_score is the stored best either way.
//	@Tags			Scores
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Security		BearerAuth
//	@Param			level	path		int								true	"Level, starting at 1"
//	@Param			request	body		arcadesdk.SubmitScoreRequest	true	"score (also accepted as a form field)"
//	@Success		200		{object}	arcadesdk.SubmitScoreResponse	"level, accepted, best_score"
//	@Failure		400		{object}	arcadesdk.ErrorResponse			"invalid level or score"
//	@Failure		401		{object}	arcadesdk.ErrorResponse			"invalid session"
//	@Failure		503		{object}	arcadesdk.ErrorResponse			"storage unavailable"
//	@Router			/v1/scores/{level} [post].
func (h *ScoresHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		arcadesdk.ErrInvalidSession.WriteError(w)
		return
	}

	level, ok := parseLevel(r)
	if !ok {
		arcadesdk.ErrInvalidLevel.WriteError(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxScoreBody)
	score, ok := parseScore(r)
	if !ok {
		arcadesdk.ErrInvalidScore.WriteError(w)
		return
	}

	res, err := h.Ledger.SubmitScore(ctx, userID, level, score)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			log.Info("score submitted for a removed user")
			h.Cookie.Clear(w)
		}
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.RecordScoreSubmission(res.Accepted)
	log.Debug("score submitted", "level", level, "score", score, "accepted", res.Accepted, "best_score", res.BestScore)

	httpx.WriteJSON(w, http.StatusOK, arcadesdk.SubmitScoreResponse{
		Level:     level,
		Accepted:  res.Accepted,
		BestScore: res.BestScore,
	})
}

func parseLevel(r *http.Request) (int, bool) {
	level, err := strconv.ParseInt(r.PathValue("level"), 10, 32)
	if err != nil || level < 1 {
		return 0, false
	}
	return int(level), true
}

// parseScore reads score from a JSON body or a form field.
func parseScore(r *http.Request) (int64, bool) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var req struct {
			Score *int64 `json:"score"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score == nil {
			return 0, false
		}
		return *req.Score, *req.Score >= 0
	}

	if err := r.ParseForm(); err != nil {
		return 0, false
	}
	score, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("score")), 10, 64)
	if err != nil || score < 0 {
		return 0, false
	}
	return score, true
}
