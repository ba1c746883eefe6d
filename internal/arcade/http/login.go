package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/arcade/internal/arcade/metrics"
	"github.com/aussiebroadwan/arcade/internal/arcade/service"
	"github.com/aussiebroadwan/arcade/pkg/arcadesdk"
	"github.com/aussiebroadwan/arcade/pkg/cryptox"
	"github.com/aussiebroadwan/arcade/pkg/httpx"
	"github.com/aussiebroadwan/arcade/pkg/jwtx"
	"github.com/aussiebroadwan/arcade/pkg/slogx"
)

type LoginHandler struct {
	Registry   *service.UserRegistry
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
	Cookie     httpx.SessionCookie
	Metrics    metrics.Recorder
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchange credentials for a session token. The token is returned in the body and also set as the arcade_session cookie.
//	@Description	Unknown usernames and wrong passwords produce the same response.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string					true	"Username"
//	@Param			password	formData	string					true	"Password"
//	@Success		200			{object}	arcadesdk.LoginResponse	"session_token, token_type, expires_in, user_id, username"
//	@Failure		400			{object}	arcadesdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	arcadesdk.ErrorResponse	"invalid credentials"
//	@Failure		503			{object}	arcadesdk.ErrorResponse	"storage unavailable"
//	@Header			200			{string}	Set-Cookie				"arcade_session"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		arcadesdk.ErrInvalidFormBody.WriteError(w)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := strings.TrimSpace(r.PostFormValue("password"))

	userID, err := h.Registry.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.Metrics.RecordLogin(metrics.OutcomeRejected)
			log.Info("login rejected")
		} else {
			h.Metrics.RecordLogin(metrics.OutcomeError)
		}
		writeServiceError(w, r, err)
		return
	}

	sid, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		h.Metrics.RecordLogin(metrics.OutcomeError)
		log.Error("failed to generate session id", "err", err)
		arcadesdk.ErrServerError.WriteError(w)
		return
	}

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(userID, username, sid, h.SessionTTL, h.Issuer, now)
	token, err := h.Signer.Sign(claims)
	if err != nil {
		h.Metrics.RecordLogin(metrics.OutcomeError)
		log.Error("failed to sign session", "err", err)
		arcadesdk.ErrServerError.WriteError(w)
		return
	}

	h.Metrics.RecordLogin(metrics.OutcomeSuccess)
	log.Info("user logged in", "user_id", userID, "sid", claims.SID)

	h.Cookie.Set(w, token, claims.ExpiresAt.Time)
	httpx.WriteJSON(w, http.StatusOK, arcadesdk.LoginResponse{
		SessionToken: token,
		TokenType:    "Bearer",
		ExpiresIn:    int(h.SessionTTL.Seconds()),
		UserID:       userID,
		Username:     username,
	})
}
