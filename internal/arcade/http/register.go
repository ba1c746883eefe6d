package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/arcade/internal/arcade/metrics"
	"github.com/aussiebroadwan/arcade/internal/arcade/service"
	"github.com/aussiebroadwan/arcade/pkg/arcadesdk"
	"github.com/aussiebroadwan/arcade/pkg/httpx"
	"github.com/aussiebroadwan/arcade/pkg/slogx"
)

type RegisterHandler struct {
	Registry *service.UserRegistry
	Metrics  metrics.Recorder
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Create a player account. Usernames are case-sensitive and unique.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string						true	"Desired username"
//	@Param			password	formData	string						true	"Password"
//	@Success		201			{object}	arcadesdk.RegisterResponse	"user_id, username"
//	@Failure		400			{object}	arcadesdk.ErrorResponse		"error, error_description"
//	@Failure		409			{object}	arcadesdk.ErrorResponse		"username taken"
//	@Failure		503			{object}	arcadesdk.ErrorResponse		"storage unavailable"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		arcadesdk.ErrInvalidFormBody.WriteError(w)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := strings.TrimSpace(r.PostFormValue("password"))

	userID, err := h.Registry.Register(r.Context(), username, password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrDuplicateUsername):
		h.Metrics.RecordRegistration(metrics.OutcomeRejected)
		writeServiceError(w, r, err)
		return
	default:
		h.Metrics.RecordRegistration(metrics.OutcomeError)
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.RecordRegistration(metrics.OutcomeSuccess)
	log.Info("user registered", "user_id", userID)

	httpx.WriteJSON(w, http.StatusCreated, arcadesdk.RegisterResponse{
		UserID:   userID,
		Username: username,
	})
}
