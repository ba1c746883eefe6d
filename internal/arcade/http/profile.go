package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/arcade/internal/arcade/service"
	"github.com/aussiebroadwan/arcade/pkg/arcadesdk"
	"github.com/aussiebroadwan/arcade/pkg/httpx"
)

type ProfileHandler struct {
	Registry *service.UserRegistry
	Cookie   httpx.SessionCookie
}

// ServeHTTP godoc
//
//	@Summary		Profile
//	@Description	The logged-in player.
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	arcadesdk.ProfileResponse	"user_id, username, created_at"
//	@Failure		401	{object}	arcadesdk.ErrorResponse		"invalid session"
//	@Router			/v1/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		arcadesdk.ErrInvalidSession.WriteError(w)
		return
	}

	u, err := h.Registry.Lookup(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.Cookie.Clear(w)
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, arcadesdk.ProfileResponse{
		UserID:    u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	})
}
