package http

import (
	"net/http"

	"github.com/aussiebroadwan/arcade/pkg/httpx"
)

// LogoutHandler godoc
//
//	@Summary		Log out
//	@Description	Clear the session cookie. Sessions are stateless, so a bearer token stays valid until it expires.
//	@Tags			Accounts
//	@Success		204
//	@Router			/v1/logout [post].
func LogoutHandler(cookie httpx.SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie.Clear(w)
		httpx.NoCache(w)
		w.WriteHeader(http.StatusNoContent)
	}
}
