package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/arcade/pkg/idx"
	"github.com/aussiebroadwan/arcade/pkg/jwtx"
	"github.com/aussiebroadwan/arcade/pkg/slogx"
)

// LivenessChecker reports whether a user id from a verified token still
// refers to a stored user.
type LivenessChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// SessionToken returns the bearer token if present, else the cookie value.
func SessionToken(r *http.Request, cookie SessionCookie) (token string, fromCookie bool) {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer ")), false
	}
	if v := cookie.Read(r); v != "" {
		return v, true
	}
	return "", false
}

// RequireSession verifies the session token and then checks that its user
// still exists. A deleted user invalidates the session: the cookie is
// cleared and the request gets 401. A store failure during the check is 503
// so an outage never logs players out.
func RequireSession(v jwtx.Verifier, live LivenessChecker, cookie SessionCookie) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, fromCookie := SessionToken(r, cookie)
			if raw == "" {
				writeSessionError(w, "missing session")
				return
			}

			reject := func(desc string) {
				if fromCookie {
					cookie.Clear(w)
				}
				writeSessionError(w, desc)
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Debug("session verify failed", "err", err)
				reject("session verification failed")
				return
			}

			if !idx.Valid(claims.Subject) {
				log.Warn("session subject is not a user id", "sub", claims.Subject)
				reject("session verification failed")
				return
			}

			ok, err := live.Exists(ctx, claims.Subject)
			if err != nil {
				log.Error("session liveness check failed", "err", err)
				writeError(w, http.StatusServiceUnavailable, "storage_unavailable", "storage is temporarily unavailable")
				return
			}
			if !ok {
				log.Info("session refers to a removed user", "user_id", claims.Subject)
				reject("session user no longer exists")
				return
			}

			ctx = contextWithSession(ctx, claims)
			ctx = slogx.WithUserID(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeSessionError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	writeError(w, http.StatusUnauthorized, "invalid_session", desc)
}
