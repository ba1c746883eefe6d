package httpx

import (
	"context"

	"github.com/aussiebroadwan/arcade/pkg/jwtx"
)

type ctxKey string

const CtxKeyUserID ctxKey = "user_id"

func contextWithSession(ctx context.Context, c jwtx.Claims) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, c.Subject)
}

// UserIDFromContext returns the user id set by RequireSession.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	return id, ok && id != ""
}
