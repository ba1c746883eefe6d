package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/arcade/internal/arcade/service"
	"github.com/aussiebroadwan/arcade/pkg/arcadesdk"
	"github.com/aussiebroadwan/arcade/pkg/slogx"
)

// writeServiceError maps a service error onto the API error it surfaces as.
// Errors without a mapping are logged and returned as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		arcadesdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrDuplicateUsername):
		arcadesdk.ErrUsernameTaken.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		arcadesdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		arcadesdk.ErrInvalidSession.WriteError(w)
	case errors.Is(err, service.ErrStorageUnavailable):
		log.Error("storage unavailable", "err", err)
		arcadesdk.ErrStorageUnavailable.WriteError(w)
	default:
		log.Error("unhandled error", "err", err)
		arcadesdk.ErrServerError.WriteError(w)
	}
}
