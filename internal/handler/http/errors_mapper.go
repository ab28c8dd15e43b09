package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/service"
	"github.com/MKhiriev/go-team-keeper/internal/store"
	"github.com/MKhiriev/go-team-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalid:      http.StatusBadRequest,
	service.ErrUnauthorized: http.StatusUnauthorized,
	service.ErrForbidden:    http.StatusForbidden,
	service.ErrNotFound:     http.StatusNotFound,
	service.ErrConflict:     http.StatusConflict,

	ErrNoCredentials:        http.StatusUnauthorized,
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrInvalidPathParam:     http.StatusBadRequest,
	ErrIntegrityCheckFailed: http.StatusBadRequest,

	store.ErrCredentialGroupExists: http.StatusConflict,
	store.ErrSecretAlreadyExists:   http.StatusConflict,
	store.ErrLoginAlreadyExists:    http.StatusConflict,
	store.ErrTeamCodeExists:        http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status err maps to. Messages of unexpected
// errors are not shown to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("unexpected error")
		utils.WriteDetail(w, http.StatusText(status), status)
		return
	}

	logger.FromRequest(r).Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	utils.WriteDetail(w, err.Error(), status)
}
