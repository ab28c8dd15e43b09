package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/utils"
	"github.com/MKhiriev/go-team-keeper/models"
)

// auth resolves the session token to a user and stores it in the request
// context (see [utils.WithUser]). The token is taken from the
// "Authorization: Bearer" header, or from the session cookie when the
// header is absent. Requests without a valid token get 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := sessionToken(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.auth").Msg("no session token")
			utils.WriteDetail(w, ErrNoCredentials.Error(), http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx := utils.WithUser(r.Context(), user)
		log := logger.FromContext(ctx).With().Int64("user_id", user.UserID).Logger()

		next.ServeHTTP(w, r.WithContext(log.WithContext(ctx)))
	})
}

func sessionToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return utils.ParseBearerToken(header)
	}

	cookie, err := r.Cookie(models.SessionCookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
		return "", ErrNoCredentials
	}
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
