package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-team-keeper/internal/utils"
	"github.com/MKhiriev/go-team-keeper/models"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the positive integer path parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPathParam, name)
	}
	return id, nil
}

// currentUser returns the user the auth middleware resolved. Routes using
// it are always behind that middleware.
func currentUser(r *http.Request) models.User {
	user, _ := utils.GetUserFromContext(r.Context())
	return user
}
