package http

import (
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/utils"
	"github.com/MKhiriev/go-team-keeper/models"
)

// register creates a user account. POST /api/users/
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusOK)
}

// login accepts a JSON body or an OAuth2-style password form. The session
// token is returned in the body, the Authorization header and the session
// cookie.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := loginRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	public, err := h.services.UserService.GetMe(ctx, user)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.String()))
	http.SetCookie(w, sessionCookie(token.String(), int(token.TTL(time.Now()).Seconds())))

	logger.FromRequest(r).Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.String(),
		TokenType:   "bearer",
		User:        public,
	}, http.StatusOK)
}

// logout clears the session cookie. Bearer tokens stay valid until expiry.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, sessionCookie("", -1))
	utils.WriteJSON(w, models.MessageResponse{Message: "Logged out successfully"}, http.StatusOK)
}

func loginRequest(r *http.Request) (models.LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" && mediaType != "multipart/form-data" {
		var req models.LoginRequest
		err := decodeJSON(r, &req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return models.LoginRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return models.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}

// sessionCookie builds the session cookie; a negative maxAge deletes it.
func sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
