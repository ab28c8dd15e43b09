package http

import (
	"net/http"

	"github.com/MKhiriev/go-team-keeper/internal/utils"
	"github.com/MKhiriev/go-team-keeper/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listUsers")
		return
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetMe(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, err, "*Handler.getMe")
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.getUser")
		return
	}

	user, err := h.services.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getUser")
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.changePassword")
		return
	}

	if err := h.services.UserService.ChangePassword(r.Context(), currentUser(r), req); err != nil {
		writeError(w, r, err, "*Handler.changePassword")
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: "Password changed successfully"}, http.StatusOK)
}

func (h *Handler) changeKeys(w http.ResponseWriter, r *http.Request) {
	var req models.ChangeKeysRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.changeKeys")
		return
	}

	user, err := h.services.UserService.ChangeKeys(r.Context(), currentUser(r), req)
	if err != nil {
		writeError(w, r, err, "*Handler.changeKeys")
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}
