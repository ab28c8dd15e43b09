package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-team-keeper/internal/utils"
	"github.com/MKhiriev/go-team-keeper/models"
)

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	credentials, err := h.services.CredentialService.GetMine(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, err, "*Handler.listCredentials")
		return
	}
	utils.WriteJSON(w, credentials, http.StatusOK)
}

func (h *Handler) addCredential(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialCreate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.addCredential")
		return
	}

	credential, err := h.services.CredentialService.AddCredential(r.Context(), currentUser(r), req)
	if err != nil {
		writeError(w, r, err, "*Handler.addCredential")
		return
	}
	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) updateCredentialBatch(w http.ResponseWriter, r *http.Request) {
	var patches []models.CredentialUpdate
	if err := decodeJSON(r, &patches); err != nil {
		writeError(w, r, err, "*Handler.updateCredentialBatch")
		return
	}

	credentials, err := h.services.CredentialService.UpdateBatch(r.Context(), currentUser(r), patches)
	if err != nil {
		writeError(w, r, err, "*Handler.updateCredentialBatch")
		return
	}
	utils.WriteJSON(w, credentials, http.StatusOK)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	credentialID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.getCredential")
		return
	}

	credential, err := h.services.CredentialService.GetByID(r.Context(), currentUser(r), credentialID)
	if err != nil {
		writeError(w, r, err, "*Handler.getCredential")
		return
	}
	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	credentialID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.updateCredential")
		return
	}

	var patch models.CredentialUpdate
	if err = decodeJSON(r, &patch); err != nil {
		writeError(w, r, err, "*Handler.updateCredential")
		return
	}

	credential, err := h.services.CredentialService.UpdateOne(r.Context(), currentUser(r), credentialID, patch)
	if err != nil {
		writeError(w, r, err, "*Handler.updateCredential")
		return
	}
	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	credentialID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.deleteCredential")
		return
	}

	if err = h.services.CredentialService.DeleteOne(r.Context(), currentUser(r), credentialID); err != nil {
		writeError(w, r, err, "*Handler.deleteCredential")
		return
	}
	utils.WriteDetail(w, "Credential deleted successfully", http.StatusOK)
}

func (h *Handler) getCredentialGroup(w http.ResponseWriter, r *http.Request) {
	credentials, err := h.services.CredentialService.GetByGroup(r.Context(), currentUser(r), chi.URLParam(r, "group"))
	if err != nil {
		writeError(w, r, err, "*Handler.getCredentialGroup")
		return
	}
	utils.WriteJSON(w, credentials, http.StatusOK)
}

func (h *Handler) updateCredentialGroup(w http.ResponseWriter, r *http.Request) {
	var patch models.CredentialUpdate
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err, "*Handler.updateCredentialGroup")
		return
	}

	credential, err := h.services.CredentialService.UpdateGroup(r.Context(), currentUser(r), chi.URLParam(r, "group"), patch)
	if err != nil {
		writeError(w, r, err, "*Handler.updateCredentialGroup")
		return
	}
	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) deleteCredentialGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CredentialService.DeleteGroup(r.Context(), currentUser(r), chi.URLParam(r, "group")); err != nil {
		writeError(w, r, err, "*Handler.deleteCredentialGroup")
		return
	}
	utils.WriteDetail(w, "All credentials in the group deleted successfully", http.StatusOK)
}
