package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/utils"
	"github.com/MKhiriev/go-team-keeper/models"
)

func (h *Handler) listMyTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.services.TeamService.GetMyTeams(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, err, "*Handler.listMyTeams")
		return
	}
	utils.WriteJSON(w, teams, http.StatusOK)
}

func (h *Handler) addTeam(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.addTeam")
		return
	}

	team, err := h.services.TeamService.AddTeam(r.Context(), currentUser(r), req)
	if err != nil {
		writeError(w, r, err, "*Handler.addTeam")
		return
	}
	utils.WriteJSON(w, team.Public(), http.StatusOK)
}

func (h *Handler) applyToTeam(w http.ResponseWriter, r *http.Request) {
	var req models.TeamApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.applyToTeam")
		return
	}

	application, err := h.services.TeamService.ApplyToTeam(r.Context(), currentUser(r), req.TeamCode)
	if err != nil {
		writeError(w, r, err, "*Handler.applyToTeam")
		return
	}

	logger.FromRequest(r).Info().Int64("team_id", application.TeamID).Msg("application submitted")
	utils.WriteJSON(w, models.MessageResponse{Message: "Application submitted successfully"}, http.StatusOK)
}

func (h *Handler) listMyApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.services.TeamService.GetMyApplications(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, err, "*Handler.listMyApplications")
		return
	}
	utils.WriteJSON(w, applications, http.StatusOK)
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.getTeam")
		return
	}

	team, err := h.services.TeamService.GetTeamByID(r.Context(), currentUser(r), teamID)
	if err != nil {
		writeError(w, r, err, "*Handler.getTeam")
		return
	}
	utils.WriteJSON(w, team, http.StatusOK)
}

func (h *Handler) listTeamApplications(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "team_id")
	if err != nil {
		writeError(w, r, err, "*Handler.listTeamApplications")
		return
	}

	applications, err := h.services.TeamService.GetTeamApplications(r.Context(), currentUser(r), teamID)
	if err != nil {
		writeError(w, r, err, "*Handler.listTeamApplications")
		return
	}
	utils.WriteJSON(w, applications, http.StatusOK)
}

func (h *Handler) respondToApplication(w http.ResponseWriter, r *http.Request) {
	teamID, userID, err := teamAndUser(r)
	if err != nil {
		writeError(w, r, err, "*Handler.respondToApplication")
		return
	}

	var action models.ApplicationAction
	if err = decodeJSON(r, &action); err != nil {
		writeError(w, r, err, "*Handler.respondToApplication")
		return
	}

	if err = h.services.TeamService.RespondToApplication(r.Context(), currentUser(r), teamID, userID, action); err != nil {
		writeError(w, r, err, "*Handler.respondToApplication")
		return
	}

	action = action.WithDefaults()
	message := "Application declined"
	if action.Action == models.ActionAccept {
		message = fmt.Sprintf("User accepted as %s", action.Role)
	}
	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}

func (h *Handler) removeTeamMember(w http.ResponseWriter, r *http.Request) {
	teamID, userID, err := teamAndUser(r)
	if err != nil {
		writeError(w, r, err, "*Handler.removeTeamMember")
		return
	}

	if err = h.services.TeamService.RemoveTeamMember(r.Context(), currentUser(r), teamID, userID); err != nil {
		writeError(w, r, err, "*Handler.removeTeamMember")
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: "Member removed from team successfully"}, http.StatusOK)
}

func (h *Handler) quitTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "team_id")
	if err != nil {
		writeError(w, r, err, "*Handler.quitTeam")
		return
	}

	if err = h.services.TeamService.QuitTeam(r.Context(), currentUser(r), teamID); err != nil {
		writeError(w, r, err, "*Handler.quitTeam")
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: "Member removed from team successfully"}, http.StatusOK)
}

func teamAndUser(r *http.Request) (teamID, userID int64, err error) {
	if teamID, err = pathID(r, "team_id"); err != nil {
		return 0, 0, err
	}
	if userID, err = pathID(r, "user_id"); err != nil {
		return 0, 0, err
	}
	return teamID, userID, nil
}
