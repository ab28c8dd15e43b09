// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Role is the state of a user inside a team. A user holds at most one role
// per team; having no membership row means the user is not related to it.
type Role string

const (
	// RoleAwaiting marks a pending application.
	RoleAwaiting Role = "awaiting"
	// RoleMember is a regular team member.
	RoleMember Role = "member"
	// RoleAdmin administers the team and its shared credentials.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAwaiting, RoleMember, RoleAdmin:
		return true
	}
	return false
}

// BelongsToTeam reports whether r grants access to team credentials.
func (r Role) BelongsToTeam() bool {
	return r == RoleMember || r == RoleAdmin
}

// Team is a named group of users sharing credentials. Code is the invite
// code users apply with; it is unique and stored uppercase.
type Team struct {
	TeamID int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// TableName returns the name of the database table
// associated with the Team model.
func (t Team) TableName() string {
	return "teams"
}

// Public returns the outbound view of the team.
func (t Team) Public() TeamPublic {
	return TeamPublic{TeamID: t.TeamID, Name: t.Name, Code: t.Code}
}

// TeamPublic is the minimal outbound view of a team.
type TeamPublic struct {
	TeamID int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// Membership links a user to a team with a role.
type Membership struct {
	TeamID int64 `json:"team_id"`
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
}

// TableName returns the name of the database table
// associated with the Membership model.
func (m Membership) TableName() string {
	return "team_memberships"
}

// TeamWithRole is a team together with the role a given user holds in it.
type TeamWithRole struct {
	Team
	Role Role
}

// TeamUser is a team participant as shown in team views.
type TeamUser struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// TeamDetailed is a team with its participants. Members and Awaiting are
// filled only when the viewer administers the team.
type TeamDetailed struct {
	TeamID   int64      `json:"id"`
	Name     string     `json:"name"`
	Code     string     `json:"code"`
	Members  []TeamUser `json:"members"`
	Admins   []TeamUser `json:"admins"`
	Awaiting []TeamUser `json:"awaiting"`
}

// CreateTeamRequest is the body of POST /api/teams/.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// TeamApplicationRequest is the body of POST /api/teams/applications.
type TeamApplicationRequest struct {
	TeamCode string `json:"team_code"`
}

// TeamApplication is a pending application as seen by a team admin.
type TeamApplication struct {
	ApplicationID string `json:"application_id"`
	UserID        int64  `json:"user_id"`
	Username      string `json:"username"`
	TeamID        int64  `json:"team_id"`
	TeamName      string `json:"team_name"`
}

// ApplicationID formats the identifier of the application of userID to teamID.
func ApplicationID(teamID, userID int64) string {
	return fmt.Sprintf("%d_%d", teamID, userID)
}

// ApplicationStatusPending is the only status an application can be observed in.
const ApplicationStatusPending = "pending"

// MyApplication is a pending application as seen by the applicant.
type MyApplication struct {
	TeamID          int64  `json:"team_id"`
	TeamName        string `json:"team_name"`
	TeamCode        string `json:"team_code"`
	ApplicationDate string `json:"application_date"`
}

// Application actions.
const (
	ActionAccept  = "accept"
	ActionDecline = "decline"
)

// ApplicationAction is the admin's decision on an application. Empty fields
// default to a declined application and the member role.
type ApplicationAction struct {
	Action string `json:"action"`
	Role   Role   `json:"role"`
}

// WithDefaults fills unset fields.
func (a ApplicationAction) WithDefaults() ApplicationAction {
	if a.Action == "" {
		a.Action = ActionDecline
	}
	if a.Role == "" {
		a.Role = RoleMember
	}
	return a
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
