package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-team-keeper/internal/crypto"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/store"
	"github.com/MKhiriev/go-team-keeper/models"
)

// maxTeamCodeAttempts bounds the regeneration of colliding invite codes.
const maxTeamCodeAttempts = 5

// teamService implements [TeamService]. Membership changes that remove a
// user from a team purge the user's secrets on the team's credentials in
// the same transaction.
type teamService struct {
	repos      store.Repositories
	transactor store.Transactor
	codes      crypto.CodeGenerator

	logger *logger.Logger
}

func NewTeamService(storages *store.Storages, codes crypto.CodeGenerator, logger *logger.Logger) TeamService {
	return &teamService{
		repos:      storages.Repositories,
		transactor: storages.Transactor,
		codes:      codes,
		logger:     logger,
	}
}

// AddTeam creates a team with a fresh invite code and makes user its admin.
func (s *teamService) AddTeam(ctx context.Context, user models.User, req models.CreateTeamRequest) (models.Team, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= maxTeamCodeAttempts; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			log.Err(err).Str("func", "*teamService.AddTeam").Msg("error generating team code")
			return models.Team{}, err
		}

		var team models.Team
		err = s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
			var err error
			team, err = repos.Teams.CreateTeam(ctx, models.Team{Name: strings.TrimSpace(req.Name), Code: code})
			if err != nil {
				return err
			}
			return repos.Memberships.AddMembership(ctx, models.Membership{
				TeamID: team.TeamID,
				UserID: user.UserID,
				Role:   models.RoleAdmin,
			})
		})
		if errors.Is(err, store.ErrTeamCodeExists) {
			log.Warn().Int("attempt", attempt).Str("func", "*teamService.AddTeam").Msg("team code collision")
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*teamService.AddTeam").Msg("error creating team")
			return models.Team{}, err
		}

		return team, nil
	}

	return models.Team{}, ErrTeamCodeGeneration
}

// ApplyToTeam files an application of user to the team with code.
// Codes are matched case-insensitively.
func (s *teamService) ApplyToTeam(ctx context.Context, user models.User, code string) (models.MyApplication, error) {
	var application models.MyApplication
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		team, err := repos.Teams.FindTeamByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
		if errors.Is(err, store.ErrTeamNotFound) {
			return ErrInvalidTeamCode
		}
		if err != nil {
			return err
		}

		role, err := roleIn(ctx, repos, team.TeamID, user.UserID)
		if err != nil {
			return err
		}
		switch role {
		case models.RoleMember, models.RoleAdmin:
			return ErrAlreadyMember
		case models.RoleAwaiting:
			return ErrApplicationPending
		}

		err = repos.Memberships.AddMembership(ctx, models.Membership{
			TeamID: team.TeamID,
			UserID: user.UserID,
			Role:   models.RoleAwaiting,
		})
		if errors.Is(err, store.ErrMembershipExists) {
			return ErrApplicationPending
		}
		if err != nil {
			return err
		}

		application = myApplication(team)
		return nil
	})
	return application, err
}

// RespondToApplication accepts (with the requested role) or declines the
// application of userID to teamID. Only team admins may respond.
func (s *teamService) RespondToApplication(ctx context.Context, actor models.User, teamID, userID int64, action models.ApplicationAction) error {
	action = action.WithDefaults()
	switch action.Action {
	case models.ActionAccept:
		if action.Role != models.RoleMember && action.Role != models.RoleAdmin {
			return ErrInvalidRole
		}
	case models.ActionDecline:
	default:
		return ErrInvalidAction
	}

	return s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if _, err := findTeam(ctx, repos, teamID); err != nil {
			return err
		}
		if err := requireAdmin(ctx, repos, teamID, actor.UserID); err != nil {
			return err
		}

		var err error
		if action.Action == models.ActionAccept {
			err = repos.Memberships.UpdateRole(ctx, teamID, userID, models.RoleAwaiting, action.Role)
		} else {
			err = repos.Memberships.DeleteMembership(ctx, teamID, userID, models.RoleAwaiting)
		}
		if errors.Is(err, store.ErrMembershipNotFound) {
			return ErrApplicationNotFound
		}
		return err
	})
}

// QuitTeam removes the caller's member or admin role and purges the
// caller's secrets on the team's credentials.
func (s *teamService) QuitTeam(ctx context.Context, user models.User, teamID int64) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		err := repos.Memberships.DeleteMembership(ctx, teamID, user.UserID, models.RoleMember, models.RoleAdmin)
		if errors.Is(err, store.ErrMembershipNotFound) {
			return ErrNotTeamMember
		}
		if err != nil {
			return err
		}

		return purgeCredentials(ctx, repos, user.UserID, teamID)
	})
}

// RemoveTeamMember removes a plain member from the team and purges their
// secrets on the team's credentials. Admins cannot be removed this way.
func (s *teamService) RemoveTeamMember(ctx context.Context, actor models.User, teamID, userID int64) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := requireAdmin(ctx, repos, teamID, actor.UserID); err != nil {
			return err
		}

		err := repos.Memberships.DeleteMembership(ctx, teamID, userID, models.RoleMember)
		if errors.Is(err, store.ErrMembershipNotFound) {
			return ErrMemberNotFound
		}
		if err != nil {
			return err
		}

		return purgeCredentials(ctx, repos, userID, teamID)
	})
}

// GetMyTeams returns every team the user belongs to. Admins are always
// listed; members and applicants only for teams the user administers.
func (s *teamService) GetMyTeams(ctx context.Context, user models.User) ([]models.TeamDetailed, error) {
	teams, err := s.repos.Memberships.ListUserTeams(ctx, user.UserID, models.RoleMember, models.RoleAdmin)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*teamService.GetMyTeams").Msg("error listing teams")
		return nil, err
	}

	result := make([]models.TeamDetailed, 0, len(teams))
	for _, team := range teams {
		detailed, err := s.detailed(ctx, team.Team, team.Role == models.RoleAdmin)
		if err != nil {
			return nil, err
		}
		result = append(result, detailed)
	}
	return result, nil
}

func (s *teamService) GetMyApplications(ctx context.Context, user models.User) ([]models.MyApplication, error) {
	teams, err := s.repos.Memberships.ListUserTeams(ctx, user.UserID, models.RoleAwaiting)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*teamService.GetMyApplications").Msg("error listing applications")
		return nil, err
	}

	result := make([]models.MyApplication, 0, len(teams))
	for _, team := range teams {
		result = append(result, myApplication(team.Team))
	}
	return result, nil
}

// GetTeamApplications lists pending applications of teamID. Callers that
// do not administer the team get an empty list.
func (s *teamService) GetTeamApplications(ctx context.Context, user models.User, teamID int64) ([]models.TeamApplication, error) {
	team, err := findTeam(ctx, s.repos, teamID)
	if err != nil {
		return nil, err
	}

	result := make([]models.TeamApplication, 0)
	admin, err := isAdmin(ctx, s.repos, teamID, user.UserID)
	if err != nil || !admin {
		return result, err
	}

	applicants, err := s.repos.Memberships.ListTeamUsers(ctx, teamID, models.RoleAwaiting)
	if err != nil {
		return nil, err
	}
	for _, applicant := range applicants {
		result = append(result, models.TeamApplication{
			ApplicationID: models.ApplicationID(teamID, applicant.UserID),
			UserID:        applicant.UserID,
			Username:      applicant.Username,
			TeamID:        team.TeamID,
			TeamName:      team.Name,
		})
	}
	return result, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, user models.User, teamID int64) (models.TeamDetailed, error) {
	if teamID <= 0 {
		return models.TeamDetailed{}, ErrInvalidTeamID
	}

	team, err := s.repos.Teams.FindTeamByID(ctx, teamID)
	if errors.Is(err, store.ErrTeamNotFound) {
		return models.TeamDetailed{}, ErrInvalidTeamID
	}
	if err != nil {
		return models.TeamDetailed{}, err
	}

	if err = requireAdmin(ctx, s.repos, teamID, user.UserID); err != nil {
		return models.TeamDetailed{}, err
	}

	return s.detailed(ctx, team, true)
}

// detailed builds the view of team; members and applicants are only
// listed when full is set.
func (s *teamService) detailed(ctx context.Context, team models.Team, full bool) (models.TeamDetailed, error) {
	admins, err := s.repos.Memberships.ListTeamUsers(ctx, team.TeamID, models.RoleAdmin)
	if err != nil {
		return models.TeamDetailed{}, err
	}

	result := models.TeamDetailed{
		TeamID:   team.TeamID,
		Name:     team.Name,
		Code:     team.Code,
		Members:  []models.TeamUser{},
		Admins:   admins,
		Awaiting: []models.TeamUser{},
	}
	if !full {
		return result, nil
	}

	if result.Members, err = s.repos.Memberships.ListTeamUsers(ctx, team.TeamID, models.RoleMember); err != nil {
		return models.TeamDetailed{}, err
	}
	if result.Awaiting, err = s.repos.Memberships.ListTeamUsers(ctx, team.TeamID, models.RoleAwaiting); err != nil {
		return models.TeamDetailed{}, err
	}
	return result, nil
}

func findTeam(ctx context.Context, repos store.Repositories, teamID int64) (models.Team, error) {
	team, err := repos.Teams.FindTeamByID(ctx, teamID)
	if errors.Is(err, store.ErrTeamNotFound) {
		return models.Team{}, ErrTeamNotFound
	}
	return team, err
}

func requireAdmin(ctx context.Context, repos store.Repositories, teamID, userID int64) error {
	admin, err := isAdmin(ctx, repos, teamID, userID)
	if err != nil {
		return err
	}
	if !admin {
		return ErrNotPermitted
	}
	return nil
}

func myApplication(team models.Team) models.MyApplication {
	return models.MyApplication{
		TeamID:          team.TeamID,
		TeamName:        team.Name,
		TeamCode:        team.Code,
		ApplicationDate: models.ApplicationStatusPending,
	}
}
