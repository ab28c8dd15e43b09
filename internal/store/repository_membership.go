package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/models"
)

// membershipRepository implements [MembershipRepository] over
// "team_memberships". The (team_id, user_id) primary key keeps a user in at
// most one role per team.
type membershipRepository struct {
	db   *DB
	conn DBTX
}

// AddMembership inserts the row. A user already holding any role in the
// team yields [ErrMembershipExists]; an unknown team yields [ErrTeamNotFound].
func (r *membershipRepository) AddMembership(ctx context.Context, membership models.Membership) error {
	query, args, err := r.db.builder.Insert("team_memberships").
		Columns("team_id", "user_id", "role").
		Values(membership.TeamID, membership.UserID, string(membership.Role)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		switch {
		case r.db.errorClassificator.IsUniqueViolation(err):
			return ErrMembershipExists
		case r.db.errorClassificator.IsForeignKeyViolation(err):
			return ErrTeamNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*membershipRepository.AddMembership").Msg("error inserting membership")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *membershipRepository) FindMembership(ctx context.Context, teamID, userID int64) (models.Membership, error) {
	query, args, err := r.db.builder.Select("team_id", "user_id", "role").
		From("team_memberships").
		Where(sq.Eq{"team_id": teamID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Membership{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		m    models.Membership
		role string
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&m.TeamID, &m.UserID, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Membership{}, ErrMembershipNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*membershipRepository.FindMembership").Msg("error finding membership")
		return models.Membership{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	m.Role = models.Role(role)

	return m, nil
}

// UpdateRole moves the membership from role from to role to. Fails with
// [ErrMembershipNotFound] when the user does not hold role from.
func (r *membershipRepository) UpdateRole(ctx context.Context, teamID, userID int64, from, to models.Role) error {
	query, args, err := r.db.builder.Update("team_memberships").
		Set("role", string(to)).
		Where(sq.Eq{"team_id": teamID, "user_id": userID, "role": string(from)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := execAffecting(ctx, r.conn, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*membershipRepository.UpdateRole").Msg("error updating role")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrMembershipNotFound
	}

	return nil
}

// DeleteMembership removes the user's row when its role is one of roles.
func (r *membershipRepository) DeleteMembership(ctx context.Context, teamID, userID int64, roles ...models.Role) error {
	query, args, err := buildDeleteMembershipQuery(r.db.builder, teamID, userID, roles)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := execAffecting(ctx, r.conn, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*membershipRepository.DeleteMembership").Msg("error deleting membership")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrMembershipNotFound
	}

	return nil
}

func (r *membershipRepository) ListUserTeams(ctx context.Context, userID int64, roles ...models.Role) ([]models.TeamWithRole, error) {
	query, args, err := buildListUserTeamsQuery(r.db.builder, userID, roles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	teams, err := queryAll(ctx, r.conn, query, args, func(row rowScanner) (models.TeamWithRole, error) {
		var (
			t    models.TeamWithRole
			role string
		)
		err := row.Scan(&t.TeamID, &t.Name, &t.Code, &role)
		t.Role = models.Role(role)
		return t, err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*membershipRepository.ListUserTeams").Msg("error listing teams")
		return nil, err
	}

	return teams, nil
}

func (r *membershipRepository) ListTeamUsers(ctx context.Context, teamID int64, roles ...models.Role) ([]models.TeamUser, error) {
	query, args, err := buildListTeamUsersQuery(r.db.builder, teamID, roles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users, err := queryAll(ctx, r.conn, query, args, func(row rowScanner) (models.TeamUser, error) {
		var u models.TeamUser
		err := row.Scan(&u.UserID, &u.Username)
		return u, err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*membershipRepository.ListTeamUsers").Msg("error listing team users")
		return nil, err
	}

	return users, nil
}
