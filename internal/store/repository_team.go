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

type teamRepository struct {
	db   *DB
	conn DBTX
}

// CreateTeam inserts team; a taken invite code yields [ErrTeamCodeExists].
func (r *teamRepository) CreateTeam(ctx context.Context, team models.Team) (models.Team, error) {
	query, args, err := r.db.builder.Insert("teams").
		Columns("name", "code").
		Values(team.Name, team.Code).
		Suffix("RETURNING team_id").
		ToSql()
	if err != nil {
		return models.Team{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.conn.QueryRowContext(ctx, query, args...).Scan(&team.TeamID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Team{}, ErrTeamCodeExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*teamRepository.CreateTeam").Msg("error inserting team")
		return models.Team{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return team, nil
}

func (r *teamRepository) FindTeamByID(ctx context.Context, teamID int64) (models.Team, error) {
	return r.findTeam(ctx, sq.Eq{"team_id": teamID})
}

// FindTeamByCode matches the stored (uppercase) code exactly.
func (r *teamRepository) FindTeamByCode(ctx context.Context, code string) (models.Team, error) {
	return r.findTeam(ctx, sq.Eq{"code": code})
}

func (r *teamRepository) findTeam(ctx context.Context, where sq.Sqlizer) (models.Team, error) {
	query, args, err := buildFindTeamQuery(r.db.builder, where)
	if err != nil {
		return models.Team{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	team, err := scanTeam(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Team{}, ErrTeamNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*teamRepository.findTeam").Msg("error finding team")
		return models.Team{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return team, nil
}
