package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-team-keeper/internal/validators"
	"github.com/MKhiriev/go-team-keeper/models"
)

// CredentialValidationService rejects malformed credential requests before
// they reach the wrapped service. Methods it does not override are served
// by the embedded service.
type CredentialValidationService struct {
	CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CredentialValidationService) Wrap(inner CredentialService) CredentialService {
	v.CredentialService = inner
	return v
}

func (v *CredentialValidationService) AddCredential(ctx context.Context, user models.User, data models.CredentialCreate) (models.CredentialPublic, error) {
	if err := v.validator.Validate(ctx, data); err != nil {
		return models.CredentialPublic{}, invalid(err)
	}
	return v.CredentialService.AddCredential(ctx, user, data)
}

func (v *CredentialValidationService) UpdateOne(ctx context.Context, user models.User, credentialID int64, patch models.CredentialUpdate) (models.CredentialPublic, error) {
	if err := v.validator.Validate(ctx, patch, validators.FieldUserID); err != nil {
		return models.CredentialPublic{}, invalid(err)
	}
	return v.CredentialService.UpdateOne(ctx, user, credentialID, patch)
}

func (v *CredentialValidationService) UpdateGroup(ctx context.Context, user models.User, group string, patch models.CredentialUpdate) (models.CredentialPublic, error) {
	if err := v.validator.Validate(ctx, patch, validators.FieldUserID); err != nil {
		return models.CredentialPublic{}, invalid(err)
	}
	return v.CredentialService.UpdateGroup(ctx, user, group, patch)
}

func (v *CredentialValidationService) UpdateBatch(ctx context.Context, user models.User, patches []models.CredentialUpdate) ([]models.CredentialPublic, error) {
	for i, patch := range patches {
		if err := v.validator.Validate(ctx, patch); err != nil {
			return nil, invalid(fmt.Errorf("item %d: %w", i, err))
		}
	}
	return v.CredentialService.UpdateBatch(ctx, user, patches)
}

// TeamValidationService rejects malformed team requests before they reach
// the wrapped service.
type TeamValidationService struct {
	TeamService
	validator validators.Validator
}

func NewTeamValidationService() TeamServiceWrapper {
	return &TeamValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *TeamValidationService) Wrap(inner TeamService) TeamService {
	v.TeamService = inner
	return v
}

func (v *TeamValidationService) AddTeam(ctx context.Context, user models.User, req models.CreateTeamRequest) (models.Team, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Team{}, invalid(err)
	}
	return v.TeamService.AddTeam(ctx, user, req)
}

func (v *TeamValidationService) ApplyToTeam(ctx context.Context, user models.User, code string) (models.MyApplication, error) {
	if err := v.validator.Validate(ctx, models.TeamApplicationRequest{TeamCode: code}); err != nil {
		return models.MyApplication{}, ErrInvalidTeamCode
	}
	return v.TeamService.ApplyToTeam(ctx, user, code)
}

func (v *TeamValidationService) RespondToApplication(ctx context.Context, actor models.User, teamID, userID int64, action models.ApplicationAction) error {
	if err := v.validator.Validate(ctx, action); err != nil {
		return invalid(err)
	}
	return v.TeamService.RespondToApplication(ctx, actor, teamID, userID, action)
}

// invalid marks a validation failure as an ErrInvalid error carrying the
// validator's message.
func invalid(err error) error {
	return &kindError{kind: ErrInvalid, msg: err.Error()}
}
