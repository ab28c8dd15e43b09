package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-team-keeper/models"
)

// MaxUsernameLength bounds usernames in runes.
const MaxUsernameLength = 64

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldNewPassword  = "new_password"
	FieldPublicKey    = "public_key"
	FieldTeamName     = "name"
	FieldTeamCode     = "team_code"
	FieldAction       = "action"
	FieldRole         = "role"
	FieldUserID       = "user_id"
	FieldTeamID       = "team_id"
	FieldCredentialID = "id"
)

// RequestValidator implements [Validator] for the request bodies of the
// user, team and credential APIs.
type RequestValidator struct{}

// NewRequestValidator returns the request [Validator].
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; when omitted, the default set of the
// type is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return validateFields(fields, []string{FieldUsername, FieldPassword}, func(f string) error {
			switch f {
			case FieldUsername:
				return checkUsername(value.Username)
			case FieldPassword:
				return notEmpty(value.Password, ErrEmptyPassword)
			}
			return ErrUnknownField
		})

	case models.LoginRequest:
		return validateFields(fields, []string{FieldUsername, FieldPassword}, func(f string) error {
			switch f {
			case FieldUsername:
				return notEmpty(value.Username, ErrEmptyUsername)
			case FieldPassword:
				return notEmpty(value.Password, ErrEmptyPassword)
			}
			return ErrUnknownField
		})

	case models.ChangePasswordRequest:
		return validateFields(fields, []string{FieldPassword, FieldNewPassword}, func(f string) error {
			switch f {
			case FieldPassword:
				return notEmpty(value.OldPassword, ErrEmptyPassword)
			case FieldNewPassword:
				return notEmpty(value.NewPassword, ErrEmptyNewPassword)
			}
			return ErrUnknownField
		})

	case models.ChangeKeysRequest:
		return validateFields(fields, []string{FieldPublicKey}, func(f string) error {
			if f == FieldPublicKey {
				return notEmpty(value.PublicKey, ErrEmptyPublicKey)
			}
			return ErrUnknownField
		})

	case models.CreateTeamRequest:
		return validateFields(fields, []string{FieldTeamName}, func(f string) error {
			if f == FieldTeamName {
				return notEmpty(value.Name, ErrEmptyTeamName)
			}
			return ErrUnknownField
		})

	case models.TeamApplicationRequest:
		return validateFields(fields, []string{FieldTeamCode}, func(f string) error {
			if f == FieldTeamCode {
				return notEmpty(value.TeamCode, ErrEmptyTeamCode)
			}
			return ErrUnknownField
		})

	case models.ApplicationAction:
		value = value.WithDefaults()
		return validateFields(fields, []string{FieldAction, FieldRole}, func(f string) error {
			switch f {
			case FieldAction:
				if value.Action != models.ActionAccept && value.Action != models.ActionDecline {
					return ErrInvalidAction
				}
				return nil
			case FieldRole:
				if value.Role != models.RoleMember && value.Role != models.RoleAdmin {
					return ErrInvalidRole
				}
				return nil
			}
			return ErrUnknownField
		})

	case models.CredentialCreate:
		return validateFields(fields, []string{FieldUserID, FieldTeamID}, func(f string) error {
			switch f {
			case FieldUserID:
				return optionalPositive(value.UserID, ErrInvalidUserID)
			case FieldTeamID:
				if value.TeamID != nil && *value.TeamID < 0 {
					return ErrInvalidTeamID
				}
				return nil
			}
			return ErrUnknownField
		})

	case models.CredentialUpdate:
		return validateFields(fields, []string{FieldUserID, FieldCredentialID}, func(f string) error {
			switch f {
			case FieldUserID:
				return optionalPositive(value.UserID, ErrInvalidUserID)
			case FieldCredentialID:
				return optionalPositive(value.CredentialID, ErrInvalidCredential)
			}
			return ErrUnknownField
		})

	default:
		return ErrUnsupportedType
	}
}

func validateFields(fields, defaults []string, check func(field string) error) error {
	if len(fields) == 0 {
		fields = defaults
	}
	for _, f := range fields {
		if err := check(f); err != nil {
			return err
		}
	}
	return nil
}

func notEmpty(s string, err error) error {
	if strings.TrimSpace(s) == "" {
		return err
	}
	return nil
}

func checkUsername(username string) error {
	if err := notEmpty(username, ErrEmptyUsername); err != nil {
		return err
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}

func optionalPositive(v *int64, err error) error {
	if v != nil && *v <= 0 {
		return err
	}
	return nil
}
