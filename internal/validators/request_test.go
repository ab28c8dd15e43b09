package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-team-keeper/models"
)

func ptr[T any](v T) *T { return &v }

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{"register ok", models.RegisterRequest{Username: "alice", Password: "p"}, nil, nil},
		{"register blank username", models.RegisterRequest{Username: "  ", Password: "p"}, nil, ErrEmptyUsername},
		{"register long username", models.RegisterRequest{Username: strings.Repeat("a", 65), Password: "p"}, nil, ErrUsernameTooLong},
		{"register no password", models.RegisterRequest{Username: "alice"}, nil, ErrEmptyPassword},
		{"register username only", models.RegisterRequest{Username: "alice"}, []string{FieldUsername}, nil},
		{"login no password", models.LoginRequest{Username: "alice"}, nil, ErrEmptyPassword},
		{"change password no new", models.ChangePasswordRequest{OldPassword: "old"}, nil, ErrEmptyNewPassword},
		{"change keys", models.ChangeKeysRequest{}, nil, ErrEmptyPublicKey},
		{"team name", models.CreateTeamRequest{Name: ""}, nil, ErrEmptyTeamName},
		{"team code", models.TeamApplicationRequest{TeamCode: " "}, nil, ErrEmptyTeamCode},
		{"action defaults", models.ApplicationAction{}, nil, nil},
		{"action unknown", models.ApplicationAction{Action: "maybe"}, nil, ErrInvalidAction},
		{"action awaiting role", models.ApplicationAction{Action: models.ActionAccept, Role: models.RoleAwaiting}, nil, ErrInvalidRole},
		{"credential ok", models.CredentialCreate{TeamID: ptr(int64(0))}, nil, nil},
		{"credential bad user", models.CredentialCreate{UserID: ptr(int64(0))}, nil, ErrInvalidUserID},
		{"credential bad team", models.CredentialCreate{TeamID: ptr(int64(-1))}, nil, ErrInvalidTeamID},
		{"update bad id", models.CredentialUpdate{CredentialID: ptr(int64(-3))}, nil, ErrInvalidCredential},
		{"unknown field", models.LoginRequest{}, []string{"nope"}, ErrUnknownField},
		{"unsupported", 42, nil, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
