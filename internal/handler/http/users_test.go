package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-team-keeper/internal/service"
	"github.com/MKhiriev/go-team-keeper/models"
)

func TestListUsers(t *testing.T) {
	router := newTestRouter(&service.Services{UserService: &mockUserService{
		getAllUsersFn: func(context.Context) ([]models.UserPublic, error) {
			return []models.UserPublic{{UserID: 1}, {UserID: 2}}, nil
		},
	}})

	rec := do(t, router, http.MethodGet, "/api/users/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.UserPublic](t, rec), 2)
}

func TestGetUser(t *testing.T) {
	router := newTestRouter(&service.Services{UserService: &mockUserService{
		getUserByIDFn: func(_ context.Context, id int64) (models.UserPublic, error) {
			if id != 2 {
				return models.UserPublic{}, service.ErrUserNotFound
			}
			return models.UserPublic{UserID: 2, Username: "bob"}, nil
		},
	}})

	rec := do(t, router, http.MethodGet, "/api/users/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", decodeBody[models.UserPublic](t, rec).Username)

	rec = do(t, router, http.MethodGet, "/api/users/3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", detail(t, rec))
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "changed", wantStatus: http.StatusOK},
		{name: "wrong old password", err: service.ErrWrongOldPassword, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.ChangePasswordRequest
			router := newTestRouter(&service.Services{UserService: &mockUserService{
				changePasswordFn: func(_ context.Context, _ models.User, req models.ChangePasswordRequest) error {
					got = req
					return tt.err
				},
			}})

			rec := do(t, router, http.MethodPut, "/api/users/me/password", models.ChangePasswordRequest{
				OldPassword:         "old",
				NewPassword:         "new",
				EncryptedPrivateKey: "rewrapped",
			})

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "rewrapped", got.EncryptedPrivateKey)
			if tt.err == nil {
				assert.Equal(t, "Password changed successfully", decodeBody[models.MessageResponse](t, rec).Message)
			}
		})
	}
}

func TestChangeKeys(t *testing.T) {
	router := newTestRouter(&service.Services{UserService: &mockUserService{
		changeKeysFn: func(_ context.Context, user models.User, req models.ChangeKeysRequest) (models.UserPublic, error) {
			user.PublicKey, user.EncryptedPrivateKey = req.PublicKey, req.EncryptedPrivateKey
			return models.NewUserPublic(user, nil, nil), nil
		},
	}})

	rec := do(t, router, http.MethodPut, "/api/users/me/keys", models.ChangeKeysRequest{PublicKey: "pk2", EncryptedPrivateKey: "epk2"})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.UserPublic](t, rec)
	assert.Equal(t, "pk2", got.PublicKey)
	assert.Equal(t, "epk2", got.EncryptedPrivateKey)
}
