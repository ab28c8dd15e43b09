package http

import (
	"context"

	"github.com/MKhiriev/go-team-keeper/models"
)

// The mocks below implement the service interfaces with per-test function
// fields. Calling a method whose field is unset panics, which the router's
// Recoverer turns into a 500.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockUserService struct {
	getMeFn          func(ctx context.Context, user models.User) (models.UserPublic, error)
	getUserByIDFn    func(ctx context.Context, userID int64) (models.UserPublic, error)
	getAllUsersFn    func(ctx context.Context) ([]models.UserPublic, error)
	changePasswordFn func(ctx context.Context, user models.User, req models.ChangePasswordRequest) error
	changeKeysFn     func(ctx context.Context, user models.User, req models.ChangeKeysRequest) (models.UserPublic, error)
}

func (m *mockUserService) GetMe(ctx context.Context, user models.User) (models.UserPublic, error) {
	return m.getMeFn(ctx, user)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID int64) (models.UserPublic, error) {
	return m.getUserByIDFn(ctx, userID)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.UserPublic, error) {
	return m.getAllUsersFn(ctx)
}

func (m *mockUserService) ChangePassword(ctx context.Context, user models.User, req models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, user, req)
}

func (m *mockUserService) ChangeKeys(ctx context.Context, user models.User, req models.ChangeKeysRequest) (models.UserPublic, error) {
	return m.changeKeysFn(ctx, user, req)
}

type mockCredentialService struct {
	canAddFn        func(ctx context.Context, user models.User, teamID *int64) error
	canDeleteOwnFn  func(ctx context.Context, user models.User, credentialID int64) (models.Credential, error)
	canAdminGroupFn func(ctx context.Context, user models.User, group string) (models.Credential, error)
	addFn           func(ctx context.Context, user models.User, data models.CredentialCreate) (models.CredentialPublic, error)
	getByIDFn       func(ctx context.Context, user models.User, credentialID int64) (models.CredentialPublic, error)
	getByGroupFn    func(ctx context.Context, user models.User, group string) ([]models.CredentialPublic, error)
	getMineFn       func(ctx context.Context, user models.User) ([]models.CredentialPublic, error)
	updateOneFn     func(ctx context.Context, user models.User, credentialID int64, patch models.CredentialUpdate) (models.CredentialPublic, error)
	updateGroupFn   func(ctx context.Context, user models.User, group string, patch models.CredentialUpdate) (models.CredentialPublic, error)
	updateBatchFn   func(ctx context.Context, user models.User, patches []models.CredentialUpdate) ([]models.CredentialPublic, error)
	deleteOneFn     func(ctx context.Context, user models.User, credentialID int64) error
	deleteGroupFn   func(ctx context.Context, user models.User, group string) error
	purgeFn         func(ctx context.Context, userID, teamID int64) error
}

func (m *mockCredentialService) CanAdd(ctx context.Context, user models.User, teamID *int64) error {
	return m.canAddFn(ctx, user, teamID)
}

func (m *mockCredentialService) CanDeleteOwn(ctx context.Context, user models.User, credentialID int64) (models.Credential, error) {
	return m.canDeleteOwnFn(ctx, user, credentialID)
}

func (m *mockCredentialService) CanAdminGroup(ctx context.Context, user models.User, group string) (models.Credential, error) {
	return m.canAdminGroupFn(ctx, user, group)
}

func (m *mockCredentialService) AddCredential(ctx context.Context, user models.User, data models.CredentialCreate) (models.CredentialPublic, error) {
	return m.addFn(ctx, user, data)
}

func (m *mockCredentialService) GetByID(ctx context.Context, user models.User, credentialID int64) (models.CredentialPublic, error) {
	return m.getByIDFn(ctx, user, credentialID)
}

func (m *mockCredentialService) GetByGroup(ctx context.Context, user models.User, group string) ([]models.CredentialPublic, error) {
	return m.getByGroupFn(ctx, user, group)
}

func (m *mockCredentialService) GetMine(ctx context.Context, user models.User) ([]models.CredentialPublic, error) {
	return m.getMineFn(ctx, user)
}

func (m *mockCredentialService) UpdateOne(ctx context.Context, user models.User, credentialID int64, patch models.CredentialUpdate) (models.CredentialPublic, error) {
	return m.updateOneFn(ctx, user, credentialID, patch)
}

func (m *mockCredentialService) UpdateGroup(ctx context.Context, user models.User, group string, patch models.CredentialUpdate) (models.CredentialPublic, error) {
	return m.updateGroupFn(ctx, user, group, patch)
}

func (m *mockCredentialService) UpdateBatch(ctx context.Context, user models.User, patches []models.CredentialUpdate) ([]models.CredentialPublic, error) {
	return m.updateBatchFn(ctx, user, patches)
}

func (m *mockCredentialService) DeleteOne(ctx context.Context, user models.User, credentialID int64) error {
	return m.deleteOneFn(ctx, user, credentialID)
}

func (m *mockCredentialService) DeleteGroup(ctx context.Context, user models.User, group string) error {
	return m.deleteGroupFn(ctx, user, group)
}

func (m *mockCredentialService) PurgeCredentials(ctx context.Context, userID, teamID int64) error {
	return m.purgeFn(ctx, userID, teamID)
}

type mockTeamService struct {
	addTeamFn             func(ctx context.Context, user models.User, req models.CreateTeamRequest) (models.Team, error)
	applyToTeamFn         func(ctx context.Context, user models.User, code string) (models.MyApplication, error)
	respondFn             func(ctx context.Context, actor models.User, teamID, userID int64, action models.ApplicationAction) error
	quitTeamFn            func(ctx context.Context, user models.User, teamID int64) error
	removeTeamMemberFn    func(ctx context.Context, actor models.User, teamID, userID int64) error
	getMyTeamsFn          func(ctx context.Context, user models.User) ([]models.TeamDetailed, error)
	getMyApplicationsFn   func(ctx context.Context, user models.User) ([]models.MyApplication, error)
	getTeamApplicationsFn func(ctx context.Context, user models.User, teamID int64) ([]models.TeamApplication, error)
	getTeamByIDFn         func(ctx context.Context, user models.User, teamID int64) (models.TeamDetailed, error)
}

func (m *mockTeamService) AddTeam(ctx context.Context, user models.User, req models.CreateTeamRequest) (models.Team, error) {
	return m.addTeamFn(ctx, user, req)
}

func (m *mockTeamService) ApplyToTeam(ctx context.Context, user models.User, code string) (models.MyApplication, error) {
	return m.applyToTeamFn(ctx, user, code)
}

func (m *mockTeamService) RespondToApplication(ctx context.Context, actor models.User, teamID, userID int64, action models.ApplicationAction) error {
	return m.respondFn(ctx, actor, teamID, userID, action)
}

func (m *mockTeamService) QuitTeam(ctx context.Context, user models.User, teamID int64) error {
	return m.quitTeamFn(ctx, user, teamID)
}

func (m *mockTeamService) RemoveTeamMember(ctx context.Context, actor models.User, teamID, userID int64) error {
	return m.removeTeamMemberFn(ctx, actor, teamID, userID)
}

func (m *mockTeamService) GetMyTeams(ctx context.Context, user models.User) ([]models.TeamDetailed, error) {
	return m.getMyTeamsFn(ctx, user)
}

func (m *mockTeamService) GetMyApplications(ctx context.Context, user models.User) ([]models.MyApplication, error) {
	return m.getMyApplicationsFn(ctx, user)
}

func (m *mockTeamService) GetTeamApplications(ctx context.Context, user models.User, teamID int64) ([]models.TeamApplication, error) {
	return m.getTeamApplicationsFn(ctx, user, teamID)
}

func (m *mockTeamService) GetTeamByID(ctx context.Context, user models.User, teamID int64) (models.TeamDetailed, error) {
	return m.getTeamByIDFn(ctx, user, teamID)
}

type mockAppInfoService struct {
	version    string
	storageErr error
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.version }

func (m *mockAppInfoService) CheckStorage(context.Context) error { return m.storageErr }
