package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-team-keeper/internal/config"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/utils"
	"github.com/MKhiriev/go-team-keeper/models"
)

// hashHeader carries the hex HMAC-SHA256 of the request body; the server
// checks it when both sides share APP_HASH_KEY.
const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	// hasher signs request bodies; nil when no hash key is configured.
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter] for cfg.ServerURL. Request bodies are signed when
// cfg.HashKey is set.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	if cfg.HashKey != "" {
		a.hasher = utils.NewHasher(cfg.HashKey)
	}
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version implements [ServerAdapter]. GET /api/version/
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// Register implements [ServerAdapter]. POST /api/users/
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error) {
	var user models.UserPublic
	if err := h.send(ctx, h.client.R(), http.MethodPost, "/api/users/", req, &user); err != nil {
		return models.UserPublic{}, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// Login implements [ServerAdapter]. POST /api/auth/login. The token is
// taken from the response body, falling back to the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.do(ctx, h.client.R(), http.MethodPost, "/api/auth/login", req, &login)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}

	token := login.AccessToken
	if token == "" {
		parsed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		token = parsed
	}

	h.SetToken(token)
	h.logger.Debug().Int64("user_id", login.User.UserID).Msg("logged in")
	return login, nil
}

// Me implements [ServerAdapter]. GET /api/users/me
func (h *httpServerAdapter) Me(ctx context.Context) (models.UserPublic, error) {
	var user models.UserPublic
	if err := h.send(ctx, h.authedRequest(), http.MethodGet, "/api/users/me", nil, &user); err != nil {
		return models.UserPublic{}, fmt.Errorf("get me: %w", err)
	}
	return user, nil
}

// Credentials implements [ServerAdapter]. GET /api/credentials/
func (h *httpServerAdapter) Credentials(ctx context.Context) ([]models.CredentialPublic, error) {
	var credentials []models.CredentialPublic
	if err := h.send(ctx, h.authedRequest(), http.MethodGet, "/api/credentials/", nil, &credentials); err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return credentials, nil
}

// AddCredential implements [ServerAdapter]. POST /api/credentials/
func (h *httpServerAdapter) AddCredential(ctx context.Context, req models.CredentialCreate) (models.CredentialPublic, error) {
	var credential models.CredentialPublic
	if err := h.send(ctx, h.authedRequest(), http.MethodPost, "/api/credentials/", req, &credential); err != nil {
		return models.CredentialPublic{}, fmt.Errorf("add credential: %w", err)
	}
	return credential, nil
}

// DeleteCredential implements [ServerAdapter]. DELETE /api/credentials/{id}
func (h *httpServerAdapter) DeleteCredential(ctx context.Context, credentialID int64) error {
	path := "/api/credentials/" + strconv.FormatInt(credentialID, 10)
	if err := h.send(ctx, h.authedRequest(), http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// Teams implements [ServerAdapter]. GET /api/teams/
func (h *httpServerAdapter) Teams(ctx context.Context) ([]models.TeamDetailed, error) {
	var teams []models.TeamDetailed
	if err := h.send(ctx, h.authedRequest(), http.MethodGet, "/api/teams/", nil, &teams); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// CreateTeam implements [ServerAdapter]. POST /api/teams/
func (h *httpServerAdapter) CreateTeam(ctx context.Context, name string) (models.TeamPublic, error) {
	var team models.TeamPublic
	if err := h.send(ctx, h.authedRequest(), http.MethodPost, "/api/teams/", models.CreateTeamRequest{Name: name}, &team); err != nil {
		return models.TeamPublic{}, fmt.Errorf("create team: %w", err)
	}
	return team, nil
}

// ApplyToTeam implements [ServerAdapter]. POST /api/teams/applications
func (h *httpServerAdapter) ApplyToTeam(ctx context.Context, code string) error {
	req := models.TeamApplicationRequest{TeamCode: strings.TrimSpace(code)}
	if err := h.send(ctx, h.authedRequest(), http.MethodPost, "/api/teams/applications", req, nil); err != nil {
		return fmt.Errorf("apply to team: %w", err)
	}
	return nil
}

// Applications implements [ServerAdapter]. GET /api/teams/applications/my
func (h *httpServerAdapter) Applications(ctx context.Context) ([]models.MyApplication, error) {
	var applications []models.MyApplication
	if err := h.send(ctx, h.authedRequest(), http.MethodGet, "/api/teams/applications/my", nil, &applications); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

func (h *httpServerAdapter) authedRequest() *resty.Request {
	req := h.client.R()
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) send(ctx context.Context, req *resty.Request, method, path string, body, result any) error {
	_, err := h.do(ctx, req, method, path, body, result)
	return err
}

// do executes req, JSON-encoding body (signed when a hash key is set) and
// decoding a successful response into result when non-nil.
func (h *httpServerAdapter) do(ctx context.Context, req *resty.Request, method, path string, body, result any) (*resty.Response, error) {
	req.SetContext(ctx)

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
		if h.hasher != nil {
			req.SetHeader(hashHeader, h.hasher.HexSum(payload))
		}
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	return resp, mapHTTPError(resp)
}
