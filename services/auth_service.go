package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"fakejournal-reader/models"
)

// Error codes of the auth collaborator's own taxonomy.
const (
	authErrApiKeyNonexistent  = "API_KEY_NONEXISTENT"
	authErrApiKeyUnauthorized = "API_KEY_UNAUTHORIZED"
	authErrInternalServer     = "INTERNAL_SERVER_ERROR"
	authErrMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	authErrBadRequest         = "BAD_REQUEST"
	authErrNetwork            = "NETWORK"
)

// AuthService resolves an opaque api key into a verified user identity.
// Identity lives entirely in the external auth service; this is only a
// client plus the mapping of its failure space onto the local taxonomy.
type AuthService interface {
	GetUserByApiKeyIfValid(ctx context.Context, apiKey string) (*models.User, error)
}

type AuthServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

type authService struct {
	cfg  AuthServiceConfig
	http *http.Client
	log  *zap.SugaredLogger
}

func NewAuthService(cfg AuthServiceConfig, log *zap.SugaredLogger) AuthService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &authService{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.With("service", "AuthService"),
	}
}

func (s *authService) GetUserByApiKeyIfValid(ctx context.Context, apiKey string) (*models.User, error) {
	body, err := json.Marshal(map[string]string{"apiKey": apiKey})
	if err != nil {
		s.log.Errorw("failed to encode auth request", "cause", err)
		return nil, models.ErrInternalServerError
	}

	url := strings.TrimRight(s.cfg.BaseURL, "/") + "/public/get_user_by_api_key_if_valid"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.log.Errorw("failed to build auth request", "cause", err)
		return nil, models.ErrInternalServerError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Errorw("auth service unreachable", "cause", err)
		return nil, models.ErrInternalServerError
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		s.log.Errorw("failed to read auth response", "cause", err)
		return nil, models.ErrInternalServerError
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, s.reportAuthErr(raw)
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Errorw("failed to decode auth response", "cause", err)
		return nil, models.ErrInternalServerError
	}
	return &user, nil
}

// reportAuthErr maps the collaborator's failure space onto the local
// taxonomy. Both "key nonexistent" and "key unauthorized" collapse to
// Unauthorized; the collaborator's own infrastructure failures become
// InternalServerError; anything unrecognized becomes Unknown and is
// logged with its source.
func (s *authService) reportAuthErr(raw []byte) models.AppError {
	var code string
	if err := json.Unmarshal(raw, &code); err != nil {
		code = string(raw)
	}

	switch code {
	case authErrApiKeyNonexistent, authErrApiKeyUnauthorized:
		return models.ErrUnauthorized
	case authErrInternalServer, authErrMethodNotAllowed, authErrBadRequest, authErrNetwork:
		s.log.Errorw(models.ErrInternalServerError.Error(), "source", "auth service: "+code)
		return models.ErrInternalServerError
	default:
		s.log.Errorw(models.ErrUnknown.Error(), "source", "auth service: "+code)
		return models.ErrUnknown
	}
}
