package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

// GoTrueValidator asks the hosted auth service who owns a token via GET /auth/v1/user.
type GoTrueValidator struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ Validator = (*GoTrueValidator)(nil)

// NewGoTrueValidator builds a validator for the auth service at baseURL. A nil client
// gets a default one with a 10s timeout.
func NewGoTrueValidator(baseURL, apiKey string, client *http.Client) *GoTrueValidator {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &GoTrueValidator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type goTrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (v *GoTrueValidator) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrUnauthorized)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("identity provider request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Msg("identity provider rejected token")
		return nil, fmt.Errorf("%w: identity provider returned %d", ErrUnauthorized, resp.StatusCode)
	}

	var u goTrueUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("%w: decoding user: %v", ErrUnauthorized, err)
	}
	if u.ID == "" {
		return nil, fmt.Errorf("%w: identity provider returned no user", ErrUnauthorized)
	}
	return &model.User{ID: u.ID, Email: u.Email, Role: u.Role}, nil
}
