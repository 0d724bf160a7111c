package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// AuthUser is the identity attached to a request after token verification.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenVerifier checks a bearer token against an external identity service.
// The provider is swappable behind this interface.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*AuthUser, error)
}

type identityVerifier struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewIdentityVerifier verifies tokens against a Supabase-style identity
// endpoint (GET <baseURL>/auth/v1/user).
func NewIdentityVerifier(baseURL, serviceKey string) TokenVerifier {
	return &identityVerifier{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify implements TokenVerifier.
func (v *identityVerifier) Verify(ctx context.Context, token string) (*AuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verification request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.serviceKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: identity service returned %d", ErrUnauthorized, resp.StatusCode)
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}

	if user.ID == "" {
		return nil, ErrUnauthorized
	}

	return &user, nil
}
