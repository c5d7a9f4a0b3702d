package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInvalidSession means the provider rejected the session id.
var ErrInvalidSession = errors.New("invalid session")

// SessionData is the identity payload returned by the provider exchange.
type SessionData struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// ProviderClient exchanges an externally issued session id for the user's
// identity with the managed auth service.
type ProviderClient struct {
	BaseURL string
	Client  *http.Client
}

func NewProviderClient(baseURL string) *ProviderClient {
	return &ProviderClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ExchangeSession calls the provider with the session id in the
// X-Session-ID header. A non-200 response is a rejection; transport
// failures are returned as-is.
func (p *ProviderClient) ExchangeSession(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build session request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidSession
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode session data: %w", err)
	}
	return &data, nil
}
