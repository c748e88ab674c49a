package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// Login POST /auth/login.
func (c *Client) Login(ctx context.Context, in dto.LoginPayload) (entity.LoginResult, error) {
	var out entity.LoginResult
	err := c.do(ctx, request{method: http.MethodPost, route: "/auth/login", path: "/auth/login", body: in}, &out)
	if err != nil {
		return entity.LoginResult{}, err
	}
	if out.Token == "" {
		return entity.LoginResult{}, fmt.Errorf("api: login sin token: %w", domain.ErrUpstream)
	}
	return out, nil
}

// LoginQR GET /auth/loginqr?token=.
func (c *Client) LoginQR(ctx context.Context, qrToken string) (entity.LoginResult, error) {
	var out entity.LoginResult
	err := c.get(ctx, "/auth/loginqr", "/auth/loginqr", "", url.Values{"token": {qrToken}}, &out)
	if err != nil {
		return entity.LoginResult{}, err
	}
	if out.Token == "" {
		return entity.LoginResult{}, fmt.Errorf("api: loginqr sin token: %w", domain.ErrUpstream)
	}
	return out, nil
}

// ValidateToken GET /auth/validate. Solo un 200 cuenta como válido; cualquier
// otra respuesta o error de transporte invalida la sesión.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/validate", nil)
	if err != nil {
		return fmt.Errorf("api: crear request /auth/validate: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	r := request{method: http.MethodGet, route: "/auth/validate"}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(r, 0, start)
		return fmt.Errorf("api: /auth/validate: %w", err)
	}
	defer resp.Body.Close()
	c.observe(r, resp.StatusCode, start)

	if resp.StatusCode != http.StatusOK {
		return &domain.APIError{Status: resp.StatusCode}
	}
	return nil
}

// Profile GET /auth/profile.
func (c *Client) Profile(ctx context.Context, token string) (*entity.Profile, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/auth/profile", "/auth/profile", token, nil, &raw); err != nil {
		return nil, err
	}
	p, err := one[entity.Profile](raw, "user")
	if err != nil {
		return nil, fmt.Errorf("api: decodificar /auth/profile: %w", err)
	}
	return &p, nil
}

// GenerateQR GET /auth/generateqr/:userId.
func (c *Client) GenerateQR(ctx context.Context, token, userID string) (entity.QRCode, error) {
	var out entity.QRCode
	err := c.get(ctx, "/auth/generateqr/:userId", "/auth/generateqr/"+escape(userID), token, nil, &out)
	return out, err
}
