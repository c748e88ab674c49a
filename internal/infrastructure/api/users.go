package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// Users GET /users ({"users":[…]}).
func (c *Client) Users(ctx context.Context, token string) ([]entity.User, error) {
	return getList[entity.User](ctx, c, "/users", "/users", token, "users", nil)
}

// User GET /users/:id ({"user":{…}}).
func (c *Client) User(ctx context.Context, token, id string) (entity.User, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/users/:id", "/users/"+escape(id), token, nil, &raw); err != nil {
		return entity.User{}, err
	}
	u, err := one[entity.User](raw, "user")
	if err != nil {
		return entity.User{}, fmt.Errorf("api: decodificar /users/:id: %w", err)
	}
	return u, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, in dto.UserPayload) error {
	return c.send(ctx, http.MethodPost, "/users", "/users", token, in)
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, in dto.UserPayload) error {
	return c.send(ctx, http.MethodPut, "/users/:id", "/users/"+escape(id), token, in)
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, "/users/:id", "/users/"+escape(id), token, nil)
}

// UnlockUser PUT /users/:id/unlock.
func (c *Client) UnlockUser(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodPut, "/users/:id/unlock", "/users/"+escape(id)+"/unlock", token, nil)
}

// UpdatePermissions PUT /users/:id/permissions.
func (c *Client) UpdatePermissions(ctx context.Context, token, id string, in dto.PermissionsPayload) error {
	return c.send(ctx, http.MethodPut, "/users/:id/permissions", "/users/"+escape(id)+"/permissions", token, in)
}

// Sessions GET /users/:id/sessions ({"sessions":[…]}).
func (c *Client) Sessions(ctx context.Context, token, id string) ([]entity.UserSession, error) {
	return getList[entity.UserSession](ctx, c, "/users/:id/sessions", "/users/"+escape(id)+"/sessions", token, "sessions", nil)
}

// Roles GET /roles.
func (c *Client) Roles(ctx context.Context, token string) ([]entity.Role, error) {
	return getList[entity.Role](ctx, c, "/roles", "/roles", token, "roles", nil)
}

// Permissions GET /permissions ({"permissions":[…]}).
func (c *Client) Permissions(ctx context.Context, token string) ([]entity.PermissionDef, error) {
	return getList[entity.PermissionDef](ctx, c, "/permissions", "/permissions", token, "permissions", nil)
}
