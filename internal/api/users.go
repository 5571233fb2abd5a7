package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pmateja/padmin/internal/models"
)

type UpdateUserRequest struct {
	Name    string      `json:"name"`
	Surname string      `json:"surname"`
	Email   string      `json:"email"`
	Role    models.Role `json:"role"`
}

// ListUsers fetches all users
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, http.MethodGet, "/users", nil, nil, &out)
	return out, err
}

// GetUser fetches one user with their project memberships
func (c *Client) GetUser(ctx context.Context, id int64) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &out)
	return out, err
}

// UpdateUser patches mutable user fields and returns the updated entity
func (c *Client) UpdateUser(ctx context.Context, id int64, in UpdateUserRequest) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), nil, in, &out)
	return out, err
}
