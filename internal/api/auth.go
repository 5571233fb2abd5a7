package api

import (
	"context"
	"net/http"

	"github.com/pmateja/padmin/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, in LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out)
	return out, err
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, in RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, in, nil)
}

// Me resolves the identity behind the current token
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &out)
	return out, err
}

// MeWithToken resolves the identity behind an explicit token, bypassing the
// injected token source
func (c *Client) MeWithToken(ctx context.Context, token string) (models.User, error) {
	return c.WithToken(token).Me(ctx)
}
