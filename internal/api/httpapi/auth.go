package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        domain.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: login response missing token", domain.ErrRequestFailed)
	}
	if err := c.session.SetCredentials(resp.AccessToken, &resp.User); err != nil {
		return nil, err
	}
	user := resp.User
	return &user, nil
}

func (c *Client) Signup(ctx context.Context, in api.SignupInput) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/api/users/signup", nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout only tears down local credentials; the backend keeps no server-side
// session state for bearer tokens.
func (c *Client) Logout() error { return c.session.Teardown() }

func (c *Client) IsAuthenticated() bool { return c.session.IsAuthenticated() }

func (c *Client) CurrentUser() *domain.User { return c.session.User() }

func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
