package api

import (
	"context"
	"net/http"

	"callboard-cli/internal/model"
)

// Auth endpoints. The service is an opaque credential provider: we hold the
// token it hands out and attach it to subsequent requests, nothing more.

type wireCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type wireSignup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type wireAuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (model.AuthSession, error) {
	var raw wireAuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", wireCredentials{Email: email, Password: password}, &raw)
	if err != nil {
		return model.AuthSession{}, err
	}
	c.SetToken(raw.Token)
	return model.AuthSession{Token: raw.Token, User: raw.User}, nil
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (model.AuthSession, error) {
	var raw wireAuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", wireSignup{Name: name, Email: email, Password: password}, &raw)
	if err != nil {
		return model.AuthSession{}, err
	}
	c.SetToken(raw.Token)
	return model.AuthSession{Token: raw.Token, User: raw.User}, nil
}

func (c *Client) Me(ctx context.Context) (model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Logout invalidates the server session (best effort) and always clears the
// local token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.SetToken("")
	return err
}
