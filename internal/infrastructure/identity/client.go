// Package identity provides a minimal client for the identity service admin API
// used to create login accounts.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tanzhongyan/Singheatlh/config"

	"github.com/google/uuid"
)

const adminUsersPath = "/auth/v1/admin/users"

var (
	ErrUnexpectedStatus = errors.New("identity: unexpected response status")
	ErrMissingBaseURL   = errors.New("identity: base url is not configured")
)

// NewUser is the account to create. Name is stored in the account's user metadata.
type NewUser struct {
	Email    string
	Password string
	Name     string
}

// CreatedUser is the account as returned by the admin API.
type CreatedUser struct {
	ID    uuid.UUID
	Email string
}

// Client talks to the admin endpoints with the service role key.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func New(cfg config.IdentityConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type createUserRequest struct {
	Email        string            `json:"email"`
	Password     string            `json:"password"`
	UserMetadata map[string]string `json:"user_metadata"`
	EmailConfirm bool              `json:"email_confirm"`
}

type createUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateUser creates a confirmed account. Only HTTP 200 is accepted; any other status
// is returned as ErrUnexpectedStatus together with the response body.
func (c *Client) CreateUser(ctx context.Context, user NewUser) (*CreatedUser, error) {
	body, err := json.Marshal(createUserRequest{
		Email:        user.Email,
		Password:     user.Password,
		UserMetadata: map[string]string{"name": user.Name},
		EmailConfirm: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+adminUsersPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, res.StatusCode, strings.TrimSpace(string(snippet)))
	}

	// The account exists once the API answers 200, even if the body is unreadable.
	var out createUserResponse
	_ = json.NewDecoder(res.Body).Decode(&out)

	created := &CreatedUser{Email: out.Email}
	if created.Email == "" {
		created.Email = user.Email
	}
	if id, err := uuid.Parse(out.ID); err == nil {
		created.ID = id
	}
	return created, nil
}
