package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const deviceIDHeader = "X-Device-ID"

// Client is the typed binding to the attendance backend. It is a pure I/O
// boundary: no policy, no retries, no state beyond configuration. Construct
// one explicitly and pass it around; there is no package-level instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client with a default timeout-configured HTTP client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// do sends the request and decodes a 2xx JSON body into out. Transport
// failures come back wrapped in ErrNetwork, a 401 as ErrUnauthenticated, any
// other non-2xx as *ServerError.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return netErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusErr(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return netErr(err)
	}
	return json.Unmarshal(body, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any, decorate func(*http.Request)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if decorate != nil {
		decorate(req)
	}
	return c.do(req, out)
}

// Login authenticates the user. The device identifier travels as a header on
// every login so the backend can bind the session to the installation.
func (c *Client) Login(ctx context.Context, deviceID, username, password string) (*LoginResponse, error) {
	form := url.Values{}
	form.Set("usuario", username)
	form.Set("contrasena", password)

	var resp LoginResponse
	err := c.postForm(ctx, "auth/login", form, &resp, func(req *http.Request) {
		req.Header.Set(deviceIDHeader, deviceID)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context, token string) (*ProfileResponse, error) {
	var resp ProfileResponse
	if err := c.get(ctx, "auth/me", token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Today fetches the authoritative attendance facts for the current day.
func (c *Client) Today(ctx context.Context, token string) (*TodayResponse, error) {
	var resp TodayResponse
	if err := c.get(ctx, "asistencia/hoy", token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.do(req, out)
}

// RegisterMovement registers one attendance movement.
func (c *Client) RegisterMovement(ctx context.Context, token, deviceID string, movement MovementRequest) (*MovementResponse, error) {
	body, err := json.Marshal(movement)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("asistencia"), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(deviceIDHeader, deviceID)

	var resp MovementResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePassword sets a new password for the authenticated user.
func (c *Client) ChangePassword(ctx context.Context, token, newPassword string) (*ChangePasswordResponse, error) {
	form := url.Values{}
	form.Set("nueva", newPassword)

	var resp ChangePasswordResponse
	err := c.postForm(ctx, "auth/cambiarClave", form, &resp, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
