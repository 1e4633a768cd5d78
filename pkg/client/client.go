// Package client is the Go consumer of the booking API. It speaks the
// cookie-based session transport by default (tokens never touch
// script-readable storage) and exposes an explicit session context plus a
// route guard for UIs built on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// User is the public profile shape returned by the API.
type User struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	Role    string  `json:"role"`
	Balance float64 `json:"balance"`
}

// Booking mirrors the API's booking payload.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	Price     float64   `json:"price"`
	Datetime  time.Time `json:"datetime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Notify    bool      `json:"notify"`
}

// BookingInput carries the fields for creating a booking. Ownership is
// determined server-side from the session; it cannot be set here.
type BookingInput struct {
	Type     string    `json:"type"`
	Location string    `json:"location"`
	Price    float64   `json:"price"`
	Datetime time.Time `json:"datetime"`
	Status   string    `json:"status,omitempty"`
	Notify   bool      `json:"notify"`
}

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client calls the booking API. The embedded cookie jar carries the session
// cookie across calls, matching how a browser would behave.
type Client struct {
	base string
	http *http.Client
	// bearer, when set, is attached as an Authorization header. Secondary
	// path for non-browser integrations; the cookie remains primary.
	bearer string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A cookie jar is
// installed if the given client has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBearerToken attaches a bearer token to every request.
func WithBearerToken(token string) Option {
	return func(c *Client) { c.bearer = token }
}

// New returns a Client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{base: baseURL}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 10 * time.Second}
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("client: cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	return c, nil
}

// Signup creates an account and starts a session.
func (c *Client) Signup(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/signup", credentials{Email: email, Password: password}, nil)
}

// Login authenticates and starts a session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/login", credentials{Email: email, Password: password}, nil)
}

// Logout ends the session. Succeeds even when already logged out.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

// Profile fetches the authenticated user's live record.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// CreateBooking creates a booking owned by the session identity.
func (c *Client) CreateBooking(ctx context.Context, input BookingInput) (*Booking, error) {
	var resp struct {
		Booking Booking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodPost, "/bookings", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

// Bookings lists the session identity's bookings.
func (c *Client) Bookings(ctx context.Context) ([]Booking, error) {
	var resp struct {
		Bookings []Booking `json:"bookings"`
	}
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("client: decode response: %w", err)
		}
	}
	return nil
}
