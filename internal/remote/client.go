package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("remote backend is not configured")

// APIError is a non-2xx answer from the hosted backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote backend: %s (%d)", e.Message, e.StatusCode)
}

// Client reads the hosted backend's REST interface (PostgREST conventions).
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns ErrNotConfigured when either the URL or the key is empty.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	apiKey = strings.TrimSpace(apiKey)
	if baseURL == "" || apiKey == "" {
		return nil, ErrNotConfigured
	}
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	var rows []Room
	err := c.get(ctx, "rooms", url.Values{"select": {"*"}, "order": {"room_number.asc"}}, &rows)
	return rows, err
}

func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var rows []Booking
	err := c.get(ctx, "bookings", url.Values{"select": {"*"}, "order": {"created_at.desc"}}, &rows)
	return rows, err
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var rows []User
	err := c.get(ctx, "users", url.Values{"select": {"*"}}, &rows)
	return rows, err
}

// ListBookingsWithGuest embeds the guest and room rows and flattens them.
func (c *Client) ListBookingsWithGuest(ctx context.Context) ([]BookingWithGuest, error) {
	var rows []bookingJoinRow
	q := url.Values{
		"select": {"*,users(full_name,email),rooms(name,room_number)"},
		"order":  {"created_at.desc"},
	}
	if err := c.get(ctx, "bookings", q, &rows); err != nil {
		return nil, err
	}
	out := make([]BookingWithGuest, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.flatten())
	}
	return out, nil
}

// GetDashboardStats aggregates booking counts and revenue. Cancelled bookings
// do not count towards revenue.
func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var rows []Booking
	if err := c.get(ctx, "bookings", url.Values{"select": {"status,total_price"}}, &rows); err != nil {
		return DashboardStats{}, err
	}
	var s DashboardStats
	for _, b := range rows {
		s.TotalBookings++
		switch b.Status {
		case StatusPending:
			s.PendingBookings++
		case StatusConfirmed:
			s.ConfirmedBookings++
		}
		if b.Status != StatusCancelled {
			s.TotalRevenue += b.TotalPrice
		}
	}
	return s, nil
}

func (c *Client) get(ctx context.Context, table string, q url.Values, dst any) error {
	endpoint := c.baseURL + "/rest/v1/" + table + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote %s: %w", table, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("remote %s: read body: %w", table, err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &APIError{StatusCode: res.StatusCode, Message: errorMessage(body, res.Status)}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("remote %s: decode: %w", table, err)
	}
	return nil
}

// errorMessage prefers PostgREST's {"message": ...} body.
func errorMessage(body []byte, fallback string) string {
	var e struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &e) == nil && e.Message != "" {
		return e.Message
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return fallback
}
