// Package identity is the typed client for the user-records backend. It owns
// registered accounts, temporary identities allocated during face enrollment,
// and the aggregated stats report used by shop analytics.
package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pointward/gateway/internal/backend"
	apperrors "github.com/pointward/gateway/internal/errors"
)

// User is the backend's full account record.
type User struct {
	UID         string `json:"uid"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

// PublicProfile is the subset of an account safe to show at a register
// before the customer has authenticated themselves.
type PublicProfile struct {
	UID       string `json:"uid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateUserParams carries a registration request. UID is optional: when set
// it links the new account to a previously allocated temporary identity.
type CreateUserParams struct {
	UID         string `json:"uid,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	Password    string `json:"password"`
}

// StatsReport is the backend's demographic aggregation over a set of user ids.
type StatsReport struct {
	TotalCustomers int            `json:"total_customers"`
	AverageAge     float64        `json:"average_age"`
	Genders        map[string]int `json:"genders"`
	Nationalities  map[string]int `json:"nationalities"`
}

// Client calls the identity backend.
type Client struct {
	caller *backend.Caller
}

// NewClient creates a Client on top of the shared caller.
func NewClient(caller *backend.Caller) *Client {
	return &Client{caller: caller}
}

// Login verifies credentials against the backend. Invalid credentials or an
// unknown account map to ErrForbidden.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	user := &User{}
	err := c.caller.PostJSON(ctx, "/user/login", body, user, backend.StatusMap{
		http.StatusForbidden: apperrors.ErrForbidden,
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create registers a new account. The backend rejects a duplicate email, and
// a UID pointing at a missing temporary identity, with the same status; both
// surface as ErrConflict.
func (c *Client) Create(ctx context.Context, params CreateUserParams) (*User, error) {
	user := &User{}
	err := c.caller.PostJSON(ctx, "/user", params, user, backend.StatusMap{
		http.StatusBadRequest: apperrors.ErrConflict,
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTemporaryIdentity allocates a fresh identity with no account behind
// it, for associating a newly seen face. Returns the allocated uid.
func (c *Client) CreateTemporaryIdentity(ctx context.Context) (string, error) {
	var out struct {
		UID string `json:"uid"`
	}
	if err := c.caller.PostJSON(ctx, "/temp_user", nil, &out, nil); err != nil {
		return "", err
	}
	if out.UID == "" {
		return "", apperrors.Wrap(apperrors.ErrUpstreamRejected, "identity returned an empty temporary uid")
	}
	return out.UID, nil
}

// GetByID fetches the full account record.
func (c *Client) GetByID(ctx context.Context, uid string) (*User, error) {
	user := &User{}
	err := c.caller.GetJSON(ctx, fmt.Sprintf("/user/%s", uid), nil, user, backend.StatusMap{
		http.StatusNotFound: apperrors.ErrNotFound,
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetPublicProfile fetches the register-safe view of an account. A temporary
// identity with no account yet yields ErrNotFound.
func (c *Client) GetPublicProfile(ctx context.Context, uid string) (*PublicProfile, error) {
	profile := &PublicProfile{}
	err := c.caller.GetJSON(ctx, fmt.Sprintf("/user/%s", uid), nil, profile, backend.StatusMap{
		http.StatusNotFound: apperrors.ErrNotFound,
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetByName searches accounts by display name.
func (c *Client) GetByName(ctx context.Context, name string) ([]User, error) {
	query := url.Values{"name": []string{name}}
	var users []User
	if err := c.caller.GetJSON(ctx, "/users/search", query, &users, nil); err != nil {
		return nil, err
	}
	return users, nil
}

// StatsReport aggregates demographics over the given user ids.
func (c *Client) StatsReport(ctx context.Context, userIDs []string) (*StatsReport, error) {
	report := &StatsReport{}
	if err := c.caller.PostJSON(ctx, "/users/stats_report", userIDs, report, nil); err != nil {
		return nil, err
	}
	return report, nil
}
