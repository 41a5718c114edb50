package upstream

import (
	"context"
	"net/http"

	"github.com/travel-content-admin/internal/session"
)

// AuthClient handles login and logout against the backend and keeps the
// persisted session in sync
type AuthClient struct {
	c        *Client
	sessions *session.Store
}

// loginResponse is the backend's login shape
type loginResponse struct {
	Token string           `json:"token"`
	User  *session.Profile `json:"user,omitempty"`
}

// Login exchanges credentials for a bearer token and persists the session
func (a *AuthClient) Login(ctx context.Context, email, password string) (*session.Session, error) {
	body, err := a.c.send(ctx, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	resp, err := decodeOne[loginResponse](body)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &Error{Message: "login response missing token"}
	}

	sess := session.Session{Token: resp.Token, Profile: resp.User}
	if err := a.sessions.Set(sess); err != nil {
		return nil, &Error{Message: "failed to persist session: " + err.Error()}
	}
	return &sess, nil
}

// Logout clears the persisted session. The backend keeps no server-side
// session state for the admin, so this is purely local.
func (a *AuthClient) Logout(ctx context.Context) error {
	return a.sessions.Clear()
}
