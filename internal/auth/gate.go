// Package auth is a client-side login gate. It checks a hardcoded credential
// and flips a flag in local config; no token is produced and the backend
// performs no authentication. This is a placeholder pending real auth, not a
// security boundary.
package auth

import (
	"errors"

	"github.com/marcus/rd/internal/config"
)

// ErrInvalidCredentials is returned when the credential check fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// The placeholder credential mirrors the backend seed data.
const (
	gateUsername = "admin"
	gatePassword = "admin123"
)

// Gate consults and updates the persisted login flag.
type Gate struct {
	BaseDir string
}

// Login checks the credential and, on success, persists the login flag.
func (g Gate) Login(username, password string) error {
	if username != gateUsername || password != gatePassword {
		return ErrInvalidCredentials
	}
	return config.SetLoggedIn(g.BaseDir, true, username)
}

// Logout clears the login flag.
func (g Gate) Logout() error {
	return config.SetLoggedIn(g.BaseDir, false, "")
}

// Authed reports whether the gate has been passed this config lifetime.
func (g Gate) Authed() bool {
	loggedIn, _, err := config.LoggedIn(g.BaseDir)
	return err == nil && loggedIn
}

// Username returns the logged-in username, or "".
func (g Gate) Username() string {
	_, name, err := config.LoggedIn(g.BaseDir)
	if err != nil {
		return ""
	}
	return name
}
