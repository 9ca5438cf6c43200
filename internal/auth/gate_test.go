package auth

import (
	"errors"
	"testing"
)

func TestLoginAcceptsSeedCredential(t *testing.T) {
	gate := Gate{BaseDir: t.TempDir()}

	if gate.Authed() {
		t.Fatal("fresh gate should not be authed")
	}

	if err := gate.Login("admin", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !gate.Authed() {
		t.Error("gate should be authed after login")
	}
	if got := gate.Username(); got != "admin" {
		t.Errorf("Username: got %q, want admin", got)
	}
}

func TestLoginRejectsBadCredential(t *testing.T) {
	gate := Gate{BaseDir: t.TempDir()}

	tests := []struct{ user, pass string }{
		{"admin", "wrong"},
		{"root", "admin123"},
		{"", ""},
	}
	for _, tt := range tests {
		err := gate.Login(tt.user, tt.pass)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): got %v, want ErrInvalidCredentials", tt.user, tt.pass, err)
		}
	}
	if gate.Authed() {
		t.Error("failed login should not auth the gate")
	}
}

func TestLogoutClearsState(t *testing.T) {
	gate := Gate{BaseDir: t.TempDir()}
	if err := gate.Login("admin", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := gate.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if gate.Authed() {
		t.Error("gate still authed after logout")
	}
	if got := gate.Username(); got != "" {
		t.Errorf("Username after logout: got %q, want \"\"", got)
	}
}
