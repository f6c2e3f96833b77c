// Package auth implements the sign-in check used by the login form.
//
// There is no credential store: the gate compares against one fixed
// demo account.
package auth

import (
	"errors"
	"strings"
)

const (
	DemoEmail    = "user@example.com"
	DemoPassword = "password123"

	MsgSuccess = "Login successful! Redirecting..."
	MsgInvalid = "Invalid email or password. Please try again."
	MsgMissing = "Please fill in both email and password."
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("missing credentials")
)

// Checker is the contract the navigation controller depends on.
type Checker interface {
	Check(email, password string) bool
}

// Gate accepts exactly one email/password pair.
type Gate struct {
	email    string
	password string
}

// NewGate returns a gate for the demo account.
func NewGate() Gate {
	return Gate{email: DemoEmail, password: DemoPassword}
}

// Check reports whether both values match exactly. Comparison is
// case-sensitive and does not trim.
func (g Gate) Check(email, password string) bool {
	return email == g.email && password == g.password
}

// Verify runs the form-level checks and then the gate.
func Verify(c Checker, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingCredentials
	}
	if !c.Check(email, password) {
		return ErrInvalidCredentials
	}
	return nil
}

// Message returns the inline text shown under the login form for a Verify result.
func Message(err error) string {
	switch {
	case err == nil:
		return MsgSuccess
	case errors.Is(err, ErrMissingCredentials):
		return MsgMissing
	default:
		return MsgInvalid
	}
}
