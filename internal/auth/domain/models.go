// Package domain contains core types for shop accounts.
package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotSignedIn        = errors.New("not signed in")
)

// User represents a shop account. The password hash never leaves the
// stored collection in API responses.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SignupRequest carries the fields needed to create an account.
type SignupRequest struct {
	Email    string
	Name     string
	Password string
}

// Validate checks the minimum account rules before any hashing work.
func (r SignupRequest) Validate() error {
	if r.Email == "" || r.Name == "" {
		return errors.New("email and name are required")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}
