package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("please enter email and password")
	ErrInvalidEmail       = errors.New("invalid email address format")
	ErrInvalidPassword    = errors.New("password must be at least 6 characters")
	ErrWrongPassword      = errors.New("incorrect password")
	ErrTooManyAttempts    = errors.New("too many attempts, try again later")
)

// User is a registered account. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
}

// Credentials is a login request.
type Credentials struct {
	Email    string
	Password string
}

// Normalize trims the email and lowercases it. Passwords are left untouched.
func (c Credentials) Normalize() Credentials {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return c
}

// Validate checks the shape of the credentials before any lookup happens.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return ErrMissingCredentials
	}
	if !IsValidEmail(strings.TrimSpace(c.Email)) {
		return ErrInvalidEmail
	}
	if !IsValidPassword(c.Password) {
		return ErrInvalidPassword
	}
	return nil
}
