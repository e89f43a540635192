package domain

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("please fix the highlighted fields")

// ValidationError maps form field names to a user-facing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Address is the shipping form submitted at checkout. Email is optional.
type Address struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Country string
	State   string
	City    string
}

// Validate returns a *ValidationError listing every invalid field, or nil.
func (a Address) Validate() error {
	fields := map[string]string{}

	switch {
	case strings.TrimSpace(a.Name) == "":
		fields["name"] = "Name is required"
	case !IsValidName(a.Name):
		fields["name"] = "Please enter a valid name"
	}

	switch {
	case strings.TrimSpace(a.Phone) == "":
		fields["phone"] = "Phone number is required"
	case !IsValidPhone(a.Phone):
		fields["phone"] = "Please enter a valid phone number"
	}

	if a.Email != "" && !IsValidEmail(a.Email) {
		fields["email"] = "Please enter a valid email"
	}

	required := []struct {
		key, label, value string
	}{
		{"address", "Address", a.Address},
		{"country", "Country", a.Country},
		{"state", "State", a.State},
		{"city", "City", a.City},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields[r.key] = r.label + " is required"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func IsValidName(name string) bool {
	return len(name) >= 2
}

func IsValidPassword(password string) bool {
	return len(password) >= 6
}
