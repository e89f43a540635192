package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() Address {
	return Address{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Address: "12 MG Road",
		Country: "India",
		State:   "Karnataka",
		City:    "Bengaluru",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Fields
}

func TestAddress_Validate(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		assert.NoError(t, validAddress().Validate())
	})

	t.Run("email is optional", func(t *testing.T) {
		a := validAddress()
		a.Email = ""
		assert.NoError(t, a.Validate())
	})

	t.Run("everything blank", func(t *testing.T) {
		err := Address{Country: "  ", State: "\t"}.Validate()
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Equal(t, map[string]string{
			"name":    "Name is required",
			"phone":   "Phone number is required",
			"address": "Address is required",
			"country": "Country is required",
			"state":   "State is required",
			"city":    "City is required",
		}, fieldsOf(t, err))
	})

	t.Run("malformed fields", func(t *testing.T) {
		a := validAddress()
		a.Name = "A"
		a.Phone = "12345"
		a.Email = "not-an-email"

		assert.Equal(t, map[string]string{
			"name":  "Please enter a valid name",
			"phone": "Please enter a valid phone number",
			"email": "Please enter a valid email",
		}, fieldsOf(t, a.Validate()))
	})

	t.Run("phone must be exactly ten digits", func(t *testing.T) {
		for _, phone := range []string{"98765432100", "98765-4321", "+919876543"} {
			a := validAddress()
			a.Phone = phone
			assert.Contains(t, fieldsOf(t, a.Validate()), "phone", phone)
		}
	})

	t.Run("country and state are checked the same way", func(t *testing.T) {
		a := validAddress()
		a.Country = ""
		a.State = ""
		fields := fieldsOf(t, a.Validate())
		assert.Equal(t, "Country is required", fields["country"])
		assert.Equal(t, "State is required", fields["state"])
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"phone": "bad", "city": "missing"}}
	assert.Equal(t, "please fix the highlighted fields (city: missing; phone: bad)", err.Error())
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.co"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("a b@c.d"))
	assert.False(t, IsValidEmail(""))
}
