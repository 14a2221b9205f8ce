package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanForm(t *testing.T) {
	errs := Validate(LoginForm{Email: "ravi@example.com", Password: "secret123"})
	assert.Nil(t, errs)
}

func TestValidateLoginForm(t *testing.T) {
	errs := Validate(LoginForm{Email: "not-an-email"})
	require.Len(t, errs, 2)
	assert.Equal(t, "Enter a valid email address.", errs["email"])
	assert.Equal(t, "This field is required.", errs["password"])
}

func TestValidateSignupPasswordLength(t *testing.T) {
	errs := Validate(SignupForm{FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.com", Password: "abc"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Must be at least 6 characters.", errs["password"])
}

func TestValidateShippingFormKeysMatchFormTags(t *testing.T) {
	errs := Validate(ShippingForm{City: "Pune"})
	require.Len(t, errs, 3)
	for _, key := range []string{"address", "postalCode", "country"} {
		assert.Contains(t, errs, key)
	}
}
