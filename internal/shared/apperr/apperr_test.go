package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagePrefersServerDetail(t *testing.T) {
	err := ServerErr(404, "Product does not exist")
	assert.Equal(t, "Product does not exist", Message(err))
}

func TestMessageFallsBackToStatusLine(t *testing.T) {
	err := ServerErr(500, "")
	assert.Equal(t, "Request failed with status code 500", Message(err))
}

func TestMessageUsesTransportErrorText(t *testing.T) {
	err := TransportErr(errors.New("dial tcp 127.0.0.1:80: connection refused"))
	assert.Equal(t, "dial tcp 127.0.0.1:80: connection refused", Message(err))
}

func TestMessageGenericFallback(t *testing.T) {
	assert.Equal(t, "Something went wrong. Please try again.", Message(&AppError{Kind: Internal}))
}

func TestMessageNilError(t *testing.T) {
	assert.Empty(t, Message(nil))
}

func TestMessageSurvivesWrapping(t *testing.T) {
	inner := ServerErr(401, "Given token not valid for any token type")
	err := fmt.Errorf("refresh profile: %w", inner)
	assert.Equal(t, "Given token not valid for any token type", Message(err))
}

func TestAs(t *testing.T) {
	ae, ok := As(fmt.Errorf("outer: %w", ServerErr(400, "No order items")))
	assert.True(t, ok)
	assert.Equal(t, Server, ae.Kind)
	assert.Equal(t, 400, ae.Status)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestInvalidErrCarriesFieldErrors(t *testing.T) {
	err := InvalidErr("Please fix the highlighted fields.", map[string]string{"email": "Enter a valid email address."})
	assert.Equal(t, Invalid, err.Kind)
	assert.Equal(t, "Enter a valid email address.", err.Fields["email"])
	assert.Equal(t, "Please fix the highlighted fields.", Message(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil))
}
