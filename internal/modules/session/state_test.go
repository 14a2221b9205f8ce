package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

func TestLoginLifecycle(t *testing.T) {
	s := NewState()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())

	s = Reduce(s, LoginRequested{})
	assert.Equal(t, StatusPending, s.Status)

	s = Reduce(s, LoginSucceeded{User: api.User{ID: 3, Email: "ravi@example.com", Token: "tok"}})
	require.True(t, s.Authenticated())
	assert.Equal(t, "tok", s.Token())

	s = Reduce(s, LoggedOut{})
	assert.Equal(t, NewState(), s)
}

func TestLoginFailureCarriesMessage(t *testing.T) {
	s := Reduce(NewState(), LoginRequested{})
	s = Reduce(s, LoginFailed{Message: "No active account found with the given credentials"})

	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, "No active account found with the given credentials", s.Err)
	assert.False(t, s.Authenticated())
}

func TestProfileUpdateRefreshesSessionUser(t *testing.T) {
	s := Reduce(NewState(), LoginSucceeded{User: api.User{ID: 3, Email: "old@example.com", Token: "tok"}})

	s = Reduce(s, ProfileUpdateSucceeded{User: api.User{ID: 3, Email: "new@example.com", Token: "tok2"}})

	require.True(t, s.Authenticated())
	assert.Equal(t, "new@example.com", s.User.Email)
	assert.Equal(t, "tok2", s.Token())
}

func TestFromUser(t *testing.T) {
	assert.Equal(t, NewState(), FromUser(nil))

	s := FromUser(&api.User{ID: 1, Token: "t"})
	assert.True(t, s.Authenticated())
}

func TestSignupLifecycle(t *testing.T) {
	s := store.NewMutation[api.RegisterResult]()

	s = ReduceSignup(s, SignupRequested{})
	assert.Equal(t, store.StatusLoading, s.Status)

	s = ReduceSignup(s, SignupSucceeded{Result: api.RegisterResult{Details: "Check your email"}})
	assert.Equal(t, store.StatusSucceeded, s.Status)
	assert.Equal(t, "Check your email", s.Result.Details)

	s = ReduceSignup(s, SignupReset{})
	assert.Equal(t, store.StatusIdle, s.Status)
	assert.Empty(t, s.Result.Details)
}
