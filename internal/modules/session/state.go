// Package session owns the authenticated-user slice plus the signup and
// profile-update mutation slices.
package session

import (
	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

type Status string

const (
	StatusAnonymous     Status = "anonymous"
	StatusPending       Status = "pending"
	StatusAuthenticated Status = "authenticated"
	StatusFailed        Status = "failed"
)

// State is the login slice. User is nil unless Status is authenticated.
type State struct {
	Status Status
	User   *api.User
	Err    string
}

func NewState() State { return State{Status: StatusAnonymous} }

// FromUser seeds an authenticated session from the durable snapshot.
func FromUser(u *api.User) State {
	if u == nil {
		return NewState()
	}
	return State{Status: StatusAuthenticated, User: u}
}

// Token returns the current bearer token, empty when anonymous.
func (s State) Token() string {
	if s.User == nil {
		return ""
	}
	return s.User.Token
}

func (s State) Authenticated() bool { return s.Status == StatusAuthenticated && s.User != nil }

type SignupState = store.Mutation[api.RegisterResult]

type ProfileUpdateState = store.Mutation[api.User]

// Reduce handles the login lifecycle. A profile-update success also refreshes
// the session user, mirroring how the profile screen re-seeds the logged-in
// user record.
func Reduce(s State, a store.Action) State {
	switch a := a.(type) {
	case LoginRequested:
		return State{Status: StatusPending}
	case LoginSucceeded:
		u := a.User
		return State{Status: StatusAuthenticated, User: &u}
	case LoginFailed:
		return State{Status: StatusFailed, Err: a.Message}
	case ProfileUpdateSucceeded:
		u := a.User
		return State{Status: StatusAuthenticated, User: &u}
	case LoggedOut:
		return NewState()
	default:
		return s
	}
}

func ReduceSignup(s SignupState, a store.Action) SignupState {
	switch a := a.(type) {
	case SignupRequested:
		return s.Request()
	case SignupSucceeded:
		return s.Succeeded(a.Result)
	case SignupFailed:
		return s.Failed(a.Message)
	case SignupReset:
		return s.Reset()
	default:
		return s
	}
}

func ReduceProfileUpdate(s ProfileUpdateState, a store.Action) ProfileUpdateState {
	switch a := a.(type) {
	case ProfileUpdateRequested:
		return s.Request()
	case ProfileUpdateSucceeded:
		return s.Succeeded(a.User)
	case ProfileUpdateFailed:
		return s.Failed(a.Message)
	case ProfileUpdateReset:
		return s.Reset()
	default:
		return s
	}
}
