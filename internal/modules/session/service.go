package session

import (
	"context"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/forms"
	"github.com/priyanka857/Major-Project-1/internal/shared/apperr"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

// TokenSource supplies the best-known bearer token. An empty or expired token
// does not block a call; the server decides.
type TokenSource func() string

type Service struct {
	api      *api.Client
	dispatch store.Dispatch
	token    TokenSource
}

func NewService(c *api.Client, dispatch store.Dispatch, token TokenSource) *Service {
	return &Service{api: c, dispatch: dispatch, token: token}
}

// Login validates the form locally, then runs the three-phase lifecycle. A
// validation failure returns the field errors and dispatches nothing.
func (s *Service) Login(ctx context.Context, f forms.LoginForm) error {
	if fe := forms.Validate(f); fe != nil {
		return apperr.InvalidErr("Check the highlighted fields.", fe)
	}

	s.dispatch(LoginRequested{})

	u, err := s.api.Login(ctx, f.Email, f.Password)
	if err != nil {
		s.dispatch(LoginFailed{Message: apperr.Message(err)})
		return err
	}

	s.dispatch(LoginSucceeded{User: u})
	return nil
}

// Logout is synchronous: one reset event, no network call. The persistence
// middleware purges the durable session copy when it sees the event.
func (s *Service) Logout() {
	s.dispatch(LoggedOut{})
}

func (s *Service) Signup(ctx context.Context, f forms.SignupForm) error {
	if fe := forms.Validate(f); fe != nil {
		return apperr.InvalidErr("Check the highlighted fields.", fe)
	}

	s.dispatch(SignupRequested{})

	res, err := s.api.Register(ctx, api.RegisterRequest{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Password:  f.Password,
	})
	if err != nil {
		s.dispatch(SignupFailed{Message: apperr.Message(err)})
		return err
	}

	s.dispatch(SignupSucceeded{Result: res})
	return nil
}

func (s *Service) UpdateProfile(ctx context.Context, in api.ProfileUpdateRequest) error {
	s.dispatch(ProfileUpdateRequested{})

	u, err := s.api.UpdateProfile(ctx, s.token(), in)
	if err != nil {
		s.dispatch(ProfileUpdateFailed{Message: apperr.Message(err)})
		return err
	}

	s.dispatch(ProfileUpdateSucceeded{User: u})
	return nil
}

// ResetSignup and ResetProfileUpdate return the mutation slices to idle. The
// consumer must call them after observing a terminal status, or the stale
// succeeded flag re-triggers navigation effects.
func (s *Service) ResetSignup() { s.dispatch(SignupReset{}) }

func (s *Service) ResetProfileUpdate() { s.dispatch(ProfileUpdateReset{}) }
