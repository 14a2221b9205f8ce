package session

import "github.com/priyanka857/Major-Project-1/internal/api"

type LoginRequested struct{}

type LoginSucceeded struct{ User api.User }

type LoginFailed struct{ Message string }

type LoggedOut struct{}

type SignupRequested struct{}

type SignupSucceeded struct{ Result api.RegisterResult }

type SignupFailed struct{ Message string }

type SignupReset struct{}

type ProfileUpdateRequested struct{}

type ProfileUpdateSucceeded struct{ User api.User }

type ProfileUpdateFailed struct{ Message string }

type ProfileUpdateReset struct{}

func (LoginRequested) Type() string         { return "USER_LOGIN_REQUEST" }
func (LoginSucceeded) Type() string         { return "USER_LOGIN_SUCCESS" }
func (LoginFailed) Type() string            { return "USER_LOGIN_FAIL" }
func (LoggedOut) Type() string              { return "USER_LOGOUT" }
func (SignupRequested) Type() string        { return "USER_SIGNUP_REQUEST" }
func (SignupSucceeded) Type() string        { return "USER_SIGNUP_SUCCESS" }
func (SignupFailed) Type() string           { return "USER_SIGNUP_FAIL" }
func (SignupReset) Type() string            { return "USER_SIGNUP_RESET" }
func (ProfileUpdateRequested) Type() string { return "USER_UPDATE_PROFILE_REQUEST" }
func (ProfileUpdateSucceeded) Type() string { return "USER_UPDATE_PROFILE_SUCCESS" }
func (ProfileUpdateFailed) Type() string    { return "USER_UPDATE_PROFILE_FAIL" }
func (ProfileUpdateReset) Type() string     { return "USER_UPDATE_PROFILE_RESET" }
