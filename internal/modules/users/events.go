package users

import "github.com/priyanka857/Major-Project-1/internal/api"

type ListRequested struct{ Seq uint64 }

type ListLoaded struct {
	Seq   uint64
	Users []api.User
}

type ListFailed struct {
	Seq     uint64
	Message string
}

type ListReset struct{}

type DetailRequested struct{ Seq uint64 }

type DetailLoaded struct {
	Seq  uint64
	User api.User
}

type DetailFailed struct {
	Seq     uint64
	Message string
}

type DetailReset struct{}

type UpdateRequested struct{}

// UpdateSucceeded carries the saved record; the detail slice applies it too.
type UpdateSucceeded struct{ User api.User }

type UpdateFailed struct{ Message string }

type UpdateReset struct{}

type DeleteRequested struct{}

type DeleteSucceeded struct{}

type DeleteFailed struct{ Message string }

type DeleteReset struct{}

func (ListRequested) Type() string   { return "USER_LIST_REQUEST" }
func (ListLoaded) Type() string      { return "USER_LIST_SUCCESS" }
func (ListFailed) Type() string      { return "USER_LIST_FAIL" }
func (ListReset) Type() string       { return "USER_LIST_RESET" }
func (DetailRequested) Type() string { return "USER_DETAILS_REQUEST" }
func (DetailLoaded) Type() string    { return "USER_DETAILS_SUCCESS" }
func (DetailFailed) Type() string    { return "USER_DETAILS_FAIL" }
func (DetailReset) Type() string     { return "USER_DETAILS_RESET" }
func (UpdateRequested) Type() string { return "USER_UPDATE_REQUEST" }
func (UpdateSucceeded) Type() string { return "USER_UPDATE_SUCCESS" }
func (UpdateFailed) Type() string    { return "USER_UPDATE_FAIL" }
func (UpdateReset) Type() string     { return "USER_UPDATE_RESET" }
func (DeleteRequested) Type() string { return "USER_DELETE_REQUEST" }
func (DeleteSucceeded) Type() string { return "USER_DELETE_SUCCESS" }
func (DeleteFailed) Type() string    { return "USER_DELETE_FAIL" }
func (DeleteReset) Type() string     { return "USER_DELETE_RESET" }
