// Package users owns the admin user-management slices: the user list and
// detail fetches plus the update and delete mutations.
package users

import (
	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

type ListState = store.Collection[api.User]

type DetailState = store.Detail[api.User]

type UpdateState = store.Mutation[struct{}]

type DeleteState = store.Mutation[struct{}]

// ReduceList also empties on logout so the next admin session starts clean.
func ReduceList(s ListState, a store.Action) ListState {
	switch a := a.(type) {
	case ListRequested:
		return s.Request(a.Seq)
	case ListLoaded:
		return s.Loaded(a.Seq, a.Users)
	case ListFailed:
		return s.Failed(a.Seq, a.Message)
	case ListReset:
		return store.NewCollection[api.User]()
	default:
		return s
	}
}

// ReduceDetail additionally applies an admin update's response, so the edit
// screen shows the saved record without a refetch.
func ReduceDetail(s DetailState, a store.Action) DetailState {
	switch a := a.(type) {
	case DetailRequested:
		return s.Request(a.Seq)
	case DetailLoaded:
		return s.Loaded(a.Seq, a.User)
	case DetailFailed:
		return s.Failed(a.Seq, a.Message)
	case UpdateSucceeded:
		return s.Loaded(s.Seq, a.User)
	case DetailReset:
		return store.NewDetail[api.User]()
	default:
		return s
	}
}

func ReduceUpdate(s UpdateState, a store.Action) UpdateState {
	switch a := a.(type) {
	case UpdateRequested:
		return s.Request()
	case UpdateSucceeded:
		return s.Succeeded(struct{}{})
	case UpdateFailed:
		return s.Failed(a.Message)
	case UpdateReset:
		return s.Reset()
	default:
		return s
	}
}

func ReduceDelete(s DeleteState, a store.Action) DeleteState {
	switch a := a.(type) {
	case DeleteRequested:
		return s.Request()
	case DeleteSucceeded:
		return s.Succeeded(struct{}{})
	case DeleteFailed:
		return s.Failed(a.Message)
	case DeleteReset:
		return s.Reset()
	default:
		return s
	}
}
