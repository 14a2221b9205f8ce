// Package products owns the catalog slices: the list and detail fetches plus
// the admin create/update/delete mutations.
package products

import (
	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

type ListState = store.Collection[api.Product]

type DetailState = store.Detail[api.Product]

type CreateState = store.Mutation[api.Product]

type UpdateState = store.Mutation[api.Product]

type DeleteState = store.Mutation[struct{}]

func ReduceList(s ListState, a store.Action) ListState {
	switch a := a.(type) {
	case ListRequested:
		return s.Request(a.Seq)
	case ListLoaded:
		return s.Loaded(a.Seq, a.Products)
	case ListFailed:
		return s.Failed(a.Seq, a.Message)
	default:
		return s
	}
}

func ReduceDetail(s DetailState, a store.Action) DetailState {
	switch a := a.(type) {
	case DetailRequested:
		return s.Request(a.Seq)
	case DetailLoaded:
		return s.Loaded(a.Seq, a.Product)
	case DetailFailed:
		return s.Failed(a.Seq, a.Message)
	default:
		return s
	}
}

func ReduceCreate(s CreateState, a store.Action) CreateState {
	switch a := a.(type) {
	case CreateRequested:
		return s.Request()
	case CreateSucceeded:
		return s.Succeeded(a.Product)
	case CreateFailed:
		return s.Failed(a.Message)
	case CreateReset:
		return s.Reset()
	default:
		return s
	}
}

func ReduceUpdate(s UpdateState, a store.Action) UpdateState {
	switch a := a.(type) {
	case UpdateRequested:
		return s.Request()
	case UpdateSucceeded:
		return s.Succeeded(a.Product)
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
