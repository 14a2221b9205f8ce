// Package orders owns the checkout-submission slice and the order fetch
// slices (detail, admin list, own-order list) plus the deliver mutation.
package orders

import (
	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/modules/session"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

type CreateState = store.Mutation[api.Order]

type DetailState = store.Detail[api.Order]

type ListState = store.Collection[api.Order]

type MyListState = store.Collection[api.Order]

type DeliverState = store.Mutation[api.Order]

func ReduceCreate(s CreateState, a store.Action) CreateState {
	switch a := a.(type) {
	case CreateRequested:
		return s.Request()
	case CreateSucceeded:
		return s.Succeeded(a.Order)
	case CreateFailed:
		return s.Failed(a.Message)
	case CreateReset:
		return s.Reset()
	default:
		return s
	}
}

// ReduceDetail also picks up the deliver mutation's response so the admin
// order screen reflects the new delivered flag without a refetch.
func ReduceDetail(s DetailState, a store.Action) DetailState {
	switch a := a.(type) {
	case DetailRequested:
		return s.Request(a.Seq)
	case DetailLoaded:
		return s.Loaded(a.Seq, a.Order)
	case DetailFailed:
		return s.Failed(a.Seq, a.Message)
	case DeliverSucceeded:
		return s.Loaded(s.Seq, a.Order)
	default:
		return s
	}
}

func ReduceList(s ListState, a store.Action) ListState {
	switch a := a.(type) {
	case ListRequested:
		return s.Request(a.Seq)
	case ListLoaded:
		return s.Loaded(a.Seq, a.Orders)
	case ListFailed:
		return s.Failed(a.Seq, a.Message)
	default:
		return s
	}
}

// ReduceMyList empties on logout; another account's order history must not
// leak into the next session.
func ReduceMyList(s MyListState, a store.Action) MyListState {
	switch a := a.(type) {
	case MyListRequested:
		return s.Request(a.Seq)
	case MyListLoaded:
		return s.Loaded(a.Seq, a.Orders)
	case MyListFailed:
		return s.Failed(a.Seq, a.Message)
	case session.LoggedOut:
		return store.NewCollection[api.Order]()
	default:
		return s
	}
}

func ReduceDeliver(s DeliverState, a store.Action) DeliverState {
	switch a := a.(type) {
	case DeliverRequested:
		return s.Request()
	case DeliverSucceeded:
		return s.Succeeded(a.Order)
	case DeliverFailed:
		return s.Failed(a.Message)
	case DeliverReset:
		return s.Reset()
	default:
		return s
	}
}
