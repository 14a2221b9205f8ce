package orders

import "github.com/priyanka857/Major-Project-1/internal/api"

type CreateRequested struct{}

type CreateSucceeded struct{ Order api.Order }

type CreateFailed struct{ Message string }

type CreateReset struct{}

type DetailRequested struct{ Seq uint64 }

type DetailLoaded struct {
	Seq   uint64
	Order api.Order
}

type DetailFailed struct {
	Seq     uint64
	Message string
}

type ListRequested struct{ Seq uint64 }

type ListLoaded struct {
	Seq    uint64
	Orders []api.Order
}

type ListFailed struct {
	Seq     uint64
	Message string
}

type MyListRequested struct{ Seq uint64 }

type MyListLoaded struct {
	Seq    uint64
	Orders []api.Order
}

type MyListFailed struct {
	Seq     uint64
	Message string
}

type DeliverRequested struct{}

type DeliverSucceeded struct{ Order api.Order }

type DeliverFailed struct{ Message string }

type DeliverReset struct{}

func (CreateRequested) Type() string  { return "ORDER_CREATE_REQUEST" }
func (CreateSucceeded) Type() string  { return "ORDER_CREATE_SUCCESS" }
func (CreateFailed) Type() string     { return "ORDER_CREATE_FAIL" }
func (CreateReset) Type() string      { return "ORDER_CREATE_RESET" }
func (DetailRequested) Type() string  { return "ORDER_DETAILS_REQUEST" }
func (DetailLoaded) Type() string     { return "ORDER_DETAILS_SUCCESS" }
func (DetailFailed) Type() string     { return "ORDER_DETAILS_FAIL" }
func (ListRequested) Type() string    { return "ORDER_LIST_REQUEST" }
func (ListLoaded) Type() string       { return "ORDER_LIST_SUCCESS" }
func (ListFailed) Type() string       { return "ORDER_LIST_FAIL" }
func (MyListRequested) Type() string  { return "ORDER_LIST_MY_REQUEST" }
func (MyListLoaded) Type() string     { return "ORDER_LIST_MY_SUCCESS" }
func (MyListFailed) Type() string     { return "ORDER_LIST_MY_FAIL" }
func (DeliverRequested) Type() string { return "ORDER_DELIVER_REQUEST" }
func (DeliverSucceeded) Type() string { return "ORDER_DELIVER_SUCCESS" }
func (DeliverFailed) Type() string    { return "ORDER_DELIVER_FAIL" }
func (DeliverReset) Type() string     { return "ORDER_DELIVER_RESET" }
