package products

import "github.com/priyanka857/Major-Project-1/internal/api"

type ListRequested struct{ Seq uint64 }

type ListLoaded struct {
	Seq      uint64
	Products []api.Product
}

type ListFailed struct {
	Seq     uint64
	Message string
}

type DetailRequested struct{ Seq uint64 }

type DetailLoaded struct {
	Seq     uint64
	Product api.Product
}

type DetailFailed struct {
	Seq     uint64
	Message string
}

type CreateRequested struct{}

type CreateSucceeded struct{ Product api.Product }

type CreateFailed struct{ Message string }

type CreateReset struct{}

type UpdateRequested struct{}

type UpdateSucceeded struct{ Product api.Product }

type UpdateFailed struct{ Message string }

type UpdateReset struct{}

type DeleteRequested struct{}

type DeleteSucceeded struct{}

type DeleteFailed struct{ Message string }

type DeleteReset struct{}

func (ListRequested) Type() string   { return "PRODUCT_LIST_REQUEST" }
func (ListLoaded) Type() string      { return "PRODUCT_LIST_SUCCESS" }
func (ListFailed) Type() string      { return "PRODUCT_LIST_FAIL" }
func (DetailRequested) Type() string { return "PRODUCT_DETAILS_REQUEST" }
func (DetailLoaded) Type() string    { return "PRODUCT_DETAILS_SUCCESS" }
func (DetailFailed) Type() string    { return "PRODUCT_DETAILS_FAIL" }
func (CreateRequested) Type() string { return "PRODUCT_CREATE_REQUEST" }
func (CreateSucceeded) Type() string { return "PRODUCT_CREATE_SUCCESS" }
func (CreateFailed) Type() string    { return "PRODUCT_CREATE_FAIL" }
func (CreateReset) Type() string     { return "PRODUCT_CREATE_RESET" }
func (UpdateRequested) Type() string { return "PRODUCT_UPDATE_REQUEST" }
func (UpdateSucceeded) Type() string { return "PRODUCT_UPDATE_SUCCESS" }
func (UpdateFailed) Type() string    { return "PRODUCT_UPDATE_FAIL" }
func (UpdateReset) Type() string     { return "PRODUCT_UPDATE_RESET" }
func (DeleteRequested) Type() string { return "PRODUCT_DELETE_REQUEST" }
func (DeleteSucceeded) Type() string { return "PRODUCT_DELETE_SUCCESS" }
func (DeleteFailed) Type() string    { return "PRODUCT_DELETE_FAIL" }
func (DeleteReset) Type() string     { return "PRODUCT_DELETE_RESET" }
