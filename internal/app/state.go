// Package app is the composition root: it owns the state tree, the root
// reducer, the persistence middleware and the service wiring.
package app

import (
	"context"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/modules/cart"
	"github.com/priyanka857/Major-Project-1/internal/modules/orders"
	"github.com/priyanka857/Major-Project-1/internal/modules/products"
	"github.com/priyanka857/Major-Project-1/internal/modules/session"
	"github.com/priyanka857/Major-Project-1/internal/modules/users"
	"github.com/priyanka857/Major-Project-1/internal/snapshot"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

// State is the whole tree, one field per slice. Composing it as a struct
// makes a misnamed slice a compile error rather than a runtime typo.
type State struct {
	ProductList    products.ListState
	ProductDetails products.DetailState
	ProductCreate  products.CreateState
	ProductUpdate  products.UpdateState
	ProductDelete  products.DeleteState

	Session       session.State
	Signup        session.SignupState
	ProfileUpdate session.ProfileUpdateState

	UserList    users.ListState
	UserDetails users.DetailState
	UserUpdate  users.UpdateState
	UserDelete  users.DeleteState

	Cart cart.State

	OrderCreate  orders.CreateState
	OrderDetails orders.DetailState
	OrderDeliver orders.DeliverState
	OrderList    orders.ListState
	OrderMyList  orders.MyListState
}

// Reduce runs every slice reducer. Each reducer ignores events it does not
// own, so one dispatch touches exactly the slices that care.
func Reduce(s State, a store.Action) State {
	s.ProductList = products.ReduceList(s.ProductList, a)
	s.ProductDetails = products.ReduceDetail(s.ProductDetails, a)
	s.ProductCreate = products.ReduceCreate(s.ProductCreate, a)
	s.ProductUpdate = products.ReduceUpdate(s.ProductUpdate, a)
	s.ProductDelete = products.ReduceDelete(s.ProductDelete, a)

	s.Session = session.Reduce(s.Session, a)
	s.Signup = session.ReduceSignup(s.Signup, a)
	s.ProfileUpdate = session.ReduceProfileUpdate(s.ProfileUpdate, a)

	s.UserList = users.ReduceList(s.UserList, a)
	s.UserDetails = users.ReduceDetail(s.UserDetails, a)
	s.UserUpdate = users.ReduceUpdate(s.UserUpdate, a)
	s.UserDelete = users.ReduceDelete(s.UserDelete, a)

	s.Cart = cart.Reduce(s.Cart, a)

	s.OrderCreate = orders.ReduceCreate(s.OrderCreate, a)
	s.OrderDetails = orders.ReduceDetail(s.OrderDetails, a)
	s.OrderDeliver = orders.ReduceDeliver(s.OrderDeliver, a)
	s.OrderList = orders.ReduceList(s.OrderList, a)
	s.OrderMyList = orders.ReduceMyList(s.OrderMyList, a)

	return s
}

// initialState is each slice's idle default, overridden by whatever the
// snapshot bridge can rehydrate for the session and cart slices.
func initialState(ctx context.Context, snap snapshot.Store) State {
	s := State{
		ProductList:    store.NewCollection[api.Product](),
		ProductDetails: store.NewDetail[api.Product](),
		ProductCreate:  store.NewMutation[api.Product](),
		ProductUpdate:  store.NewMutation[api.Product](),
		ProductDelete:  store.NewMutation[struct{}](),

		Session:       session.NewState(),
		Signup:        store.NewMutation[api.RegisterResult](),
		ProfileUpdate: store.NewMutation[api.User](),

		UserList:    store.NewCollection[api.User](),
		UserDetails: store.NewDetail[api.User](),
		UserUpdate:  store.NewMutation[struct{}](),
		UserDelete:  store.NewMutation[struct{}](),

		Cart: cart.NewState(),

		OrderCreate:  store.NewMutation[api.Order](),
		OrderDetails: store.NewDetail[api.Order](),
		OrderDeliver: store.NewMutation[api.Order](),
		OrderList:    store.NewCollection[api.Order](),
		OrderMyList:  store.NewCollection[api.Order](),
	}

	if snap == nil {
		return s
	}

	user := snapshot.ReadOr[*api.User](ctx, snap, snapshot.KeyUserInfo, nil)
	s.Session = session.FromUser(user)

	s.Cart.Items = snapshot.ReadOr(ctx, snap, snapshot.KeyCartItems, []cart.Item{})
	s.Cart.ShippingAddress = snapshot.ReadOr(ctx, snap, snapshot.KeyShippingAddress, cart.Address{})
	s.Cart.PaymentMethod = snapshot.ReadOr(ctx, snap, snapshot.KeyPaymentMethod, "")

	return s
}
