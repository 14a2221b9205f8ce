package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/modules/cart"
	"github.com/priyanka857/Major-Project-1/internal/modules/session"
)

func authed() session.State {
	return session.FromUser(&api.User{ID: 1, Username: "ravi@example.com", Token: "t"})
}

func TestCurrent(t *testing.T) {
	full := cart.State{
		Items:           []cart.Item{{ProductID: 1, Qty: 1, Price: 10}},
		ShippingAddress: cart.Address{Address: "12 High St", City: "Pune", PostalCode: "411001", Country: "India"},
		PaymentMethod:   "Cash On Delivery",
	}

	tests := []struct {
		name string
		sess session.State
		cart cart.State
		want Step
	}{
		{"anonymous with empty cart", session.NewState(), cart.NewState(), StepLogin},
		{"anonymous with full cart still needs login", session.NewState(), full, StepLogin},
		{"authenticated without address", authed(), cart.NewState(), StepShipping},
		{"authenticated with address only", authed(), cart.State{ShippingAddress: full.ShippingAddress}, StepPayment},
		{"everything satisfied", authed(), full, StepPlaceOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Current(tt.sess, tt.cart))
		})
	}
}

func TestReachable(t *testing.T) {
	c := cart.State{ShippingAddress: cart.Address{Address: "12 High St"}}

	assert.True(t, Reachable(StepShipping, authed(), c))
	assert.True(t, Reachable(StepPayment, authed(), c), "current step itself is reachable")
	assert.False(t, Reachable(StepPlaceOrder, authed(), c), "later steps stay locked")
	assert.False(t, Reachable(StepShipping, session.NewState(), c))
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "placeorder", StepPlaceOrder.String())
	assert.Equal(t, "unknown", Step(0).String())
}
