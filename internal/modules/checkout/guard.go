// Package checkout computes which checkout screen is reachable. The steps are
// guard conditions over the session and cart slices, derived on every call;
// nothing here is stored, so there is no step counter to drift.
package checkout

import (
	"github.com/priyanka857/Major-Project-1/internal/modules/cart"
	"github.com/priyanka857/Major-Project-1/internal/modules/session"
)

type Step int

const (
	StepLogin Step = iota + 1
	StepShipping
	StepPayment
	StepPlaceOrder
)

func (s Step) String() string {
	switch s {
	case StepLogin:
		return "login"
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepPlaceOrder:
		return "placeorder"
	default:
		return "unknown"
	}
}

// Current returns the earliest unmet step. An unauthenticated session pins
// the flow to the login step regardless of cart contents.
func Current(sess session.State, c cart.State) Step {
	if !sess.Authenticated() {
		return StepLogin
	}
	if c.ShippingAddress.Empty() {
		return StepShipping
	}
	if c.PaymentMethod == "" {
		return StepPayment
	}
	return StepPlaceOrder
}

// Reachable reports whether a screen may render. A screen mounts only when
// every earlier step is satisfied; otherwise the consumer redirects to
// Current's step instead of rendering a partial form.
func Reachable(step Step, sess session.State, c cart.State) bool {
	return Current(sess, c) >= step
}
