// Package cart owns the shopping-cart slice. Monetary totals are never part
// of the state; they are recomputed from the items on every read (see
// Summarize) so they cannot drift.
package cart

import "github.com/priyanka857/Major-Project-1/internal/store"

type Item struct {
	ProductID    int     `json:"product"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Qty          int     `json:"qty"`
	CountInStock int     `json:"countInStock"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (a Address) Empty() bool { return a.Address == "" }

type State struct {
	Items           []Item
	ShippingAddress Address
	PaymentMethod   string
}

func NewState() State { return State{Items: []Item{}} }

// Reduce applies the cart events. Items holds at most one entry per
// ProductID: adding an existing product replaces the entry in place instead
// of appending a duplicate.
func Reduce(s State, a store.Action) State {
	switch a := a.(type) {
	case ItemAdded:
		return State{
			Items:           upsert(s.Items, a.Item),
			ShippingAddress: s.ShippingAddress,
			PaymentMethod:   s.PaymentMethod,
		}
	case ItemRemoved:
		return State{
			Items:           remove(s.Items, a.ProductID),
			ShippingAddress: s.ShippingAddress,
			PaymentMethod:   s.PaymentMethod,
		}
	case ShippingSaved:
		return State{
			Items:           s.Items,
			ShippingAddress: a.Address,
			PaymentMethod:   s.PaymentMethod,
		}
	case PaymentSaved:
		return State{
			Items:           s.Items,
			ShippingAddress: s.ShippingAddress,
			PaymentMethod:   a.Method,
		}
	case Cleared:
		// Address and payment method survive for the next order.
		return State{
			Items:           []Item{},
			ShippingAddress: s.ShippingAddress,
			PaymentMethod:   s.PaymentMethod,
		}
	default:
		return s
	}
}

func upsert(items []Item, it Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ProductID == it.ProductID {
			out[i] = it
			return out
		}
	}
	return append(out, it)
}

// remove is a no-op when the product is absent.
func remove(items []Item, productID int) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}
