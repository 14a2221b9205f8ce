package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, qty int, price float64) Item {
	return Item{ProductID: id, Name: "p", Price: price, Qty: qty}
}

func TestAddItemUpsertsByProductID(t *testing.T) {
	s := NewState()

	s = Reduce(s, ItemAdded{Item: item(1, 1, 10)})
	s = Reduce(s, ItemAdded{Item: item(2, 2, 5)})
	s = Reduce(s, ItemAdded{Item: item(1, 4, 10)})

	require.Len(t, s.Items, 2)
	assert.Equal(t, 1, s.Items[0].ProductID, "upsert keeps the original position")
	assert.Equal(t, 4, s.Items[0].Qty, "latest quantity wins")
	assert.Equal(t, 2, s.Items[1].ProductID)
}

func TestAddItemDoesNotMutatePreviousState(t *testing.T) {
	s := Reduce(NewState(), ItemAdded{Item: item(1, 1, 10)})

	next := Reduce(s, ItemAdded{Item: item(1, 9, 10)})

	assert.Equal(t, 1, s.Items[0].Qty, "input state must stay untouched")
	assert.Equal(t, 9, next.Items[0].Qty)
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	s := Reduce(NewState(), ItemAdded{Item: item(1, 1, 10)})

	next := Reduce(s, ItemRemoved{ProductID: 99})

	assert.Equal(t, s.Items, next.Items)
}

func TestRemoveItem(t *testing.T) {
	s := NewState()
	s = Reduce(s, ItemAdded{Item: item(1, 1, 10)})
	s = Reduce(s, ItemAdded{Item: item(2, 1, 20)})

	s = Reduce(s, ItemRemoved{ProductID: 1})

	require.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].ProductID)
}

func TestClearKeepsAddressAndPaymentMethod(t *testing.T) {
	s := NewState()
	s = Reduce(s, ItemAdded{Item: item(1, 1, 10)})
	s = Reduce(s, ShippingSaved{Address: Address{Address: "12 High St", City: "Pune", PostalCode: "411001", Country: "India"}})
	s = Reduce(s, PaymentSaved{Method: "Cash On Delivery"})

	s = Reduce(s, Cleared{})

	assert.Empty(t, s.Items)
	assert.Equal(t, "12 High St", s.ShippingAddress.Address)
	assert.Equal(t, "Cash On Delivery", s.PaymentMethod)
}

func TestSaveShippingReplacesWholeAddress(t *testing.T) {
	s := Reduce(NewState(), ShippingSaved{Address: Address{Address: "old", City: "A", PostalCode: "1", Country: "X"}})

	s = Reduce(s, ShippingSaved{Address: Address{Address: "new"}})

	assert.Equal(t, "new", s.ShippingAddress.Address)
	assert.Empty(t, s.ShippingAddress.City, "replacement is total, not a merge")
}
