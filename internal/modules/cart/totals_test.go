package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := NewState()
	s = Reduce(s, ItemAdded{Item: Item{ProductID: 1, Price: 499.99, Qty: 2}})
	s = Reduce(s, ItemAdded{Item: Item{ProductID: 2, Price: 120, Qty: 1}})

	got := Summarize(s, Policy{ShippingPrice: 100, TaxRate: 0})

	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 1119.98, got.ItemsPrice)
	assert.Equal(t, 100.0, got.ShippingPrice)
	assert.Equal(t, 0.0, got.TaxPrice)
	assert.Equal(t, 1219.98, got.TotalPrice)
}

func TestSummarizeAppliesTaxRate(t *testing.T) {
	s := Reduce(NewState(), ItemAdded{Item: Item{ProductID: 1, Price: 200, Qty: 1}})

	got := Summarize(s, Policy{ShippingPrice: 50, TaxRate: 0.18})

	assert.Equal(t, 36.0, got.TaxPrice)
	assert.Equal(t, 286.0, got.TotalPrice)
}

func TestSummarizeTracksEveryTransition(t *testing.T) {
	p := DefaultPolicy()
	s := Reduce(NewState(), ItemAdded{Item: Item{ProductID: 1, Price: 10, Qty: 5}})
	assert.Equal(t, 50.0, Summarize(s, p).ItemsPrice)

	// Re-adding the same product replaces its quantity, so the total follows.
	s = Reduce(s, ItemAdded{Item: Item{ProductID: 1, Price: 10, Qty: 2}})
	assert.Equal(t, 20.0, Summarize(s, p).ItemsPrice)

	s = Reduce(s, ItemRemoved{ProductID: 1})
	assert.Equal(t, 0.0, Summarize(s, p).ItemsPrice)
	assert.Equal(t, 0, Summarize(s, p).Count)
}
