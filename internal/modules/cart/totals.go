package cart

import (
	"math"
	"os"
	"strconv"
)

// Policy is the fixed pricing rule applied when totals are derived: a flat
// shipping surcharge on any non-empty cart and a tax rate on the items price.
type Policy struct {
	ShippingPrice float64
	TaxRate       float64
}

// DefaultPolicy matches the storefront's live configuration: flat 100
// shipping, no tax.
func DefaultPolicy() Policy {
	return Policy{ShippingPrice: 100, TaxRate: 0}
}

func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	if v := os.Getenv("SHIPPING_PRICE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.ShippingPrice = f
		}
	}
	if v := os.Getenv("TAX_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.TaxRate = f
		}
	}
	return p
}

type Totals struct {
	Count         int
	ItemsPrice    float64
	ShippingPrice float64
	TaxPrice      float64
	TotalPrice    float64
}

// Summarize derives the cart totals. This is the single source of truth:
// totals are never stored, so they cannot drift from the items they summarize.
func Summarize(s State, p Policy) Totals {
	var t Totals
	for _, it := range s.Items {
		t.Count += it.Qty
		t.ItemsPrice += it.Price * float64(it.Qty)
	}
	t.ItemsPrice = round2(t.ItemsPrice)

	t.ShippingPrice = p.ShippingPrice
	t.TaxPrice = round2(t.ItemsPrice * p.TaxRate)
	t.TotalPrice = round2(t.ItemsPrice + t.ShippingPrice + t.TaxPrice)
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
