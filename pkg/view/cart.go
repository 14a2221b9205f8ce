// Package view holds display-ready models derived from store state. Nothing
// here is stored; consumers rebuild these on every render.
package view

import (
	"github.com/priyanka857/Major-Project-1/internal/modules/cart"
)

type CartLine struct {
	ProductID int
	Name      string
	Qty       int
	UnitPrice string
	LineTotal string
}

type CartSummary struct {
	Lines    []CartLine
	Count    int
	Items    string
	Shipping string
	Tax      string
	Total    string
}

// BuildCartSummary derives the formatted cart page model. Totals come from
// cart.Summarize, the single source of truth for derived prices.
func BuildCartSummary(s cart.State, p cart.Policy, currency string) CartSummary {
	t := cart.Summarize(s, p)

	out := CartSummary{
		Lines:    make([]CartLine, 0, len(s.Items)),
		Count:    t.Count,
		Items:    FormatMoney(t.ItemsPrice, currency),
		Shipping: FormatMoney(t.ShippingPrice, currency),
		Tax:      FormatMoney(t.TaxPrice, currency),
		Total:    FormatMoney(t.TotalPrice, currency),
	}

	for _, it := range s.Items {
		out.Lines = append(out.Lines, CartLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			UnitPrice: FormatMoney(it.Price, currency),
			LineTotal: FormatMoney(it.Price*float64(it.Qty), currency),
		})
	}
	return out
}
