package view

import "github.com/priyanka857/Major-Project-1/internal/api"

type OrderLine struct {
	ProductID int
	Name      string
	Qty       int
	PriceEach string
	LineTotal string
}

type OrderDetail struct {
	ID          int
	Customer    string
	Status      string
	IsPaid      bool
	IsDelivered bool

	Items    string
	Shipping string
	Tax      string
	Total    string

	Lines []OrderLine
}

// BuildOrderDetail derives the order screen model. The items subtotal is
// recomputed from the lines, not read from the record.
func BuildOrderDetail(o api.Order, currency string) OrderDetail {
	status := "placed"
	if o.IsDelivered {
		status = "delivered"
	} else if o.IsPaid {
		status = "paid"
	}

	var itemsPrice float64
	lines := make([]OrderLine, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		line := float64(it.Price) * float64(it.Qty)
		itemsPrice += line
		lines = append(lines, OrderLine{
			ProductID: it.Product,
			Name:      it.Name,
			Qty:       it.Qty,
			PriceEach: FormatMoney(float64(it.Price), currency),
			LineTotal: FormatMoney(line, currency),
		})
	}

	return OrderDetail{
		ID:          o.ID,
		Customer:    o.User.Name,
		Status:      status,
		IsPaid:      o.IsPaid,
		IsDelivered: o.IsDelivered,
		Items:       FormatMoney(itemsPrice, currency),
		Shipping:    FormatMoney(float64(o.ShippingPrice), currency),
		Tax:         FormatMoney(float64(o.TaxPrice), currency),
		Total:       FormatMoney(float64(o.TotalPrice), currency),
		Lines:       lines,
	}
}
