package api

import "context"

type OrderItemInput struct {
	Product int     `json:"product"`
	Qty     int     `json:"qty"`
	Price   float64 `json:"price"`
}

type OrderCreateRequest struct {
	OrderItems      []OrderItemInput     `json:"orderItems"`
	ShippingAddress OrderShippingAddress `json:"shippingAddress"`
	PaymentMethod   string               `json:"paymentMethod"`
	ItemsPrice      float64              `json:"itemsPrice"`
	ShippingPrice   float64              `json:"shippingPrice"`
	TaxPrice        float64              `json:"taxPrice"`
	TotalPrice      float64              `json:"totalPrice"`
}

func (c *Client) CreateOrder(ctx context.Context, token string, in OrderCreateRequest) (Order, error) {
	var out Order
	err := c.post(ctx, "/api/orders/add/", token, in, &out)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, token string, id int) (Order, error) {
	var out Order
	err := c.get(ctx, pathf("/api/orders/%d/", id), token, &out)
	return out, err
}

// ListOrders is the admin order book.
func (c *Client) ListOrders(ctx context.Context, token string) ([]Order, error) {
	var out []Order
	err := c.get(ctx, "/api/orders/", token, &out)
	return out, err
}

// MyOrders lists the authenticated user's own orders.
func (c *Client) MyOrders(ctx context.Context, token string) ([]Order, error) {
	var out []Order
	err := c.get(ctx, "/api/orders/myorders/", token, &out)
	return out, err
}

// DeliverOrder marks an order delivered (admin).
func (c *Client) DeliverOrder(ctx context.Context, token string, id int) (Order, error) {
	var out Order
	err := c.put(ctx, pathf("/api/orders/%d/deliver/", id), token, struct{}{}, &out)
	return out, err
}
