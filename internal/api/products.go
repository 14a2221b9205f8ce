package api

import "context"

type ProductUpdateRequest struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	CountInStock int     `json:"countInStock"`
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	err := c.get(ctx, "/api/products/", "", &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	var out Product
	err := c.get(ctx, pathf("/api/product/%d/", id), "", &out)
	return out, err
}

// CreateProduct makes a placeholder record the admin then edits; the server
// fills in sample values.
func (c *Client) CreateProduct(ctx context.Context, token string) (Product, error) {
	var out Product
	err := c.post(ctx, "/api/products/create/", token, struct{}{}, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int, in ProductUpdateRequest) (Product, error) {
	var out Product
	err := c.put(ctx, pathf("/api/products/update/%d/", id), token, in, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int) error {
	return c.delete(ctx, pathf("/api/products/delete/%d/", id), token)
}
