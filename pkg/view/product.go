package view

import (
	"fmt"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/shared/slug"
)

type ProductCard struct {
	ID      int
	Name    string
	Image   string
	Brand   string
	Rating  float64
	Reviews int
	Price   string
	InStock bool
	Path    string
}

// ProductPath builds the canonical product link. The id is authoritative; the
// slug is only there to keep the URL readable.
func ProductPath(id int, name string) string {
	return fmt.Sprintf("/product/%d/%s", id, slug.FromName(name))
}

func BuildProductCard(p api.Product, currency string) ProductCard {
	return ProductCard{
		ID:      p.ID,
		Name:    p.Name,
		Image:   p.Image,
		Brand:   p.Brand,
		Rating:  float64(p.Rating),
		Reviews: p.NumReviews,
		Price:   FormatMoney(float64(p.Price), currency),
		InStock: p.CountInStock > 0,
		Path:    ProductPath(p.ID, p.Name),
	}
}
