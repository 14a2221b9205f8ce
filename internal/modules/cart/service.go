package cart

import (
	"context"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/forms"
	"github.com/priyanka857/Major-Project-1/internal/shared/apperr"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

type Service struct {
	api      *api.Client
	dispatch store.Dispatch
}

func NewService(c *api.Client, dispatch store.Dispatch) *Service {
	return &Service{api: c, dispatch: dispatch}
}

// Add fetches the product's current record first, so the cart line carries
// the live price and stock count, then upserts it. qty below 1 is clamped.
func (s *Service) Add(ctx context.Context, productID, qty int) error {
	if qty < 1 {
		qty = 1
	}

	p, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	s.dispatch(ItemAdded{Item: Item{
		ProductID:    p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Price:        float64(p.Price),
		Qty:          qty,
		CountInStock: p.CountInStock,
	}})
	return nil
}

func (s *Service) Remove(productID int) {
	s.dispatch(ItemRemoved{ProductID: productID})
}

// SaveShipping validates the address form locally; a validation failure
// returns the field errors without touching the store.
func (s *Service) SaveShipping(f forms.ShippingForm) error {
	if fe := forms.Validate(f); fe != nil {
		return apperr.InvalidErr("Check the highlighted fields.", fe)
	}

	s.dispatch(ShippingSaved{Address: Address{
		Address:    f.Address,
		City:       f.City,
		PostalCode: f.PostalCode,
		Country:    f.Country,
	}})
	return nil
}

func (s *Service) SavePaymentMethod(method string) {
	s.dispatch(PaymentSaved{Method: method})
}
