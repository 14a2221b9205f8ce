package orders

import (
	"context"
	"sync/atomic"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/modules/cart"
	"github.com/priyanka857/Major-Project-1/internal/modules/session"
	"github.com/priyanka857/Major-Project-1/internal/shared/apperr"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

// CartSource reads the current cart slice; the order payload is assembled
// from it at submission time.
type CartSource func() cart.State

type Service struct {
	api      *api.Client
	dispatch store.Dispatch
	token    session.TokenSource
	cart     CartSource
	pricing  cart.Policy

	detailSeq atomic.Uint64
	listSeq   atomic.Uint64
	mySeq     atomic.Uint64
}

func NewService(c *api.Client, dispatch store.Dispatch, token session.TokenSource, cartSrc CartSource, pricing cart.Policy) *Service {
	return &Service{api: c, dispatch: dispatch, token: token, cart: cartSrc, pricing: pricing}
}

// Create submits the checkout draft built from the current cart. An empty
// cart still goes out; the server answers "No order items" and that message
// lands in the slice like any other failure. Success clears the cart items
// (address and payment method stay for the next order).
func (s *Service) Create(ctx context.Context) error {
	s.dispatch(CreateRequested{})

	c := s.cart()
	totals := cart.Summarize(c, s.pricing)

	req := api.OrderCreateRequest{
		OrderItems:      make([]api.OrderItemInput, 0, len(c.Items)),
		ShippingAddress: api.OrderShippingAddress(c.ShippingAddress),
		PaymentMethod:   c.PaymentMethod,
		ItemsPrice:      totals.ItemsPrice,
		ShippingPrice:   totals.ShippingPrice,
		TaxPrice:        totals.TaxPrice,
		TotalPrice:      totals.TotalPrice,
	}
	for _, it := range c.Items {
		req.OrderItems = append(req.OrderItems, api.OrderItemInput{
			Product: it.ProductID,
			Qty:     it.Qty,
			Price:   it.Price,
		})
	}

	o, err := s.api.CreateOrder(ctx, s.token(), req)
	if err != nil {
		s.dispatch(CreateFailed{Message: apperr.Message(err)})
		return err
	}

	s.dispatch(CreateSucceeded{Order: o})
	s.dispatch(cart.Cleared{})
	return nil
}

func (s *Service) Details(ctx context.Context, id int) error {
	seq := s.detailSeq.Add(1)
	s.dispatch(DetailRequested{Seq: seq})

	o, err := s.api.GetOrder(ctx, s.token(), id)
	if err != nil {
		s.dispatch(DetailFailed{Seq: seq, Message: apperr.Message(err)})
		return err
	}

	s.dispatch(DetailLoaded{Seq: seq, Order: o})
	return nil
}

func (s *Service) List(ctx context.Context) error {
	seq := s.listSeq.Add(1)
	s.dispatch(ListRequested{Seq: seq})

	items, err := s.api.ListOrders(ctx, s.token())
	if err != nil {
		s.dispatch(ListFailed{Seq: seq, Message: apperr.Message(err)})
		return err
	}

	s.dispatch(ListLoaded{Seq: seq, Orders: items})
	return nil
}

func (s *Service) MyList(ctx context.Context) error {
	seq := s.mySeq.Add(1)
	s.dispatch(MyListRequested{Seq: seq})

	items, err := s.api.MyOrders(ctx, s.token())
	if err != nil {
		s.dispatch(MyListFailed{Seq: seq, Message: apperr.Message(err)})
		return err
	}

	s.dispatch(MyListLoaded{Seq: seq, Orders: items})
	return nil
}

func (s *Service) Deliver(ctx context.Context, id int) error {
	s.dispatch(DeliverRequested{})

	o, err := s.api.DeliverOrder(ctx, s.token(), id)
	if err != nil {
		s.dispatch(DeliverFailed{Message: apperr.Message(err)})
		return err
	}

	s.dispatch(DeliverSucceeded{Order: o})
	return nil
}

func (s *Service) ResetCreate() { s.dispatch(CreateReset{}) }

func (s *Service) ResetDeliver() { s.dispatch(DeliverReset{}) }
