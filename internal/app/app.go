package app

import (
	"context"
	"log/slog"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/modules/cart"
	"github.com/priyanka857/Major-Project-1/internal/modules/checkout"
	"github.com/priyanka857/Major-Project-1/internal/modules/orders"
	"github.com/priyanka857/Major-Project-1/internal/modules/products"
	"github.com/priyanka857/Major-Project-1/internal/modules/session"
	"github.com/priyanka857/Major-Project-1/internal/modules/users"
	"github.com/priyanka857/Major-Project-1/internal/snapshot"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

// App bundles the store with one action-creator service per resource. All
// consumers get their store handle from here; there are no package-level
// singletons.
type App struct {
	Store *store.Store[State]

	Session  *session.Service
	Products *products.Service
	Users    *users.Service
	Orders   *orders.Service
	Cart     *cart.Service

	Pricing cart.Policy
}

type Config struct {
	API      *api.Client
	Snapshot snapshot.Store
	Logger   *slog.Logger
	Pricing  cart.Policy

	// Extra middleware, applied after logging and persistence (devtools).
	Middleware []store.Middleware[State]
}

func New(ctx context.Context, cfg Config) *App {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	mw := []store.Middleware[State]{store.Logging[State](log)}
	if cfg.Snapshot != nil {
		mw = append(mw, persistence(cfg.Snapshot, log))
	}
	mw = append(mw, cfg.Middleware...)

	st := store.New(initialState(ctx, cfg.Snapshot), Reduce, mw...)
	dispatch := store.Dispatch(st.Dispatch)

	// The token source hands out the best-known bearer token. An expired
	// token is still sent (the server is authoritative); we only log it.
	token := session.TokenSource(func() string {
		t := st.GetState().Session.Token()
		if t != "" && session.TokenExpired(t) {
			log.Warn("session_token_expired")
		}
		return t
	})

	cartSrc := orders.CartSource(func() cart.State {
		return st.GetState().Cart
	})

	return &App{
		Store:    st,
		Session:  session.NewService(cfg.API, dispatch, token),
		Products: products.NewService(cfg.API, dispatch, token),
		Users:    users.NewService(cfg.API, dispatch, token),
		Orders:   orders.NewService(cfg.API, dispatch, token, cartSrc, cfg.Pricing),
		Cart:     cart.NewService(cfg.API, dispatch),
		Pricing:  cfg.Pricing,
	}
}

// CheckoutStep derives the earliest unmet checkout step from current state.
func (a *App) CheckoutStep() checkout.Step {
	s := a.Store.GetState()
	return checkout.Current(s.Session, s.Cart)
}

// CartTotals recomputes the derived totals; they are never stored.
func (a *App) CartTotals() cart.Totals {
	return cart.Summarize(a.Store.GetState().Cart, a.Pricing)
}
