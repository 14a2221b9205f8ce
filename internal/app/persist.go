package app

import (
	"context"
	"log/slog"

	"github.com/priyanka857/Major-Project-1/internal/modules/cart"
	"github.com/priyanka857/Major-Project-1/internal/modules/session"
	"github.com/priyanka857/Major-Project-1/internal/snapshot"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

// persistence mirrors the durable slices right after the reducer transition,
// in the same dispatch. One write per qualifying event, no batching: the
// durable copy is never more than one event behind memory. Write failures are
// logged and swallowed; persistence must not fail a dispatch.
func persistence(snap snapshot.Store, log *slog.Logger) store.Middleware[State] {
	return func(st *store.Store[State], next func(store.Action)) func(store.Action) {
		return func(a store.Action) {
			next(a)

			ctx := context.Background()
			switch a.(type) {
			case session.LoginSucceeded, session.ProfileUpdateSucceeded:
				s := st.GetState()
				write(ctx, snap, log, snapshot.KeyUserInfo, s.Session.User)

			case session.LoggedOut:
				if err := snap.Delete(ctx, snapshot.KeyUserInfo); err != nil {
					log.Warn("snapshot_purge_failed", slog.String("key", snapshot.KeyUserInfo), slog.String("error", err.Error()))
				}

			case cart.ItemAdded, cart.ItemRemoved, cart.ShippingSaved, cart.PaymentSaved, cart.Cleared:
				// The cart is persisted in full on every mutation.
				s := st.GetState()
				write(ctx, snap, log, snapshot.KeyCartItems, s.Cart.Items)
				write(ctx, snap, log, snapshot.KeyShippingAddress, s.Cart.ShippingAddress)
				write(ctx, snap, log, snapshot.KeyPaymentMethod, s.Cart.PaymentMethod)
			}
		}
	}
}

func write(ctx context.Context, snap snapshot.Store, log *slog.Logger, key string, v any) {
	if err := snap.Write(ctx, key, v); err != nil {
		log.Warn("snapshot_write_failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
