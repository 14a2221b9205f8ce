// Package snapshot is the durable-storage bridge: a small set of state slices
// is mirrored to string-keyed, JSON-encoded entries so a restart can seed the
// store without a network call.
package snapshot

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("snapshot: key not found")

// Keys tracked by the bridge. They match the browser build's localStorage keys
// so a durable copy survives a client swap.
const (
	KeyUserInfo        = "userInfo"
	KeyCartItems       = "cartItems"
	KeyShippingAddress = "shippingAddress"
	KeyPaymentMethod   = "paymentMethod"
)

type Store interface {
	Write(ctx context.Context, key string, v any) error
	Read(ctx context.Context, key string, dst any) error
	Delete(ctx context.Context, key string) error
}

// ReadOr reads key into T, degrading to fallback on any missing or corrupt
// entry. It never fails: a broken durable copy must not keep the store from
// starting.
func ReadOr[T any](ctx context.Context, s Store, key string, fallback T) T {
	var v T
	if err := s.Read(ctx, key, &v); err != nil {
		return fallback
	}
	return v
}
