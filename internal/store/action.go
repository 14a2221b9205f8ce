package store

// Action is a dispatched event. Each slice defines a closed set of concrete
// action structs; reducers match on the Go type, and Type() exists only for
// logging and the devtools feed.
type Action interface {
	Type() string
}

// Dispatch is the narrow dependency handed to action-creator services so they
// can emit events without holding the whole store.
type Dispatch func(Action)
