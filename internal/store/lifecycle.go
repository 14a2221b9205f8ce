package store

// Status is the lifecycle phase of an async slice.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusLoaded    Status = "loaded"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// NewCollection, NewDetail and NewMutation build the idle initial shapes the
// composition root seeds the tree with.
func NewCollection[T any]() Collection[T] { return Collection[T]{Status: StatusIdle} }
func NewDetail[T any]() Detail[T]         { return Detail[T]{Status: StatusIdle} }
func NewMutation[T any]() Mutation[T]     { return Mutation[T]{Status: StatusIdle} }

// Collection is the slice shape for list fetches: products, users, orders.
// Seq records the sequence number of the most recent request; a Loaded or
// Failed carrying a different seq belongs to a superseded in-flight fetch and
// is discarded, so a slow stale response can never overwrite a newer result.
type Collection[T any] struct {
	Status Status
	Items  []T
	Err    string
	Seq    uint64
}

// Request keeps previously loaded Items so stale data can still render under
// a loading overlay.
func (c Collection[T]) Request(seq uint64) Collection[T] {
	c.Status = StatusLoading
	c.Err = ""
	c.Seq = seq
	return c
}

func (c Collection[T]) Loaded(seq uint64, items []T) Collection[T] {
	if seq != c.Seq {
		return c
	}
	c.Status = StatusLoaded
	c.Items = items
	c.Err = ""
	return c
}

func (c Collection[T]) Failed(seq uint64, msg string) Collection[T] {
	if seq != c.Seq {
		return c
	}
	c.Status = StatusFailed
	c.Err = msg
	return c
}

// Detail is Collection's single-item counterpart (product details, user
// details, order details).
type Detail[T any] struct {
	Status Status
	Item   T
	Err    string
	Seq    uint64
}

func (d Detail[T]) Request(seq uint64) Detail[T] {
	d.Status = StatusLoading
	d.Err = ""
	d.Seq = seq
	return d
}

func (d Detail[T]) Loaded(seq uint64, item T) Detail[T] {
	if seq != d.Seq {
		return d
	}
	d.Status = StatusLoaded
	d.Item = item
	d.Err = ""
	return d
}

func (d Detail[T]) Failed(seq uint64, msg string) Detail[T] {
	if seq != d.Seq {
		return d
	}
	d.Status = StatusFailed
	d.Err = msg
	return d
}

// Mutation is the slice shape for create/update/delete operations. It is
// transient: consumers must dispatch the slice's reset event after observing
// a terminal status, otherwise a stale succeeded flag re-triggers dependent
// effects. Mutations carry no seq; duplicate submissions are a consumer-side
// debounce, not a structural guarantee.
type Mutation[T any] struct {
	Status Status
	Result T
	Err    string
}

func (m Mutation[T]) Request() Mutation[T] {
	m.Status = StatusLoading
	m.Err = ""
	return m
}

func (m Mutation[T]) Succeeded(result T) Mutation[T] {
	m.Status = StatusSucceeded
	m.Result = result
	m.Err = ""
	return m
}

func (m Mutation[T]) Failed(msg string) Mutation[T] {
	m.Status = StatusFailed
	m.Err = msg
	return m
}

func (m Mutation[T]) Reset() Mutation[T] {
	var zero Mutation[T]
	zero.Status = StatusIdle
	return zero
}
