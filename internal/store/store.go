package store

import "sync"

// Store holds one state tree of type S and funnels every transition through
// Dispatch. Dispatch runs the reducer and all subscribers to completion before
// returning; a mutex serializes concurrent dispatchers so reducers always see
// a consistent previous state.
type Store[S any] struct {
	mu       sync.Mutex
	state    S
	reducer  func(S, Action) S
	dispatch func(Action)

	subMu   sync.Mutex
	subs    map[int]func(S)
	nextSub int
}

// Middleware wraps the dispatch chain, outermost first. It must call next to
// let the action reach the reducer.
type Middleware[S any] func(s *Store[S], next func(Action)) func(Action)

func New[S any](initial S, reducer func(S, Action) S, mw ...Middleware[S]) *Store[S] {
	s := &Store[S]{
		state:   initial,
		reducer: reducer,
		subs:    make(map[int]func(S)),
	}
	s.dispatch = s.apply
	for i := len(mw) - 1; i >= 0; i-- {
		s.dispatch = mw[i](s, s.dispatch)
	}
	return s
}

func (s *Store[S]) GetState() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store[S]) Dispatch(a Action) {
	s.dispatch(a)
}

// Subscribe registers a listener called with the new state after every
// dispatch. The returned func removes the listener.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store[S]) apply(a Action) {
	s.mu.Lock()
	next := s.reducer(s.state, a)
	s.state = next
	s.mu.Unlock()

	s.subMu.Lock()
	listeners := make([]func(S), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}
