// Package devtools exposes the running store for inspection: a JSON snapshot
// of the tree and a ring buffer of recently dispatched actions.
package devtools

import (
	"sync"
	"time"

	"github.com/priyanka857/Major-Project-1/internal/store"
)

type Entry struct {
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

// Recorder keeps the last Max dispatched action types.
type Recorder struct {
	mu   sync.Mutex
	buf  []Entry
	next int
	full bool
}

const defaultMax = 200

func NewRecorder(max int) *Recorder {
	if max <= 0 {
		max = defaultMax
	}
	return &Recorder{buf: make([]Entry, max)}
}

func (r *Recorder) add(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.next] = Entry{Action: action, At: time.Now()}
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// Entries returns the recorded actions, oldest first.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		out := make([]Entry, r.next)
		copy(out, r.buf[:r.next])
		return out
	}
	out := make([]Entry, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	out = append(out, r.buf[:r.next]...)
	return out
}

// Record feeds the recorder from the dispatch chain.
func Record[S any](r *Recorder) store.Middleware[S] {
	return func(_ *store.Store[S], next func(store.Action)) func(store.Action) {
		return func(a store.Action) {
			r.add(a.Type())
			next(a)
		}
	}
}
