package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterState struct {
	N int
}

type increment struct{}

func (increment) Type() string { return "INCREMENT" }

type decrement struct{}

func (decrement) Type() string { return "DECREMENT" }

type noop struct{}

func (noop) Type() string { return "NOOP" }

func counterReducer(s counterState, a Action) counterState {
	switch a.(type) {
	case increment:
		s.N++
	case decrement:
		s.N--
	}
	return s
}

func TestDispatchRunsReducerToCompletion(t *testing.T) {
	st := New(counterState{}, counterReducer)

	st.Dispatch(increment{})
	st.Dispatch(increment{})
	st.Dispatch(decrement{})

	assert.Equal(t, 1, st.GetState().N)
}

func TestUnknownActionLeavesStateUntouched(t *testing.T) {
	st := New(counterState{N: 5}, counterReducer)

	st.Dispatch(noop{})

	assert.Equal(t, 5, st.GetState().N)
}

func TestSubscribersSeeEveryTransition(t *testing.T) {
	st := New(counterState{}, counterReducer)

	var seen []int
	unsub := st.Subscribe(func(s counterState) {
		seen = append(seen, s.N)
	})

	st.Dispatch(increment{})
	st.Dispatch(increment{})
	unsub()
	st.Dispatch(increment{})

	require.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 3, st.GetState().N)
}

func TestMiddlewareOrderIsOutermostFirst(t *testing.T) {
	var order []string
	tag := func(name string) Middleware[counterState] {
		return func(_ *Store[counterState], next func(Action)) func(Action) {
			return func(a Action) {
				order = append(order, name)
				next(a)
			}
		}
	}

	st := New(counterState{}, counterReducer, tag("outer"), tag("inner"))
	st.Dispatch(increment{})

	require.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, st.GetState().N)
}

func TestMiddlewareSeesStateAfterReducer(t *testing.T) {
	var after int
	probe := func(s *Store[counterState], next func(Action)) func(Action) {
		return func(a Action) {
			next(a)
			after = s.GetState().N
		}
	}

	st := New(counterState{}, counterReducer, probe)
	st.Dispatch(increment{})

	assert.Equal(t, 1, after)
}
