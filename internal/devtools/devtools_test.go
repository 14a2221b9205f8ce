package devtools

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanka857/Major-Project-1/internal/store"
)

type tick struct{ N int }

func (t tick) Type() string { return fmt.Sprintf("TICK_%d", t.N) }

type tickState struct{ Last int }

func reduceTick(s tickState, a store.Action) tickState {
	if t, ok := a.(tick); ok {
		s.Last = t.N
	}
	return s
}

func TestRecorderKeepsMostRecentEntries(t *testing.T) {
	r := NewRecorder(3)
	for i := 1; i <= 5; i++ {
		r.add(fmt.Sprintf("TICK_%d", i))
	}

	got := r.Entries()
	require.Len(t, got, 3)
	assert.Equal(t, "TICK_3", got[0].Action, "oldest surviving entry first")
	assert.Equal(t, "TICK_5", got[2].Action)
}

func TestRecorderBeforeWraparound(t *testing.T) {
	r := NewRecorder(10)
	r.add("TICK_1")
	r.add("TICK_2")

	got := r.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "TICK_1", got[0].Action)
}

func TestRecordMiddlewareSeesEveryDispatch(t *testing.T) {
	rec := NewRecorder(0)
	st := store.New(tickState{}, reduceTick, Record[tickState](rec))

	st.Dispatch(tick{N: 1})
	st.Dispatch(tick{N: 2})

	got := rec.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "TICK_1", got[0].Action)
	assert.Equal(t, "TICK_2", got[1].Action)
	assert.Equal(t, 2, st.GetState().Last, "recording must not swallow the dispatch")
}

func TestServerEndpoints(t *testing.T) {
	rec := NewRecorder(0)
	st := store.New(tickState{}, reduceTick, Record[tickState](rec))
	st.Dispatch(tick{N: 7})

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewServer(st, rec, log)

	t.Run("healthz", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("state", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/state", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var got tickState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 7, got.Last)
	})

	t.Run("actions", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/actions", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var got []Entry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "TICK_7", got[0].Action)
	})

	t.Run("request id echoed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(headerRequestID, "rid-42")
		srv.ServeHTTP(w, req)
		assert.Equal(t, "rid-42", w.Header().Get(headerRequestID))
	})
}
