package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionLifecycle(t *testing.T) {
	c := NewCollection[string]()
	require.Equal(t, StatusIdle, c.Status)

	c = c.Request(1)
	assert.Equal(t, StatusLoading, c.Status)

	c = c.Loaded(1, []string{"a", "b"})
	assert.Equal(t, StatusLoaded, c.Status)
	assert.Equal(t, []string{"a", "b"}, c.Items)

	// Re-enterable: loaded goes back to loading on a fresh request, keeping
	// the stale items for rendering.
	c = c.Request(2)
	assert.Equal(t, StatusLoading, c.Status)
	assert.Equal(t, []string{"a", "b"}, c.Items)
}

func TestCollectionFailKeepsLastKnownItems(t *testing.T) {
	c := NewCollection[string]().Request(1).Loaded(1, []string{"a"})

	c = c.Request(2).Failed(2, "boom")

	assert.Equal(t, StatusFailed, c.Status)
	assert.Equal(t, "boom", c.Err)
	assert.Equal(t, []string{"a"}, c.Items)
}

func TestCollectionDiscardsStaleResponses(t *testing.T) {
	c := NewCollection[string]()

	// Two overlapping fetches; the first resolves after the second started.
	c = c.Request(1)
	c = c.Request(2)

	c = c.Loaded(1, []string{"stale"})
	assert.Equal(t, StatusLoading, c.Status, "stale success must not apply")
	assert.Empty(t, c.Items)

	c = c.Loaded(2, []string{"fresh"})
	assert.Equal(t, StatusLoaded, c.Status)
	assert.Equal(t, []string{"fresh"}, c.Items)

	// A stale failure is equally ignored.
	c = c.Failed(1, "late error")
	assert.Equal(t, StatusLoaded, c.Status)
	assert.Empty(t, c.Err)
}

func TestDetailLifecycle(t *testing.T) {
	d := NewDetail[int]()

	d = d.Request(1).Loaded(1, 42)
	assert.Equal(t, StatusLoaded, d.Status)
	assert.Equal(t, 42, d.Item)

	d = d.Request(2).Failed(2, "gone")
	assert.Equal(t, StatusFailed, d.Status)
	assert.Equal(t, 42, d.Item, "last-known item survives a failure")

	d = d.Loaded(1, 7)
	assert.Equal(t, 42, d.Item, "stale detail response is discarded")
}

func TestMutationLifecycleAndReset(t *testing.T) {
	m := NewMutation[string]()
	require.Equal(t, StatusIdle, m.Status)

	m = m.Request()
	assert.Equal(t, StatusLoading, m.Status)

	m = m.Succeeded("done")
	assert.Equal(t, StatusSucceeded, m.Status)
	assert.Equal(t, "done", m.Result)

	// Without a reset, a repeat submission still moves through loading again.
	m = m.Request()
	assert.Equal(t, StatusLoading, m.Status)
	m = m.Failed("dup")
	assert.Equal(t, StatusFailed, m.Status)
	assert.Equal(t, "dup", m.Err)

	m = m.Reset()
	assert.Equal(t, StatusIdle, m.Status)
	assert.Empty(t, m.Result)
	assert.Empty(t, m.Err)
}
