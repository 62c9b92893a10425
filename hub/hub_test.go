package hub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotparty/slotparty/hub"
)

func TestListenAndEmit(t *testing.T) {
	h := hub.New()
	got := []string{}
	_, err := h.Listen("user.created", func(v any) {
		got = append(got, v.(string))
	})
	require.NoError(t, err)

	h.Emit("user.created", "ada")
	h.Emit("user.deleted", "ignored")
	assert.Equal(t, []string{"ada"}, got)
	assert.Equal(t, 1, h.Len("user.created"))
}

func TestListenEmptyName(t *testing.T) {
	h := hub.New()
	_, err := h.Listen("", func(any) {})
	assert.ErrorIs(t, err, hub.ErrEmptyName)
	assert.Panics(t, func() { h.MustListen("", func(any) {}) })
}

func TestEmitOrderAndDisconnect(t *testing.T) {
	h := hub.New()
	got := []string{}
	a := h.MustListen("tick", func(any) { got = append(got, "a") })
	h.MustListen("tick", func(any) { got = append(got, "b") })

	h.Emit("tick", nil)
	assert.Equal(t, []string{"a", "b"}, got)

	a.Disconnect()
	got = got[:0]
	h.Emit("tick", nil)
	assert.Equal(t, []string{"b"}, got)
}

func TestRemoveDuringEmit(t *testing.T) {
	h := hub.New()
	got := []string{}
	h.MustListen("boom", func(any) {
		got = append(got, "first")
		h.Remove("boom")
	})
	h.MustListen("boom", func(any) { got = append(got, "second") })

	// Removing the name mid-dispatch cancels the rest of the pass.
	h.Emit("boom", nil)
	assert.Equal(t, []string{"first"}, got)
	assert.Equal(t, 0, h.Len("boom"))

	h.Emit("boom", nil)
	assert.Equal(t, []string{"first"}, got)
}

func TestClose(t *testing.T) {
	h := hub.New()
	c := h.MustListen("a", func(any) {})
	h.MustListen("b", func(any) {})

	h.Close()
	assert.False(t, c.Connected())
	assert.Equal(t, 0, h.Len("a"))
	assert.Equal(t, 0, h.Len("b"))

	// The hub stays usable.
	h.MustListen("a", func(any) {})
	assert.Equal(t, 1, h.Len("a"))
}

func TestDefaultHub(t *testing.T) {
	got := 0
	c := hub.MustListen("default.test", func(v any) { got = v.(int) })
	defer c.Disconnect()

	hub.Emit("default.test", 9)
	assert.Equal(t, 9, got)
}

func TestOwnerRelease(t *testing.T) {
	h := hub.New()
	o := hub.NewOwner()
	calls := 0
	_, err := o.Listen(h, "a", func(any) { calls++ })
	require.NoError(t, err)
	_, err = o.Listen(h, "b", func(any) { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 2, o.Len())

	h.Emit("a", nil)
	h.Emit("b", nil)
	assert.Equal(t, 2, calls)

	o.Release()
	assert.Equal(t, 0, o.Len())
	h.Emit("a", nil)
	h.Emit("b", nil)
	assert.Equal(t, 2, calls)
}

func TestOwnerTrack(t *testing.T) {
	h := hub.New()
	o := hub.NewOwner()
	c := h.MustListen("x", func(any) {})
	o.Track(c)

	o.Release()
	assert.False(t, c.Connected())
}

func TestOwnerReleaseToleratesClosedHub(t *testing.T) {
	h := hub.New()
	o := hub.NewOwner()
	_, err := o.Listen(h, "x", func(any) {})
	require.NoError(t, err)

	// The hub tears down first; releasing afterwards must be a no-op
	// on the already orphaned connections.
	h.Close()
	o.Release()
	assert.Equal(t, 0, o.Len())
}
