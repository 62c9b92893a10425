package hub

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/slotparty/slotparty/slot"
)

// Owner groups connections under one lifetime so a host can tear down
// everything it registered in one call. Connections disconnected on
// their own simply sit in the set as no-ops until Release.
type Owner struct {
	conns mapset.Set[*slot.Connection[any]]
}

func NewOwner() *Owner {
	return &Owner{conns: mapset.NewSet[*slot.Connection[any]]()}
}

// Listen registers fn on the hub and tracks the resulting connection.
func (o *Owner) Listen(h *Hub, name string, fn func(any)) (*slot.Connection[any], error) {
	c, err := h.Listen(name, fn)
	if err != nil {
		return nil, err
	}
	o.conns.Add(c)
	return c, nil
}

// Track adds an existing connection to the owner's lifetime.
func (o *Owner) Track(c *slot.Connection[any]) {
	o.conns.Add(c)
}

// Release disconnects every tracked connection and empties the set.
// The owner can be reused afterwards.
func (o *Owner) Release() {
	for c := range o.conns.Iter() {
		c.Disconnect()
	}
	o.conns.Clear()
}

// Len returns the number of tracked connections.
func (o *Owner) Len() int {
	return o.conns.Cardinality()
}
