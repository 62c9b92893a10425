package fanout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slotparty/slotparty/fanout"
)

func TestEmit(t *testing.T) {
	var e fanout.Emitter[int]
	got := []int{}
	e.On(func(v int) { got = append(got, v) })
	e.On(func(v int) { got = append(got, v*10) })

	e.Emit(2)
	assert.Equal(t, []int{2, 20}, got)
	assert.Equal(t, 2, e.Len())
}

func TestOff(t *testing.T) {
	var e fanout.Emitter[int]
	calls := 0
	off := e.On(func(int) { calls++ })

	e.Emit(1)
	off()
	off()
	e.Emit(1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, e.Len())
}

func TestRegisterDuringEmit(t *testing.T) {
	var e fanout.Emitter[int]
	calls := 0
	e.On(func(int) {
		if calls == 0 {
			e.On(func(int) { calls += 100 })
		}
		calls++
	})

	// The snapshot copy means the late handler waits for the next
	// emit.
	e.Emit(0)
	assert.Equal(t, 1, calls)
	e.Emit(0)
	assert.Equal(t, 102, calls)
}
