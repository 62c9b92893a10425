package slot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slotparty/slotparty/slot"
)

func TestSignal0(t *testing.T) {
	s := slot.New0()
	calls := 0
	c := s.Connect(func() { calls++ })

	s.Emit()
	s.Emit()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, s.Len())

	c.Disconnect()
	assert.False(t, c.Connected())
	s.Emit()
	assert.Equal(t, 2, calls)
	assert.True(t, s.Empty())
}

func TestSignal2(t *testing.T) {
	s := slot.New2[string, int]()
	got := []string{}
	s.Connect(func(k string, n int) {
		got = append(got, k)
		assert.Equal(t, 42, n)
	})

	s.Emit("hi", 42)
	assert.Equal(t, []string{"hi"}, got)

	s.Close()
	s.Emit("bye", 42)
	assert.Equal(t, []string{"hi"}, got)
}

func TestSignal3DisconnectDuringEmit(t *testing.T) {
	s := slot.New3[int, int, int]()
	got := []int{}
	var b *slot.Connection3[int, int, int]
	s.Connect(func(x, y, z int) { got = append(got, x+y+z) })
	b = s.Connect(func(x, y, z int) {
		got = append(got, -1)
		b.Disconnect()
	})

	s.Emit(1, 2, 3)
	s.Emit(1, 2, 3)
	assert.Equal(t, []int{6, -1, 6}, got)
}

func TestSignal4(t *testing.T) {
	s := slot.New4[int, string, bool, float64]()
	var gotN int
	var gotS string
	var gotB bool
	var gotF float64
	s.Connect(func(n int, str string, b bool, f float64) {
		gotN, gotS, gotB, gotF = n, str, b, f
	})

	s.Emit(7, "seven", true, 7.5)
	assert.Equal(t, 7, gotN)
	assert.Equal(t, "seven", gotS)
	assert.True(t, gotB)
	assert.Equal(t, 7.5, gotF)
}
