package templates

import (
	"fmt"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(fmt.Sprintf("%d", i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func argParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		fmt.Fprintf(&sb, "arg%d T%d", i, i)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// ArityGen renders the fixed-arity wrappers over the core signal: a
// zero-argument Signal0 plus Signal2..SignalN over small tuple payload
// types. Arity 1 is the core Signal itself.
func ArityGen(max int) string {
	sb := &strings.Builder{}
	sb.WriteString("package slot\n")
	arity0(sb)
	for n := 2; n <= max; n++ {
		arityN(sb, n)
	}
	return sb.String()
}

func arity0(sb *strings.Builder) {
	sb.WriteString(`
type Signal0 struct {
	inner Signal[struct{}]
}

func New0() *Signal0 {
	return &Signal0{}
}

func (s *Signal0) Connect(fn func()) *Connection0 {
	c := s.inner.Connect(func(struct{}) {
		fn()
	})
	return &Connection0{inner: c}
}

func (s *Signal0) Emit() {
	s.inner.Emit(struct{}{})
}

func (s *Signal0) Close() {
	s.inner.Close()
}

func (s *Signal0) Len() int {
	return s.inner.Len()
}

func (s *Signal0) Empty() bool {
	return s.inner.Empty()
}

type Connection0 struct {
	inner *Connection[struct{}]
}

func (c *Connection0) Disconnect() {
	c.inner.Disconnect()
}

func (c *Connection0) Connected() bool {
	return c.inner.Connected()
}
`)
}

func arityN(sb *strings.Builder, n int) {
	ts := prefixedStrings("T", n)     // T0, T1
	as := prefixedStrings("a.Arg", n) // a.Arg0, a.Arg1
	args := fmt.Sprintf("Args%d[%s]", n, ts)

	fmt.Fprintf(sb, "\ntype Args%d[%s any] struct {\n", n, ts)
	for i := 0; i < n; i++ {
		fmt.Fprintf(sb, "\tArg%d T%d\n", i, i)
	}
	sb.WriteString("}\n")

	fmt.Fprintf(sb, `
type Signal%[1]d[%[2]s any] struct {
	inner Signal[%[3]s]
}

func New%[1]d[%[2]s any]() *Signal%[1]d[%[2]s] {
	return &Signal%[1]d[%[2]s]{}
}

func (s *Signal%[1]d[%[2]s]) Connect(fn func(%[2]s)) *Connection%[1]d[%[2]s] {
	c := s.inner.Connect(func(a %[3]s) {
		fn(%[4]s)
	})
	return &Connection%[1]d[%[2]s]{inner: c}
}

func (s *Signal%[1]d[%[2]s]) Emit(%[5]s) {
	s.inner.Emit(%[3]s{
`, n, ts, args, as, argParams(n))
	for i := 0; i < n; i++ {
		fmt.Fprintf(sb, "\t\tArg%d: arg%d,\n", i, i)
	}
	fmt.Fprintf(sb, `	})
}

func (s *Signal%[1]d[%[2]s]) Close() {
	s.inner.Close()
}

func (s *Signal%[1]d[%[2]s]) Len() int {
	return s.inner.Len()
}

func (s *Signal%[1]d[%[2]s]) Empty() bool {
	return s.inner.Empty()
}

type Connection%[1]d[%[2]s any] struct {
	inner *Connection[%[3]s]
}

func (c *Connection%[1]d[%[2]s]) Disconnect() {
	c.inner.Disconnect()
}

func (c *Connection%[1]d[%[2]s]) Connected() bool {
	return c.inner.Connected()
}
`, n, ts, args)
}
