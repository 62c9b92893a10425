package slot

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

type Args2[T0, T1 any] struct {
	Arg0 T0
	Arg1 T1
}

type Signal2[T0, T1 any] struct {
	inner Signal[Args2[T0, T1]]
}

func New2[T0, T1 any]() *Signal2[T0, T1] {
	return &Signal2[T0, T1]{}
}

func (s *Signal2[T0, T1]) Connect(fn func(T0, T1)) *Connection2[T0, T1] {
	c := s.inner.Connect(func(a Args2[T0, T1]) {
		fn(a.Arg0, a.Arg1)
	})
	return &Connection2[T0, T1]{inner: c}
}

func (s *Signal2[T0, T1]) Emit(arg0 T0, arg1 T1) {
	s.inner.Emit(Args2[T0, T1]{
		Arg0: arg0,
		Arg1: arg1,
	})
}

func (s *Signal2[T0, T1]) Close() {
	s.inner.Close()
}

func (s *Signal2[T0, T1]) Len() int {
	return s.inner.Len()
}

func (s *Signal2[T0, T1]) Empty() bool {
	return s.inner.Empty()
}

type Connection2[T0, T1 any] struct {
	inner *Connection[Args2[T0, T1]]
}

func (c *Connection2[T0, T1]) Disconnect() {
	c.inner.Disconnect()
}

func (c *Connection2[T0, T1]) Connected() bool {
	return c.inner.Connected()
}

type Args3[T0, T1, T2 any] struct {
	Arg0 T0
	Arg1 T1
	Arg2 T2
}

type Signal3[T0, T1, T2 any] struct {
	inner Signal[Args3[T0, T1, T2]]
}

func New3[T0, T1, T2 any]() *Signal3[T0, T1, T2] {
	return &Signal3[T0, T1, T2]{}
}

func (s *Signal3[T0, T1, T2]) Connect(fn func(T0, T1, T2)) *Connection3[T0, T1, T2] {
	c := s.inner.Connect(func(a Args3[T0, T1, T2]) {
		fn(a.Arg0, a.Arg1, a.Arg2)
	})
	return &Connection3[T0, T1, T2]{inner: c}
}

func (s *Signal3[T0, T1, T2]) Emit(arg0 T0, arg1 T1, arg2 T2) {
	s.inner.Emit(Args3[T0, T1, T2]{
		Arg0: arg0,
		Arg1: arg1,
		Arg2: arg2,
	})
}

func (s *Signal3[T0, T1, T2]) Close() {
	s.inner.Close()
}

func (s *Signal3[T0, T1, T2]) Len() int {
	return s.inner.Len()
}

func (s *Signal3[T0, T1, T2]) Empty() bool {
	return s.inner.Empty()
}

type Connection3[T0, T1, T2 any] struct {
	inner *Connection[Args3[T0, T1, T2]]
}

func (c *Connection3[T0, T1, T2]) Disconnect() {
	c.inner.Disconnect()
}

func (c *Connection3[T0, T1, T2]) Connected() bool {
	return c.inner.Connected()
}

type Args4[T0, T1, T2, T3 any] struct {
	Arg0 T0
	Arg1 T1
	Arg2 T2
	Arg3 T3
}

type Signal4[T0, T1, T2, T3 any] struct {
	inner Signal[Args4[T0, T1, T2, T3]]
}

func New4[T0, T1, T2, T3 any]() *Signal4[T0, T1, T2, T3] {
	return &Signal4[T0, T1, T2, T3]{}
}

func (s *Signal4[T0, T1, T2, T3]) Connect(fn func(T0, T1, T2, T3)) *Connection4[T0, T1, T2, T3] {
	c := s.inner.Connect(func(a Args4[T0, T1, T2, T3]) {
		fn(a.Arg0, a.Arg1, a.Arg2, a.Arg3)
	})
	return &Connection4[T0, T1, T2, T3]{inner: c}
}

func (s *Signal4[T0, T1, T2, T3]) Emit(arg0 T0, arg1 T1, arg2 T2, arg3 T3) {
	s.inner.Emit(Args4[T0, T1, T2, T3]{
		Arg0: arg0,
		Arg1: arg1,
		Arg2: arg2,
		Arg3: arg3,
	})
}

func (s *Signal4[T0, T1, T2, T3]) Close() {
	s.inner.Close()
}

func (s *Signal4[T0, T1, T2, T3]) Len() int {
	return s.inner.Len()
}

func (s *Signal4[T0, T1, T2, T3]) Empty() bool {
	return s.inner.Empty()
}

type Connection4[T0, T1, T2, T3 any] struct {
	inner *Connection[Args4[T0, T1, T2, T3]]
}

func (c *Connection4[T0, T1, T2, T3]) Disconnect() {
	c.inner.Disconnect()
}

func (c *Connection4[T0, T1, T2, T3]) Connected() bool {
	return c.inner.Connected()
}
