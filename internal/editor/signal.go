package editor

// Cell is a single observable value: a current value plus an ordered
// list of subscriber closures, run synchronously on every Set. It is
// the explicit replacement for an implicit signal graph; handles are
// passed to whoever needs them. Cells are not synchronized — they
// belong to one single-threaded event loop.
type Cell[T any] struct {
	value T
	subs  []func(T)
}

// NewCell returns a cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T { return c.value }

// Set stores v and notifies subscribers in subscription order.
func (c *Cell[T]) Set(v T) {
	c.value = v
	for _, fn := range c.subs {
		fn(v)
	}
}

// Subscribe registers fn to run on every Set, and runs it once with
// the current value so downstream state starts consistent.
func (c *Cell[T]) Subscribe(fn func(T)) {
	c.subs = append(c.subs, fn)
	fn(c.value)
}
