package memds

// Cursor cycles over the elements of a DynamicSequence, each consumer should use its own cursor.
// A cursor reads the sequence at each call so it observes mutations, if the sequence
// shrinks below the cursor's position the next call restarts at index 0.
type Cursor[T any] struct {
	seq      *DynamicSequence[T]
	position int //-1 before the first call to Next
}

func (s *DynamicSequence[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{
		seq:      s,
		position: -1,
	}
}

// Next returns the element following the previously returned one, wrapping to the first element
// after the last one. The first call returns the element at index 0.
// The second result is false if the sequence is empty.
func (c *Cursor[T]) Next() (T, bool) {
	length := c.seq.length
	if length == 0 {
		var zero T
		return zero, false
	}

	next := c.position + 1
	if next >= length {
		next = 0
	}
	c.position = next
	return c.seq.storage[next], true
}

// Position returns the index of the element returned by the last call to Next, or -1.
func (c *Cursor[T]) Position() int {
	return c.position
}

func (c *Cursor[T]) Reset() {
	c.position = -1
}
