package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Ring is a fixed-capacity FIFO that overwrites its oldest element once full.
// The zero value is unusable; create one with NewRing.
type Ring[T any] struct {
	buf   []T
	head  int
	count int
}

// NewRing allocates a ring holding at most capacity elements (minimum 1).
//
// Parameters:
//   - capacity: maximum number of retained elements
//
// Returns:
//   - *Ring[T]: the empty ring
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{buf: make([]T, max(capacity, 1))}
}

// Push appends v, evicting the oldest element when the ring is full.
func (r *Ring[T]) Push(v T) {
	r.buf[(r.head+r.count)%len(r.buf)] = v
	if r.count < len(r.buf) {
		r.count++
		return
	}
	r.head = (r.head + 1) % len(r.buf)
}

// Len returns the number of retained elements.
func (r *Ring[T]) Len() int {
	return r.count
}

// Full reports whether the ring holds capacity elements.
func (r *Ring[T]) Full() bool {
	return r.count == len(r.buf)
}

// At returns the i-th retained element, oldest first.
func (r *Ring[T]) At(i int) T {
	return r.buf[(r.head+i)%len(r.buf)]
}

// Reset drops every element.
func (r *Ring[T]) Reset() {
	r.head = 0
	r.count = 0
}
