package bounded

import (
	"cmp"
	"errors"

	"github.com/ddirect/kontainer"
)

// Capacity is the maximum number of elements a Container retains.
const Capacity = 100

// ErrEmpty is returned by Min when the container holds no elements.
var ErrEmpty = errors.New("bounded: empty container")

// Container keeps up to Capacity elements in insertion order. Adding to a full
// container drops the element. It is not safe for concurrent use.
type Container[T any] struct {
	s    []T
	less func(a, b T) bool
}

// New creates an empty container ordered by less, which must be a strict
// weak ordering.
func New[T any](less func(a, b T) bool) *Container[T] {
	if less == nil {
		panic(errors.New("bounded: nil less function"))
	}
	return &Container[T]{
		less: less,
	}
}

func NewOrdered[T cmp.Ordered]() *Container[T] {
	return New(cmp.Less[T])
}

func NewComparer[T kontainer.Comparer[T]]() *Container[T] {
	return New(func(a, b T) bool {
		return a.Before(b)
	})
}

func (c *Container[T]) Len() int {
	return len(c.s)
}

func (c *Container[T]) Cap() int {
	return Capacity
}

func (c *Container[T]) Full() bool {
	return len(c.s) >= Capacity
}

// Add appends t unless the container is full, in which case t is silently
// discarded. The result reports whether t was stored.
func (c *Container[T]) Add(t T) bool {
	if c.Full() {
		return false
	}
	if c.s == nil {
		c.s = make([]T, 0, Capacity)
	}
	c.s = append(c.s, t)
	return true
}

// Min returns the smallest stored element. Among equal minima the earliest
// inserted wins. On an empty container it returns the zero value and ErrEmpty.
func (c *Container[T]) Min() (t T, err error) {
	if len(c.s) == 0 {
		err = ErrEmpty
		return
	}
	t = c.s[0]
	for _, v := range c.s[1:] {
		if c.less(v, t) {
			t = v
		}
	}
	return
}
