package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/patterns/maybe"
	"github.com/npillmayer/patterns/tuple"
)

// List is an immutable singly-linked list. The zero value is the empty
// list and ready to use.
type List[T any] struct {
	head   *cell[T]
	length int
}

type cell[T any] struct {
	value T
	next  *cell[T]
}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of builds a list from its arguments, first argument in front.
func Of[T any](values ...T) List[T] {
	return FromSlice(values)
}

// FromSlice builds a list holding the elements of a slice, in order.
func FromSlice[T any](values []T) List[T] {
	tracer().Debugf("building list from slice of length %d", len(values))
	l := List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Push(values[i])
	}
	return l
}

// --- API -------------------------------------------------------------------

// Push puts value in front of the list, returning the extended list.
// l is unmodified and shares its cells with the result.
func (l List[T]) Push(value T) List[T] {
	return List[T]{
		head:   &cell[T]{value: value, next: l.head},
		length: l.length + 1,
	}
}

// IsEmpty returns true iff the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return l.length
}

// Head returns the front element, or Nothing for the empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Tail returns the list without its front element, or Nothing for the
// empty list.
func (l List[T]) Tail() maybe.Maybe[List[T]] {
	if l.head == nil {
		return maybe.Nothing[List[T]]()
	}
	return maybe.Just(List[T]{head: l.head.next, length: l.length - 1})
}

// Uncons splits the list into (head, tail), or Nothing for the empty
// list. It is the inverse of Push and the canonical destructuring used by
// the Cons pattern.
func (l List[T]) Uncons() maybe.Maybe[tuple.T2[T, List[T]]] {
	if l.head == nil {
		return maybe.Nothing[tuple.T2[T, List[T]]]()
	}
	tail := List[T]{head: l.head.next, length: l.length - 1}
	return maybe.Just(tuple.P2(l.head.value, tail))
}

// Slice copies the list's elements into a fresh slice, in order.
// Returns nil for the empty list.
func (l List[T]) Slice() []T {
	if l.head == nil {
		return nil
	}
	s := make([]T, 0, l.length)
	for c := l.head; c != nil; c = c.next {
		s = append(s, c.value)
	}
	return s
}

// Each calls f for every element, front to back.
func (l List[T]) Each(f func(T)) {
	for c := l.head; c != nil; c = c.next {
		f(c.value)
	}
}

func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for c := l.head; c != nil; c = c.next {
		if c != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", c.value)
	}
	b.WriteByte(']')
	return b.String()
}
