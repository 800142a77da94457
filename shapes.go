package patterns

import (
	"github.com/npillmayer/patterns/either"
	"github.com/npillmayer/patterns/list"
	"github.com/npillmayer/patterns/maybe"
	"github.com/npillmayer/patterns/tuple"
)

// Patterns over the algebraic shapes of this module: either.Either,
// maybe.Maybe and list.List. Each is a smart constructor applied to the
// canonical destructuring of its shape.

// Left matches an Either holding the left case, matching the payload
// against p. It fails on a right value.
func Left[L, R, B any](p Pattern[L, B]) Pattern[either.Either[L, R], B] {
	q := Mk1(func(e either.Either[L, R]) maybe.Maybe[L] {
		return either.Fold(e, maybe.Just[L], Const[R](maybe.Nothing[L]()))
	}, p)
	q.shape = node("left", p.shape)
	return q
}

// Right matches an Either holding the right case, matching the payload
// against p. It fails on a left value.
func Right[L, R, B any](p Pattern[R, B]) Pattern[either.Either[L, R], B] {
	q := Mk1(func(e either.Either[L, R]) maybe.Maybe[R] {
		return either.ToMaybe(e)
	}, p)
	q.shape = node("right", p.shape)
	return q
}

// Just matches a present Maybe, matching the held value against p.
// It fails on Nothing.
func Just[T, B any](p Pattern[T, B]) Pattern[maybe.Maybe[T], B] {
	q := Mk1(func(m maybe.Maybe[T]) maybe.Maybe[T] { return m }, p)
	q.shape = node("just", p.shape)
	return q
}

// Nothing matches an absent Maybe, binding nothing. It fails on Just.
func Nothing[T any]() Pattern[maybe.Maybe[T], tuple.Unit] {
	q := Mk0(func(m maybe.Maybe[T]) maybe.Maybe[tuple.Unit] {
		if m.IsJust() {
			return maybe.Nothing[tuple.Unit]()
		}
		return maybe.Just(tuple.Unit{})
	})
	q.shape = leaf("nothing")
	return q
}

// Nil matches the empty list, binding nothing. It fails on a non-empty
// list. Nil and Cons together are exhaustive and mutually exclusive over
// finite lists.
func Nil[E any]() Pattern[list.List[E], tuple.Unit] {
	q := Mk0(func(l list.List[E]) maybe.Maybe[tuple.Unit] {
		if l.IsEmpty() {
			return maybe.Just(tuple.Unit{})
		}
		return maybe.Nothing[tuple.Unit]()
	})
	q.shape = leaf("nil")
	return q
}

// Cons matches a non-empty list, matching the head against ph and the
// tail against pt. It fails on the empty list.
func Cons[E, B1, B2 any](
	ph Pattern[E, B1], pt Pattern[list.List[E], B2],
) Pattern[list.List[E], tuple.T2[B1, B2]] {
	q := Mk2(list.List[E].Uncons, ph, pt)
	q.shape = node("cons", ph.shape, pt.shape)
	return q
}
