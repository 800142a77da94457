package patterns

import (
	"fmt"

	"github.com/npillmayer/patterns/maybe"
	"github.com/npillmayer/patterns/tuple"
)

// Pattern is a first-class pattern: a pure partial function from a
// subject of type S to bound values of type B. Patterns are opaque;
// they are created by the constructors of this package and applied with
// Match.
type Pattern[S, B any] struct {
	shape *shape
	run   func(S) maybe.Maybe[B]
}

// Match applies the pattern to a subject. On success it returns the
// bound values, on failure it returns Nothing. Match never has side
// effects of its own; user-supplied predicates and view transforms are
// trusted to be pure as well.
func (p Pattern[S, B]) Match(subject S) maybe.Maybe[B] {
	return p.run(subject)
}

// --- Primitive patterns ----------------------------------------------------

// Bind is the variable pattern: it always succeeds and binds the subject
// itself.
func Bind[S any]() Pattern[S, S] {
	return Pattern[S, S]{
		shape: leaf("bind"),
		run:   maybe.Just[S],
	}
}

// Any is the wildcard pattern: it always succeeds and binds nothing.
func Any[S any]() Pattern[S, tuple.Unit] {
	return Pattern[S, tuple.Unit]{
		shape: leaf("any"),
		run: func(S) maybe.Maybe[tuple.Unit] {
			return maybe.Just(tuple.Unit{})
		},
	}
}

// Fail never matches. It is polymorphic in its binding type so that it
// can stand in for either branch of an Or.
func Fail[S, B any]() Pattern[S, B] {
	return Pattern[S, B]{
		shape: leaf("fail"),
		run: func(S) maybe.Maybe[B] {
			return maybe.Nothing[B]()
		},
	}
}

// Sat matches subjects satisfying predicate g, binding nothing. g has to
// be pure and total; the library does not guard against effects in it.
func Sat[S any](g func(S) bool) Pattern[S, tuple.Unit] {
	return Pattern[S, tuple.Unit]{
		shape: leaf("sat"),
		run: func(s S) maybe.Maybe[tuple.Unit] {
			if g(s) {
				return maybe.Just(tuple.Unit{})
			}
			return maybe.Nothing[tuple.Unit]()
		},
	}
}

// Is matches subjects equal to x, binding nothing.
func Is[S comparable](x S) Pattern[S, tuple.Unit] {
	p := Sat(Eq(x))
	p.shape = leaf(fmt.Sprintf("is(%v)", x))
	return p
}

// --- Function helpers ------------------------------------------------------

// Eq returns a predicate testing for equality with x.
func Eq[S comparable](x S) func(S) bool {
	return func(y S) bool {
		return x == y
	}
}

// Const returns a function that ignores its argument and produces a.
func Const[S, T any](a T) func(S) T {
	return func(S) T {
		return a
	}
}

// Compose returns h = f ∘ g, useful for building view transforms.
func Compose[A, B, C any](g func(A) B, f func(B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}
