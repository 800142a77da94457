package patterns

import (
	"github.com/npillmayer/patterns/maybe"
	"github.com/npillmayer/patterns/tuple"
)

// The smart constructors Mk0…Mk5 build a composite pattern from a partial
// destructuring function plus one sub-pattern per component. The
// destructuring is applied first; if it comes up empty, the composite
// fails. Otherwise the components are matched against their sub-patterns
// in index order, stopping at the first failure, and the sub-patterns'
// bindings are collected into a tuple, left to right.

// Mk0 builds a pattern from a destructuring into the empty tuple. It
// succeeds, binding nothing, exactly when destr does.
func Mk0[S any](destr func(S) maybe.Maybe[tuple.Unit]) Pattern[S, tuple.Unit] {
	return Pattern[S, tuple.Unit]{
		shape: leaf("mk0"),
		run:   destr,
	}
}

// Mk1 builds a pattern from a single-component destructuring and a
// sub-pattern for the component.
func Mk1[S, A, B any](destr func(S) maybe.Maybe[A], p Pattern[A, B]) Pattern[S, B] {
	return Pattern[S, B]{
		shape: node("mk1", p.shape),
		run: func(s S) maybe.Maybe[B] {
			return maybe.AndThen(p.run, destr(s))
		},
	}
}

// Mk2 builds a pattern from a two-component destructuring and one
// sub-pattern per component.
func Mk2[S, A1, A2, B1, B2 any](
	destr func(S) maybe.Maybe[tuple.T2[A1, A2]],
	p1 Pattern[A1, B1], p2 Pattern[A2, B2],
) Pattern[S, tuple.T2[B1, B2]] {
	return Pattern[S, tuple.T2[B1, B2]]{
		shape: node("mk2", p1.shape, p2.shape),
		run: func(s S) maybe.Maybe[tuple.T2[B1, B2]] {
			t, ok := destr(s).Value()
			if !ok {
				return maybe.Nothing[tuple.T2[B1, B2]]()
			}
			a1, a2 := t.Unpack()
			b1, ok := p1.run(a1).Value()
			if !ok {
				return maybe.Nothing[tuple.T2[B1, B2]]()
			}
			b2, ok := p2.run(a2).Value()
			if !ok {
				return maybe.Nothing[tuple.T2[B1, B2]]()
			}
			return maybe.Just(tuple.P2(b1, b2))
		},
	}
}

// Mk3 builds a pattern from a three-component destructuring and one
// sub-pattern per component.
func Mk3[S, A1, A2, A3, B1, B2, B3 any](
	destr func(S) maybe.Maybe[tuple.T3[A1, A2, A3]],
	p1 Pattern[A1, B1], p2 Pattern[A2, B2], p3 Pattern[A3, B3],
) Pattern[S, tuple.T3[B1, B2, B3]] {
	return Pattern[S, tuple.T3[B1, B2, B3]]{
		shape: node("mk3", p1.shape, p2.shape, p3.shape),
		run: func(s S) maybe.Maybe[tuple.T3[B1, B2, B3]] {
			t, ok := destr(s).Value()
			if !ok {
				return maybe.Nothing[tuple.T3[B1, B2, B3]]()
			}
			a1, a2, a3 := t.Unpack()
			b1, ok := p1.run(a1).Value()
			if !ok {
				return maybe.Nothing[tuple.T3[B1, B2, B3]]()
			}
			b2, ok := p2.run(a2).Value()
			if !ok {
				return maybe.Nothing[tuple.T3[B1, B2, B3]]()
			}
			b3, ok := p3.run(a3).Value()
			if !ok {
				return maybe.Nothing[tuple.T3[B1, B2, B3]]()
			}
			return maybe.Just(tuple.P3(b1, b2, b3))
		},
	}
}

// Mk4 builds a pattern from a four-component destructuring and one
// sub-pattern per component.
func Mk4[S, A1, A2, A3, A4, B1, B2, B3, B4 any](
	destr func(S) maybe.Maybe[tuple.T4[A1, A2, A3, A4]],
	p1 Pattern[A1, B1], p2 Pattern[A2, B2], p3 Pattern[A3, B3], p4 Pattern[A4, B4],
) Pattern[S, tuple.T4[B1, B2, B3, B4]] {
	return Pattern[S, tuple.T4[B1, B2, B3, B4]]{
		shape: node("mk4", p1.shape, p2.shape, p3.shape, p4.shape),
		run: func(s S) maybe.Maybe[tuple.T4[B1, B2, B3, B4]] {
			t, ok := destr(s).Value()
			if !ok {
				return maybe.Nothing[tuple.T4[B1, B2, B3, B4]]()
			}
			a1, a2, a3, a4 := t.Unpack()
			b1, ok := p1.run(a1).Value()
			if !ok {
				return maybe.Nothing[tuple.T4[B1, B2, B3, B4]]()
			}
			b2, ok := p2.run(a2).Value()
			if !ok {
				return maybe.Nothing[tuple.T4[B1, B2, B3, B4]]()
			}
			b3, ok := p3.run(a3).Value()
			if !ok {
				return maybe.Nothing[tuple.T4[B1, B2, B3, B4]]()
			}
			b4, ok := p4.run(a4).Value()
			if !ok {
				return maybe.Nothing[tuple.T4[B1, B2, B3, B4]]()
			}
			return maybe.Just(tuple.P4(b1, b2, b3, b4))
		},
	}
}

// Mk5 builds a pattern from a five-component destructuring and one
// sub-pattern per component. Five is the largest arity supported; for
// wider shapes, nest tuples.
func Mk5[S, A1, A2, A3, A4, A5, B1, B2, B3, B4, B5 any](
	destr func(S) maybe.Maybe[tuple.T5[A1, A2, A3, A4, A5]],
	p1 Pattern[A1, B1], p2 Pattern[A2, B2], p3 Pattern[A3, B3], p4 Pattern[A4, B4], p5 Pattern[A5, B5],
) Pattern[S, tuple.T5[B1, B2, B3, B4, B5]] {
	return Pattern[S, tuple.T5[B1, B2, B3, B4, B5]]{
		shape: node("mk5", p1.shape, p2.shape, p3.shape, p4.shape, p5.shape),
		run: func(s S) maybe.Maybe[tuple.T5[B1, B2, B3, B4, B5]] {
			t, ok := destr(s).Value()
			if !ok {
				return maybe.Nothing[tuple.T5[B1, B2, B3, B4, B5]]()
			}
			a1, a2, a3, a4, a5 := t.Unpack()
			b1, ok := p1.run(a1).Value()
			if !ok {
				return maybe.Nothing[tuple.T5[B1, B2, B3, B4, B5]]()
			}
			b2, ok := p2.run(a2).Value()
			if !ok {
				return maybe.Nothing[tuple.T5[B1, B2, B3, B4, B5]]()
			}
			b3, ok := p3.run(a3).Value()
			if !ok {
				return maybe.Nothing[tuple.T5[B1, B2, B3, B4, B5]]()
			}
			b4, ok := p4.run(a4).Value()
			if !ok {
				return maybe.Nothing[tuple.T5[B1, B2, B3, B4, B5]]()
			}
			b5, ok := p5.run(a5).Value()
			if !ok {
				return maybe.Nothing[tuple.T5[B1, B2, B3, B4, B5]]()
			}
			return maybe.Just(tuple.P5(b1, b2, b3, b4, b5))
		},
	}
}
