package patterns

import (
	"github.com/npillmayer/patterns/maybe"
)

// Collection patterns lift an element pattern over a slice. An element
// contributes its bindings all-or-nothing: either the element pattern
// matches it completely, or the element contributes nothing at all.

// Filter lifts p over a slice, keeping the bindings of the elements p
// matches, in input order, and silently dropping the rest. The resulting
// pattern always succeeds — on the empty slice it binds an empty
// collection.
func Filter[E, B any](p Pattern[E, B]) Pattern[[]E, []B] {
	return Pattern[[]E, []B]{
		shape: node("filter", p.shape),
		run: func(es []E) maybe.Maybe[[]B] {
			out := make([]B, 0, len(es))
			for _, e := range es {
				if b, ok := p.run(e).Value(); ok {
					out = append(out, b)
				}
			}
			return maybe.Just(out)
		},
	}
}

// MapAll lifts p over a slice, requiring every element to match. On
// success the bindings are positionally aligned with the input; if any
// element fails, the whole pattern fails.
func MapAll[E, B any](p Pattern[E, B]) Pattern[[]E, []B] {
	return Pattern[[]E, []B]{
		shape: node("mapall", p.shape),
		run: func(es []E) maybe.Maybe[[]B] {
			out := make([]B, len(es))
			for i, e := range es {
				b, ok := p.run(e).Value()
				if !ok {
					return maybe.Nothing[[]B]()
				}
				out[i] = b
			}
			return maybe.Just(out)
		},
	}
}

// Foldr lifts p over a slice and folds the bindings of the matching
// elements from the right, starting with zero; elements p fails on are
// skipped. The resulting pattern always succeeds and binds the final
// accumulator — zero for the empty slice, and step(b, zero) for a
// one-element slice whose element binds b.
func Foldr[E, B, Acc any](p Pattern[E, B], step func(B, Acc) Acc, zero Acc) Pattern[[]E, Acc] {
	return Pattern[[]E, Acc]{
		shape: node("foldr", p.shape),
		run: func(es []E) maybe.Maybe[Acc] {
			// match front to back, fold back to front
			bs := make([]B, 0, len(es))
			for _, e := range es {
				if b, ok := p.run(e).Value(); ok {
					bs = append(bs, b)
				}
			}
			acc := zero
			for i := len(bs) - 1; i >= 0; i-- {
				acc = step(bs[i], acc)
			}
			return maybe.Just(acc)
		},
	}
}
