package patterns

import (
	"github.com/npillmayer/patterns/maybe"
	"github.com/npillmayer/patterns/tuple"
)

// And matches the same subject against p and then q, succeeding only if
// both do. The bound values are paired, p's bindings first. q is not
// tried if p already failed.
func And[S, A, B any](p Pattern[S, A], q Pattern[S, B]) Pattern[S, tuple.T2[A, B]] {
	return Pattern[S, tuple.T2[A, B]]{
		shape: node("and", p.shape, q.shape),
		run: func(s S) maybe.Maybe[tuple.T2[A, B]] {
			a, ok := p.run(s).Value()
			if !ok {
				return maybe.Nothing[tuple.T2[A, B]]()
			}
			b, ok := q.run(s).Value()
			if !ok {
				return maybe.Nothing[tuple.T2[A, B]]()
			}
			return maybe.Just(tuple.P2(a, b))
		},
	}
}

// Or tries p first and falls back to q if p fails. Both alternatives
// have to bind values of the same type B — the result does not tell
// which branch matched. q is evaluated only if p fails.
func (p Pattern[S, B]) Or(q Pattern[S, B]) Pattern[S, B] {
	return Pattern[S, B]{
		shape: node("or", p.shape, q.shape),
		run: func(s S) maybe.Maybe[B] {
			if r := p.run(s); r.IsJust() {
				return r
			}
			return q.run(s)
		},
	}
}

// View transforms the subject with f and matches the result against p.
// f has to be total; for partial transforms use TryView.
func View[S, D, B any](f func(S) D, p Pattern[D, B]) Pattern[S, B] {
	return Pattern[S, B]{
		shape: node("view", p.shape),
		run: func(s S) maybe.Maybe[B] {
			return p.run(f(s))
		},
	}
}

// TryView transforms the subject with a partial f. If f comes up empty
// the whole pattern fails without consulting p; otherwise p is matched
// against the transformed subject.
func TryView[S, D, B any](f func(S) maybe.Maybe[D], p Pattern[D, B]) Pattern[S, B] {
	return Pattern[S, B]{
		shape: node("tryview", p.shape),
		run: func(s S) maybe.Maybe[B] {
			return maybe.AndThen(p.run, f(s))
		},
	}
}
