package patterns

import (
	"fmt"

	"github.com/npillmayer/patterns/maybe"
)

// Clause is a pattern paired with a handler for the pattern's bindings.
// Clauses are combined with Else into ordered alternatives and
// dispatched with Eval, Match or Elim — the first clause whose pattern
// matches handles the subject.
type Clause[S, R any] struct {
	eval func(S) maybe.Maybe[R]
}

// When attaches a handler to a pattern, forming a clause. The handler
// receives the pattern's bound values and is called only if the pattern
// matches.
func When[S, B, R any](p Pattern[S, B], handler func(B) R) Clause[S, R] {
	return Clause[S, R]{
		eval: func(s S) maybe.Maybe[R] {
			return maybe.Map(handler, p.run(s))
		},
	}
}

// Else appends an alternative clause: if c's pattern fails on a subject,
// d is tried. Alternation is left-biased and short-circuiting, like Or.
func (c Clause[S, R]) Else(d Clause[S, R]) Clause[S, R] {
	return Clause[S, R]{
		eval: func(s S) maybe.Maybe[R] {
			if r := c.eval(s); r.IsJust() {
				return r
			}
			return d.eval(s)
		},
	}
}

// Eval applies the clause to a subject, returning the handler's result
// or Nothing if no alternative matched.
func (c Clause[S, R]) Eval(subject S) maybe.Maybe[R] {
	return c.eval(subject)
}

// Match dispatches a subject over clauses, first match wins. Matching
// has to be exhaustive: if no clause matches, Match panics. Use Eval on
// a combined clause when a Maybe-valued result is preferred.
func Match[S, R any](subject S, clauses ...Clause[S, R]) R {
	for _, c := range clauses {
		if r, ok := c.eval(subject).Value(); ok {
			return r
		}
	}
	tracer().Errorf("match: no clause matches subject %v", subject)
	panic(fmt.Sprintf("patterns: no clause matches %#v", subject))
}

// Elim packages clauses into a total dispatch function, Match with the
// subject coming last.
func Elim[S, R any](clauses ...Clause[S, R]) func(S) R {
	return func(subject S) R {
		return Match(subject, clauses...)
	}
}
