/*
Package patterns implements first-class pattern matching.

Patterns are ordinary Go values: they are built from a handful of
primitives (Bind, Any, Fail, Sat, Is), combined with combinators (And,
Or, View, Mk0…Mk5, Tup0…Tup5, …), and applied to a subject with Match.
A pattern of type Pattern[S, B] matches subjects of type S and, on
success, produces bound values of type B — tuple.Unit when the pattern
binds nothing, a bare value when it binds one, and a tuple.T2…T5 when it
binds several. Matching either succeeds with all bindings or fails with
none; failure is an absent result (maybe.Nothing), never an error.

Patterns paired with handler functions form clauses, which dispatch
first-match-wins:

	shout := patterns.When(patterns.Just(patterns.Bind[string]()),
	    strings.ToUpper)
	quiet := patterns.When(patterns.Nothing[string](),
	    func(tuple.Unit) string { return "…" })
	s := patterns.Match(maybe.Just("hello"), shout, quiet)   // "HELLO"

All combinators are pure: applying the same pattern to the same subject
twice yields identical results, and no combinator mutates anything.
Evaluation order is part of the contract — Or tries its left operand
first, and the smart constructors Mk0…Mk5 match components in index
order, stopping at the first failure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package patterns

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patterns'.
func tracer() tracing.Trace {
	return tracing.Select("patterns")
}
