/*
Package tuple provides the small fixed-arity tuple types which pattern
combinators use to aggregate bound values.

Go has no type-level lists, so a pattern's bindings are collected into one
of the tuple types below: Unit for no bindings, a bare value for one, and
T2…T5 for up to five binding groups. Handlers take the tuple apart with
Unpack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tuple

// Unit is the empty tuple. Patterns that bind nothing bind a Unit.
type Unit struct{}

// --- T2 --------------------------------------------------------------------

// T2 is a 2-tuple. Fields are unexported; use Unpack or First/Second.
type T2[A, B any] struct {
	first  A
	second B
}

// P2 is the canonical constructor for a T2.
func P2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{first: a, second: b}
}

// First returns the first element of the tuple.
func (t T2[A, B]) First() A {
	return t.first
}

// Second returns the second element of the tuple.
func (t T2[A, B]) Second() B {
	return t.second
}

// Unpack ejects the tuple's elements as multiple return values.
func (t T2[A, B]) Unpack() (A, B) {
	return t.first, t.second
}

// --- T3 --------------------------------------------------------------------

// T3 is a 3-tuple.
type T3[A, B, C any] struct {
	first  A
	second B
	third  C
}

// P3 is the canonical constructor for a T3.
func P3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{first: a, second: b, third: c}
}

// Unpack ejects the tuple's elements as multiple return values.
func (t T3[A, B, C]) Unpack() (A, B, C) {
	return t.first, t.second, t.third
}

// --- T4 --------------------------------------------------------------------

// T4 is a 4-tuple.
type T4[A, B, C, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

// P4 is the canonical constructor for a T4.
func P4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{first: a, second: b, third: c, fourth: d}
}

// Unpack ejects the tuple's elements as multiple return values.
func (t T4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.first, t.second, t.third, t.fourth
}

// --- T5 --------------------------------------------------------------------

// T5 is a 5-tuple, the largest arity the combinator library supports.
type T5[A, B, C, D, E any] struct {
	first  A
	second B
	third  C
	fourth D
	fifth  E
}

// P5 is the canonical constructor for a T5.
func P5[A, B, C, D, E any](a A, b B, c C, d D, e E) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{first: a, second: b, third: c, fourth: d, fifth: e}
}

// Unpack ejects the tuple's elements as multiple return values.
func (t T5[A, B, C, D, E]) Unpack() (A, B, C, D, E) {
	return t.first, t.second, t.third, t.fourth, t.fifth
}
