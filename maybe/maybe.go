/*
Package maybe provides an optional value type.

A Maybe either holds a value (Just) or holds nothing (Nothing). It is the
result type of pattern application: a pattern that matches produces
Just(bound values), a pattern that fails produces Nothing. There is no
other failure channel.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Value() (T, bool)
	IsJust() bool
	WithDefault(T) T
	OrElse(Maybe[T]) Maybe[T]
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

// FromValue lifts Go's comma-ok idiom into a Maybe.
func FromValue[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// Value is the inverse of FromValue: the held value plus a validity flag.
func (m maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// IsJust returns true iff m holds a value.
func (m maybe[T]) IsJust() bool {
	return m.tag
}

// WithDefault returns the held value, or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// OrElse returns m if it holds a value, otherwise alt.
func (m maybe[T]) OrElse(alt Maybe[T]) Maybe[T] {
	if m.tag {
		return m
	}
	return alt
}

// Map applies f to the held value; Nothing is passed through.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Map applies f to the held value of x, possibly changing the value type.
// The method of the same name cannot do this: Go methods may not introduce
// type parameters.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// AndThen chains a Maybe into a function which itself may come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports a switch-case style of destructuring a Maybe:
//
//	var v int
//	switch m := x.Match(); m {
//	case m.Just(&v):
//	    …
//	case m.Nothing():
//	    …
//	}
//
// The case that matches deposits the held value through the pointer
// argument. T has to be comparable for the switch to work.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
