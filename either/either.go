/*
Package either provides a generic two-case sum type.

An Either[L, R] holds exactly one of two payloads. By convention the
right case is the "happy" one, which makes Either[error, T] a serviceable
result type. The pattern combinators destructure Eithers with the Left
and Right patterns.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package either

import (
	"github.com/npillmayer/patterns/maybe"
)

// Either holds either an L or an R. Values are created with Left and
// Right; the zero value of an implementation is not a valid Either.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	IsRight() bool
	split() (L, R, bool)
}

type either[L, R any] struct {
	left  L
	right R
	tag   bool // true ⇒ right case
}

// Left creates an Either holding the left payload.
func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l}
}

// Right creates an Either holding the right payload.
func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r, tag: true}
}

// IsLeft returns true iff e holds the left case.
func (e either[L, R]) IsLeft() bool {
	return !e.tag
}

// IsRight returns true iff e holds the right case.
func (e either[L, R]) IsRight() bool {
	return e.tag
}

func (e either[L, R]) split() (L, R, bool) {
	return e.left, e.right, e.tag
}

// Fold collapses an Either by applying onLeft or onRight to the payload,
// whichever case is present.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	l, r, isRight := e.split()
	if isRight {
		return onRight(r)
	}
	return onLeft(l)
}

// MapLeft applies f to the left payload; a right value passes through.
func MapLeft[L, R, T any](f func(L) T, e Either[L, R]) Either[T, R] {
	l, r, isRight := e.split()
	if isRight {
		return Right[T](r)
	}
	return Left[T, R](f(l))
}

// MapRight applies f to the right payload; a left value passes through.
func MapRight[L, R, T any](f func(R) T, e Either[L, R]) Either[L, T] {
	l, r, isRight := e.split()
	if isRight {
		return Right[L](f(r))
	}
	return Left[L, T](l)
}

// ToMaybe keeps the right payload and forgets a left one.
func ToMaybe[L, R any](e Either[L, R]) maybe.Maybe[R] {
	_, r, isRight := e.split()
	if isRight {
		return maybe.Just(r)
	}
	return maybe.Nothing[R]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-case destructuring of an Either, in the same
// style as maybe.Matcher:
//
//	var l int
//	var r string
//	switch m := e.Match(); m {
//	case m.Left(&l):
//	    …
//	case m.Right(&r):
//	    …
//	}
//
// L and R have to be comparable for the switch to work.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !em.e.tag {
		*l = em.e.left
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if em.e.tag {
		*r = em.e.right
		return em
	}
	return nil
}
