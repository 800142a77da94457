package patterns

import (
	"github.com/npillmayer/patterns/maybe"
	"github.com/npillmayer/patterns/tuple"
)

// The tuple patterns Tup0…Tup5 are the smart constructors Mk0…Mk5
// specialized to the identity decomposition of a tuple: each tuple
// element is matched against the corresponding sub-pattern.

// Tup0 matches the empty tuple, binding nothing. It always succeeds.
func Tup0() Pattern[tuple.Unit, tuple.Unit] {
	p := Mk0(maybe.Just[tuple.Unit])
	p.shape = leaf("tup0")
	return p
}

// Tup1 matches a bare value against p. The 1-tuple is the value itself,
// so this is the identity combinator, kept for completeness of the
// TupN family.
func Tup1[A, B any](p Pattern[A, B]) Pattern[A, B] {
	q := Mk1(maybe.Just[A], p)
	q.shape = node("tup1", p.shape)
	return q
}

// Tup2 matches the elements of a 2-tuple against p1 and p2.
func Tup2[A1, A2, B1, B2 any](
	p1 Pattern[A1, B1], p2 Pattern[A2, B2],
) Pattern[tuple.T2[A1, A2], tuple.T2[B1, B2]] {
	q := Mk2(maybe.Just[tuple.T2[A1, A2]], p1, p2)
	q.shape = node("tup2", p1.shape, p2.shape)
	return q
}

// Tup3 matches the elements of a 3-tuple against p1…p3.
func Tup3[A1, A2, A3, B1, B2, B3 any](
	p1 Pattern[A1, B1], p2 Pattern[A2, B2], p3 Pattern[A3, B3],
) Pattern[tuple.T3[A1, A2, A3], tuple.T3[B1, B2, B3]] {
	q := Mk3(maybe.Just[tuple.T3[A1, A2, A3]], p1, p2, p3)
	q.shape = node("tup3", p1.shape, p2.shape, p3.shape)
	return q
}

// Tup4 matches the elements of a 4-tuple against p1…p4.
func Tup4[A1, A2, A3, A4, B1, B2, B3, B4 any](
	p1 Pattern[A1, B1], p2 Pattern[A2, B2], p3 Pattern[A3, B3], p4 Pattern[A4, B4],
) Pattern[tuple.T4[A1, A2, A3, A4], tuple.T4[B1, B2, B3, B4]] {
	q := Mk4(maybe.Just[tuple.T4[A1, A2, A3, A4]], p1, p2, p3, p4)
	q.shape = node("tup4", p1.shape, p2.shape, p3.shape, p4.shape)
	return q
}

// Tup5 matches the elements of a 5-tuple against p1…p5.
func Tup5[A1, A2, A3, A4, A5, B1, B2, B3, B4, B5 any](
	p1 Pattern[A1, B1], p2 Pattern[A2, B2], p3 Pattern[A3, B3], p4 Pattern[A4, B4], p5 Pattern[A5, B5],
) Pattern[tuple.T5[A1, A2, A3, A4, A5], tuple.T5[B1, B2, B3, B4, B5]] {
	q := Mk5(maybe.Just[tuple.T5[A1, A2, A3, A4, A5]], p1, p2, p3, p4, p5)
	q.shape = node("tup5", p1.shape, p2.shape, p3.shape, p4.shape, p5.shape)
	return q
}
