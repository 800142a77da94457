package either_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/npillmayer/patterns/either"
)

func TestEitherSimple(t *testing.T) {
	x := Left[int, string](1)
	y := Right[int]("one")

	if !x.IsLeft() || x.IsRight() {
		t.Error("expected Left(1) to be the left case, isn't")
	}
	if !y.IsRight() || y.IsLeft() {
		t.Error("expected Right(\"one\") to be the right case, isn't")
	}
}

func TestEitherMatch(t *testing.T) {
	x := Left[int, string](1)

	var l int
	var r string
	switch m := x.Match(); m {
	case m.Left(&l):
		t.Logf("Left(%d)", l)
	case m.Right(&r):
		t.Logf("Right(%q)", r)
	}
	if l != 1 {
		t.Errorf("expected l to be 1, is %#v", l)
	}

	y := Right[int]("one")
	switch m := y.Match(); m {
	case m.Left(&l):
		t.Logf("Left(%d)", l)
	case m.Right(&r):
		t.Logf("Right(%q)", r)
	}
	if r != "one" {
		t.Errorf("expected r to be \"one\", is %#v", r)
	}
}

func TestEitherFold(t *testing.T) {
	show := func(e Either[int, string]) string {
		return Fold(e, strconv.Itoa, func(s string) string { return s })
	}
	if show(Left[int, string](7)) != "7" {
		t.Error("expected fold to apply the left function to Left, didn't")
	}
	if show(Right[int]("seven")) != "seven" {
		t.Error("expected fold to apply the right function to Right, didn't")
	}
}

func TestEitherMap(t *testing.T) {
	x := MapRight(strconv.Itoa, Right[error](7))
	var s string
	switch m := x.Match(); m {
	case m.Right(&s):
	default:
		t.Fatal("expected MapRight to keep the right case, didn't")
	}
	if s != "7" {
		t.Logf("s = %q", s)
		t.Error("expected MapRight to transform the payload, didn't")
	}

	err := errors.New("boom")
	y := MapRight(strconv.Itoa, Left[error, int](err))
	if !y.IsLeft() {
		t.Error("expected MapRight to pass a Left through, didn't")
	}

	z := MapLeft(func(e error) string { return e.Error() }, Left[error, int](err))
	var msg string
	switch m := z.Match(); m {
	case m.Left(&msg):
	default:
		t.Fatal("expected MapLeft to keep the left case, didn't")
	}
	if msg != "boom" {
		t.Logf("msg = %q", msg)
		t.Error("expected MapLeft to transform the payload, didn't")
	}
}

func TestEitherToMaybe(t *testing.T) {
	if v, ok := ToMaybe(Right[string](7)).Value(); !ok || v != 7 {
		t.Logf("v = %v/%v", v, ok)
		t.Error("expected ToMaybe to keep a right payload, didn't")
	}
	if ToMaybe(Left[string, int]("oops")).IsJust() {
		t.Error("expected ToMaybe to forget a left payload, didn't")
	}
}
