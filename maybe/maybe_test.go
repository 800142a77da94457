package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/patterns/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeValue(t *testing.T) {
	v, ok := Just("seven").Value()
	if !ok || v != "seven" {
		t.Logf("value = %q/%v", v, ok)
		t.Error("expected Just to yield its value, didn't")
	}
	_, ok = Nothing[string]().Value()
	if ok {
		t.Error("expected Nothing to yield no value, did")
	}
	if !Just(1).IsJust() || Nothing[int]().IsJust() {
		t.Error("expected IsJust to discriminate Just from Nothing, doesn't")
	}
}

func TestMaybeFromValue(t *testing.T) {
	n, err := strconv.Atoi("42")
	x := FromValue(n, err == nil)
	if v, ok := x.Value(); !ok || v != 42 {
		t.Logf("x = %v/%v", v, ok)
		t.Error("expected FromValue to lift a valid comma-ok pair, didn't")
	}
	n, err = strconv.Atoi("nope")
	y := FromValue(n, err == nil)
	if y.IsJust() {
		t.Error("expected FromValue to lift a failed comma-ok pair to Nothing, didn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeOrElse(t *testing.T) {
	x := Just(7).OrElse(Just(100))
	if v, _ := x.Value(); v != 7 {
		t.Logf("x = %v", v)
		t.Error("expected OrElse to keep a present value, didn't")
	}
	y := Nothing[int]().OrElse(Just(100))
	if v, _ := y.Value(); v != 100 {
		t.Logf("y = %v", v)
		t.Error("expected OrElse to fall back to the alternative, didn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v, _ := xx.Value(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	y := Nothing[int]().Map(func(n int) int {
		return n * 2
	})
	if y.IsJust() {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
}

func TestMaybeMapFree(t *testing.T) {
	x := Map(strconv.Itoa, Just(7))
	if v, _ := x.Value(); v != "7" {
		t.Logf("x = %q", v)
		t.Error("expected free Map to change the value type, didn't")
	}
	y := Map(strconv.Itoa, Nothing[int]())
	if y.IsJust() {
		t.Error("expected free Map over Nothing to stay Nothing, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}

	if AndThen(gt0, Nothing[int]()).IsJust() {
		t.Error("expected andThen over Nothing to stay Nothing, didn't")
	}
}
