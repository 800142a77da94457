package patterns_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/patterns"
)

func TestBind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patterns")
	defer teardown()
	//
	p := patterns.Bind[int]()
	v, ok := p.Match(7).Value()
	if !ok {
		t.Error("expected bind to match any subject, didn't")
	}
	if v != 7 {
		t.Logf("bound = %v", v)
		t.Error("expected bind to bind the subject 7, didn't")
	}
}

func TestAny(t *testing.T) {
	p := patterns.Any[string]()
	if !p.Match("anything").IsJust() {
		t.Error("expected wildcard to match any subject, didn't")
	}
	if !p.Match("").IsJust() {
		t.Error("expected wildcard to match the empty string, didn't")
	}
}

func TestFail(t *testing.T) {
	p := patterns.Fail[int, int]()
	if p.Match(7).IsJust() {
		t.Error("expected fail to never match, did")
	}
}

func TestSat(t *testing.T) {
	even := patterns.Sat(func(n int) bool { return n%2 == 0 })
	if !even.Match(4).IsJust() {
		t.Error("expected sat(even) to match 4, didn't")
	}
	if even.Match(5).IsJust() {
		t.Error("expected sat(even) to fail on 5, didn't")
	}
}

func TestIs(t *testing.T) {
	p := patterns.Is("yes")
	if !p.Match("yes").IsJust() {
		t.Error("expected is(\"yes\") to match \"yes\", didn't")
	}
	if p.Match("no").IsJust() {
		t.Error("expected is(\"yes\") to fail on \"no\", didn't")
	}
}

func TestPatternsArePure(t *testing.T) {
	p := patterns.And(patterns.Sat(func(n int) bool { return n > 0 }), patterns.Bind[int]())
	first := p.Match(7)
	second := p.Match(7)
	v1, ok1 := first.Value()
	v2, ok2 := second.Value()
	if ok1 != ok2 || v1 != v2 {
		t.Logf("first = %v/%v, second = %v/%v", v1, ok1, v2, ok2)
		t.Error("expected repeated matches to be observationally identical, aren't")
	}
}

func TestEq(t *testing.T) {
	isSeven := patterns.Eq(7)
	if !isSeven(7) || isSeven(8) {
		t.Error("expected Eq(7) to hold exactly for 7, doesn't")
	}
}

func TestConst(t *testing.T) {
	seven := patterns.Const[string](7)
	if seven("ignored") != 7 {
		t.Logf("const = %v", seven("ignored"))
		t.Error("expected const to be integer 7")
	}
}

func TestCompose(t *testing.T) {
	h := patterns.Compose(strings.TrimSpace, strings.ToUpper)
	if h(" hello ") != "HELLO" {
		t.Logf("h(\" hello \") = %q", h(" hello "))
		t.Error("expected composed transform to yield HELLO, didn't")
	}
}

func TestSketch(t *testing.T) {
	p := patterns.And(patterns.Is(0), patterns.Bind[int]())
	if p.String() != "and(is(0), bind)" {
		t.Logf("pattern = %s", p)
		t.Error("expected String to render the combinator expression, didn't")
	}
	sketch := p.Sketch()
	t.Logf("pattern =\n%s", sketch)
	if !strings.Contains(sketch, "and") || !strings.Contains(sketch, "bind") {
		t.Error("expected sketch to contain the combinator labels, doesn't")
	}
}
