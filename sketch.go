package patterns

import (
	"strings"

	tp "github.com/xlab/treeprint"
)

// shape describes the combinator structure of a pattern, for debugging.
// It mirrors how the pattern was built, not what it will match.
type shape struct {
	label    string
	children []*shape
}

func leaf(label string) *shape {
	return &shape{label: label}
}

func node(label string, children ...*shape) *shape {
	return &shape{label: label, children: children}
}

func (sh *shape) String() string {
	if sh == nil {
		return "pattern"
	}
	if len(sh.children) == 0 {
		return sh.label
	}
	parts := make([]string, len(sh.children))
	for i, ch := range sh.children {
		parts[i] = ch.String()
	}
	return sh.label + "(" + strings.Join(parts, ", ") + ")"
}

// String renders the pattern as a one-line combinator expression, e.g.
// "or(left(bind), right(bind))".
func (p Pattern[S, B]) String() string {
	return p.shape.String()
}

// Sketch renders the pattern's combinator tree as an ASCII tree, one
// combinator per node. Intended for t.Logf output and debugging.
func (p Pattern[S, B]) Sketch() string {
	t := tp.New()
	sketch(t, p.shape)
	return t.String()
}

func sketch(t tp.Tree, sh *shape) {
	if sh == nil {
		t.AddNode("pattern")
		return
	}
	if len(sh.children) == 0 {
		t.AddNode(sh.label)
		return
	}
	branch := t.AddBranch(sh.label)
	for _, ch := range sh.children {
		sketch(branch, ch)
	}
}
