package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// treeOpts ignores the embedded node field (the non-owning parent
// back-link) of every node type these tests build: comparing it
// structurally would walk back up the tree and, for a root node whose own
// parent is nil versus a subtree rooted elsewhere, produce noise unrelated
// to the forward-ownership shape spec §8.2 cares about.
var treeOpts = cmp.Options{cmpopts.IgnoreUnexported(Alternative{}, Character{}, Quantifier{})}

// TestReparseIsStructurallyIdentical exercises spec §8.2: re-running Parse
// (here, re-running the node constructors by hand, standing in for a
// second walk over an equivalent token stream) twice over an equivalent
// shape yields structurally identical trees modulo allocation identity.
func TestReparseIsStructurallyIdentical(t *testing.T) {
	build := func() *Alternative {
		alt := NewAlternative()
		alt.Append(NewCharacter('a'))
		q, err := NewQuantifier(NewCharacter('b'), 1, 3, true, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		alt.Append(q)
		return alt
	}

	first := build()
	second := build()

	if diff := cmp.Diff(first, second, treeOpts); diff != "" {
		t.Errorf("structurally equivalent trees differ (-first +second):\n%s", diff)
	}
}

func TestReparseDetectsRealDifferences(t *testing.T) {
	a := NewAlternative()
	a.Append(NewCharacter('x'))

	b := NewAlternative()
	b.Append(NewCharacter('y'))

	if diff := cmp.Diff(a, b, treeOpts); diff == "" {
		t.Error("expected a diff between alternatives holding different characters")
	}
}
