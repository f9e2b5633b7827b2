package kanren

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// isGround reports whether t has no reachable Var — the property Reify
// must guarantee (spec.md §8 invariant 8).
func isGround(t Term) bool {
	switch v := t.(type) {
	case Var:
		return false
	case Seq:
		for _, e := range v.Elements {
			if !isGround(e) {
				return false
			}
		}
		return true
	case Tuple:
		for _, e := range v.Elements {
			if !isGround(e) {
				return false
			}
		}
		return true
	case Map:
		for _, e := range v.entries {
			if !isGround(e.Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func TestReifyIsAlwaysGround(t *testing.T) {
	gen := NewCounterGen("g")
	x := NewVar(gen, "x")
	y := NewVar(gen, "y")

	s, err := Extend(x, NewSeq(y, NewNum(1)), EmptySubstitution())
	require.NoError(t, err)

	out := Reify(x)(s)
	require.True(t, isGround(out), "reified term must never contain a Var")
}

func TestReifyAssignsStablePlaceholderNamesInFirstEncounterOrder(t *testing.T) {
	gen := NewCounterGen("p")
	x := NewVar(gen, "x")
	y := NewVar(gen, "y")
	z := NewVar(gen, "z")

	// y is referenced before z in left-to-right traversal order.
	term := NewSeq(y, z, y)
	s, err := Extend(x, term, EmptySubstitution())
	require.NoError(t, err)

	out := Reify(x)(s)
	seq, ok := out.(Seq)
	require.True(t, ok)
	require.True(t, seq.Elements[0].Equal(Sym{Name: "_0"}))
	require.True(t, seq.Elements[1].Equal(Sym{Name: "_1"}))
	require.True(t, seq.Elements[2].Equal(Sym{Name: "_0"}), "y must reify to the same placeholder on reoccurrence")
}

func TestReifyResolvesBoundVariablesInstead(t *testing.T) {
	gen := NewCounterGen("b")
	x := NewVar(gen, "x")

	s, err := Extend(x, NewSym("olive"), EmptySubstitution())
	require.NoError(t, err)

	require.True(t, Reify(x)(s).Equal(NewSym("olive")))
}

func TestReifyUnderCondeStablePlaceholder(t *testing.T) {
	// spec.md §8 scenario 7: each branch of a conde reifies its own
	// unbound variable to _0 independently — placeholder numbering resets
	// per answer, it is not shared across the whole search.
	gen := NewCounterGen("c")
	x := NewVar(gen, "x")
	y := NewVar(gen, "y")

	goal := Disj(
		Eq(x, NewSeq(y)),
		Eq(x, NewSeq(NewSym("known"))),
	)

	results := TakeAll(goal(EmptySubstitution()))
	require.Len(t, results, 2)
	require.True(t, Reify(x)(results[0]).Equal(NewSeq(Sym{Name: "_0"})))
	require.True(t, Reify(x)(results[1]).Equal(NewSeq(NewSym("known"))))
}
