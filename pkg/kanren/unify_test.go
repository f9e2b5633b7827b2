package kanren

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifyBasicScenarios(t *testing.T) {
	// spec.md §8 scenario 8: unify(Sym(:foo), Sym(:bar), {}) = Err
	_, ok := Unify(NewSym("foo"), NewSym("bar"), EmptySubstitution())
	require.False(t, ok)

	// spec.md §8 scenario 8: unify([x], y, {y ↦ [1]}) = Ok({x ↦ 1, y ↦ [1]})
	gen := NewCounterGen("s")
	x := NewVar(gen, "x")
	y := NewVar(gen, "y")

	s0, err := Extend(y, NewSeq(NewNum(1)), EmptySubstitution())
	require.NoError(t, err)

	s1, ok := Unify(NewSeq(x), y, s0)
	require.True(t, ok)
	require.True(t, s1.Walk(x).Equal(NewNum(1)))
}

func TestUnifySameVariableIsNoOp(t *testing.T) {
	gen := NewCounterGen("same")
	x := NewVar(gen, "x")

	s, ok := Unify(x, x, EmptySubstitution())
	require.True(t, ok)
	require.Equal(t, 0, s.Size())
}

func TestUnifyDistinctVariablesBindOneToTheOther(t *testing.T) {
	gen := NewCounterGen("dv")
	x := NewVar(gen, "x")
	y := NewVar(gen, "y")

	s, ok := Unify(x, y, EmptySubstitution())
	require.True(t, ok)

	// Whichever direction the binding went, subsequent unification with a
	// value must resolve both variables to it.
	s2, ok := Unify(x, NewSym("garlic"), s)
	require.True(t, ok)
	require.True(t, s2.Walk(x).Equal(NewSym("garlic")))
	require.True(t, s2.Walk(y).Equal(NewSym("garlic")))
}

func TestUnifyOccursCheck(t *testing.T) {
	// spec.md §8 invariant 6 / scenario 6: unify(x, [x], s) must fail.
	gen := NewCounterGen("oc")
	x := NewVar(gen, "x")

	_, ok := Unify(x, NewSeq(x), EmptySubstitution())
	require.False(t, ok)
}

func TestUnifyActuallyUnifies(t *testing.T) {
	// Invariant 3: unify(u, v, s) = Ok(s') ⇒ walk_all(u, s') = walk_all(v, s').
	gen := NewCounterGen("au")
	x := NewVar(gen, "x")
	y := NewVar(gen, "y")

	u := NewSeq(x, NewNum(1))
	v := NewSeq(NewNum(2), y)

	s, ok := Unify(u, v, EmptySubstitution())
	require.True(t, ok)
	require.True(t, WalkAll(u, s).Equal(WalkAll(v, s)))
}

func TestUnifyIsSymmetric(t *testing.T) {
	// Invariant 5.
	gen := NewCounterGen("sym")
	x := NewVar(gen, "x")

	cases := []struct {
		name string
		u, v Term
	}{
		{"atoms", NewSym("olive"), NewSym("olive")},
		{"mismatched atoms", NewSym("olive"), NewSym("oil")},
		{"var/atom", x, NewSym("olive")},
		{"seqs", NewSeq(NewNum(1), NewNum(2)), NewSeq(NewNum(1), NewNum(2))},
		{"tuple arity mismatch", NewTuple(NewNum(1)), NewTuple(NewNum(1), NewNum(2))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, okFwd := Unify(c.u, c.v, EmptySubstitution())
			_, okRev := Unify(c.v, c.u, EmptySubstitution())
			require.Equal(t, okFwd, okRev)
		})
	}
}

func TestUnifyTupleArity(t *testing.T) {
	_, ok := Unify(NewTuple(NewNum(1), NewNum(2)), NewTuple(NewNum(1), NewNum(2), NewNum(3)), EmptySubstitution())
	require.False(t, ok, "mismatched Tuple arity must never unify")

	s, ok := Unify(NewTuple(NewNum(1), NewNum(2)), NewTuple(NewNum(1), NewNum(2)), EmptySubstitution())
	require.True(t, ok)
	require.Equal(t, 0, s.Size())
}

func TestUnifySeqVsTupleNeverUnifies(t *testing.T) {
	_, ok := Unify(NewSeq(NewNum(1)), NewTuple(NewNum(1)), EmptySubstitution())
	require.False(t, ok)
}

func TestUnifyMap(t *testing.T) {
	gen := NewCounterGen("mp")
	x := NewVar(gen, "x")

	m1 := MustNewMap(Pair(NewSym("a"), NewNum(1)), Pair(NewSym("b"), x))
	m2 := MustNewMap(Pair(NewSym("a"), NewNum(1)), Pair(NewSym("b"), NewNum(2)))

	s, ok := Unify(m1, m2, EmptySubstitution())
	require.True(t, ok)
	require.True(t, s.Walk(x).Equal(NewNum(2)))

	// Unequal key sets never unify.
	m3 := MustNewMap(Pair(NewSym("a"), NewNum(1)), Pair(NewSym("c"), NewNum(2)))
	_, ok = Unify(m1, m3, EmptySubstitution())
	require.False(t, ok)
}
