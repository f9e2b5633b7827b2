package kanren

import "strconv"

// WalkAll is the deep version of Substitution.Walk: it walks v, and if the
// result is a composite, recurses into every child. Unlike Walk it is
// recursive on term structure (not on substitution chains), which is
// bounded by term depth rather than search depth (spec.md §4.H, §9).
func WalkAll(v Term, s Substitution) Term {
	walked := s.Walk(v)
	switch t := walked.(type) {
	case Seq:
		elems := make([]Term, len(t.Elements))
		for i, e := range t.Elements {
			elems[i] = WalkAll(e, s)
		}
		return Seq{Elements: elems}
	case Tuple:
		elems := make([]Term, len(t.Elements))
		for i, e := range t.Elements {
			elems[i] = WalkAll(e, s)
		}
		return Tuple{Elements: elems}
	case Map:
		entries := make([]mapEntry, len(t.entries))
		for i, e := range t.entries {
			entries[i] = mapEntry{Key: e.Key, Value: WalkAll(e.Value, s)}
		}
		return Map{entries: entries}
	default:
		return walked
	}
}

// ReifyName produces the display name for the k-th still-unbound variable
// encountered during reification, in first-encounter order: _0, _1, ….
func ReifyName(k int) Sym {
	return Sym{Name: "_" + strconv.Itoa(k)}
}

// ReifyS extends r with a placeholder binding for every unbound variable
// reachable from v, visiting composites left to right so that placeholder
// numbering is stable and reproducible (spec.md §4.H).
func ReifyS(v Term, r Substitution) Substitution {
	walked := r.Walk(v)
	switch t := walked.(type) {
	case Var:
		name := ReifyName(r.Size())
		next, err := Extend(t, name, r)
		if err != nil {
			// Binding an unbound variable to a fresh Sym can never fail
			// the occurs check (a Sym has no children to contain t).
			panic("kanren: unreachable: reifying a variable to a Sym occurs-checked")
		}
		return next
	case Seq:
		cur := r
		for _, e := range t.Elements {
			cur = ReifyS(e, cur)
		}
		return cur
	case Tuple:
		cur := r
		for _, e := range t.Elements {
			cur = ReifyS(e, cur)
		}
		return cur
	case Map:
		cur := r
		for _, e := range t.entries {
			cur = ReifyS(e.Value, cur)
		}
		return cur
	default:
		return r
	}
}

// Reify returns a function that renders v as a ground Term under a given
// Substitution: every variable reachable from v is either resolved to its
// bound value or replaced with a stable _0, _1, … placeholder, in
// first-encounter order. The result is always ground (spec.md §8
// invariant 8).
func Reify(v Term) func(Substitution) Term {
	return func(s Substitution) Term {
		walked := WalkAll(v, s)
		r := ReifyS(walked, EmptySubstitution())
		return WalkAll(walked, r)
	}
}
