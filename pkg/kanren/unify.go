package kanren

// Unify attempts to make u and v equal under s, returning the (possibly)
// extended Substitution and whether it succeeded. It never mutates s; on
// failure the returned Substitution is s itself, unused by the caller.
//
// This follows spec.md §4.D exactly: walk both sides, check same-at-top-
// level, bind whichever side is an unbound Var, then dispatch by
// composite kind. Grounded on the teacher's unify/unifyWithConstraints in
// primitives.go (same walk-then-dispatch shape), extended with the
// occurs-check the teacher's version omits and the Tuple/Map composite
// cases the teacher's Pair-only term model doesn't have.
func Unify(u, v Term, s Substitution) (Substitution, bool) {
	uw := s.Walk(u)
	vw := s.Walk(v)

	if sameAtTopLevel(uw, vw) {
		return s, true
	}

	if uVar, ok := uw.(Var); ok {
		next, err := Extend(uVar, vw, s)
		return next, err == nil
	}
	if vVar, ok := vw.(Var); ok {
		next, err := Extend(vVar, uw, s)
		return next, err == nil
	}

	switch ut := uw.(type) {
	case Seq:
		vt, ok := vw.(Seq)
		if !ok {
			return s, false
		}
		return unifySeq(ut, vt, s)
	case Tuple:
		vt, ok := vw.(Tuple)
		if !ok || vt.Arity() != ut.Arity() {
			return s, false
		}
		return unifySeq(ut.AsSeq(), vt.AsSeq(), s)
	case Map:
		vt, ok := vw.(Map)
		if !ok {
			return s, false
		}
		return unifyMap(ut, vt, s)
	default:
		return s, false
	}
}

// sameAtTopLevel reports whether u and v are identical without needing any
// recursive unification: equal atoms of the same kind, the same variable,
// or two empty Seqs. Anything else — including two structurally-equal but
// non-empty composites — falls through to the dispatch in Unify so that
// unification's recursive step is the single source of truth for composite
// equality (and so each recursive step gets its own chance to extend s).
func sameAtTopLevel(u, v Term) bool {
	switch ut := u.(type) {
	case Var:
		vv, ok := v.(Var)
		return ok && vv.id == ut.id
	case Sym:
		vv, ok := v.(Sym)
		return ok && vv.Name == ut.Name
	case Num:
		vv, ok := v.(Num)
		return ok && vv.Value == ut.Value
	case Bool:
		vv, ok := v.(Bool)
		return ok && vv.Value == ut.Value
	case Str:
		vv, ok := v.(Str)
		return ok && vv.Value == ut.Value
	case Seq:
		vv, ok := v.(Seq)
		return ok && ut.Empty() && vv.Empty()
	default:
		return false
	}
}

// unifySeq unifies two Seqs head-then-tail, right-associatively, failing
// immediately on an empty/non-empty mismatch.
func unifySeq(u, v Seq, s Substitution) (Substitution, bool) {
	if u.Empty() != v.Empty() {
		return s, false
	}
	if u.Empty() {
		return s, true
	}
	next, ok := Unify(u.Head(), v.Head(), s)
	if !ok {
		return s, false
	}
	return Unify(u.Tail(), v.Tail(), next)
}

// unifyMap unifies two Maps whose domains must be equal as sets, pairing
// each key (in u's canonical, sorted order) and unifying its value.
func unifyMap(u, v Map, s Substitution) (Substitution, bool) {
	if len(u.entries) != len(v.entries) {
		return s, false
	}
	cur := s
	for _, e := range u.entries {
		vVal, ok := v.Lookup(e.Key)
		if !ok {
			return s, false
		}
		next, ok := Unify(e.Value, vVal, cur)
		if !ok {
			return s, false
		}
		cur = next
	}
	return cur, true
}
