package kanren

// Nil is the conventional empty-list terminator used by ConsPair/ListFrom
// below. It is an ordinary Sym, not a distinct Term kind — the term model
// (spec.md §3) has no dedicated list type, so Prolog/Lisp-style open lists
// are built the same way the teacher builds them in core.go/primitives.go:
// as a chain of two-element composites terminated by a sentinel atom. The
// difference is the composite: the teacher uses *Pair (car/cdr fields);
// here a cons cell is a two-element Tuple whose second position holds the
// tail, which may be a still-unbound Var while an open list is being
// searched.
var Nil = Sym{Name: "nil"}

// ConsPair builds a single cons cell (head . tail).
func ConsPair(head, tail Term) Tuple {
	return NewTuple(head, tail)
}

// ListFrom builds a proper list out of terms, terminated by Nil — the
// moral equivalent of the teacher's List(terms ...Term) in primitives.go.
func ListFrom(terms ...Term) Term {
	var result Term = Nil
	for i := len(terms) - 1; i >= 0; i-- {
		result = ConsPair(terms[i], result)
	}
	return result
}
