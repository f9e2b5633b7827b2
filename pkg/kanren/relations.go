package kanren

// Appendo relates three lists (built with ConsPair/ListFrom) where the
// third is the result of appending the first two — the classic relational
// list-append from The Reasoned Schemer, included as a worked example of
// composing the primitives. It is not part of the kernel's contract; a
// host could write exactly this Goal itself.
//
// Grounded on the teacher's Appendo in primitives.go, ported from its
// *Pair/Nil cons-cell model to this module's ConsPair/Nil convention and
// rewritten over CallFresh/Disj/ConjAll instead of the teacher's
// context-threaded, goroutine-backed Goal signature.
func Appendo(l1, l2, l3 Term) Goal {
	return Disj(
		Conj(Eq(l1, Nil), Eq(l2, l3)),
		CallFresh("a", func(a Var) Goal {
			return CallFresh("d", func(d Var) Goal {
				return CallFresh("res", func(res Var) Goal {
					return ConjAll(
						Eq(l1, ConsPair(a, d)),
						Eq(l3, ConsPair(a, res)),
						func(s Substitution) Stream {
							return Appendo(d, l2, res)(s)
						},
					)
				})
			})
		}),
	)
}

// Membero relates an element to a list containing it, succeeding once per
// occurrence (including duplicates). A second worked example of recursive
// disjunction over an open list's structure.
func Membero(x, list Term) Goal {
	return CallFresh("head", func(head Var) Goal {
		return CallFresh("tail", func(tail Var) Goal {
			return Conj(
				Eq(list, ConsPair(head, tail)),
				Disj(
					Eq(x, head),
					func(s Substitution) Stream {
						return Membero(x, tail)(s)
					},
				),
			)
		})
	})
}
