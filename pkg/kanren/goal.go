package kanren

// Goal is a pure function from a Substitution to a Stream of Substitutions
// — every way of extending the input that satisfies the Goal. Goals never
// mutate their input and never perform I/O; "failure" is simply the empty
// Stream (spec.md §7).
//
// Grounded on the teacher's Goal type (core.go: `type Goal func(ctx
// context.Context, store ConstraintStore) *Stream`), stripped of the
// context parameter and ConstraintStore: this spec has no cancellation
// channel (Take's bound is the cancellation mechanism, spec.md §5) and no
// constraint store beyond the Substitution itself.
type Goal func(Substitution) Stream

// Succeed is the Goal that always succeeds, unchanged.
var Succeed Goal = func(s Substitution) Stream {
	return ConsStream(s, EmptyStream())
}

// Fail is the Goal that never succeeds.
var Fail Goal = func(Substitution) Stream {
	return EmptyStream()
}

// Eq is the unification Goal: it succeeds with the extended Substitution
// if u and v unify, and fails (the empty Stream) otherwise.
func Eq(u, v Term) Goal {
	return func(s Substitution) Stream {
		next, ok := Unify(u, v, s)
		if !ok {
			return EmptyStream()
		}
		return ConsStream(next, EmptyStream())
	}
}

// Disj is the binary disjunction: it succeeds with every answer from
// either g1 or g2, fairly interleaved via Stream.Append so that an
// infinite g1 never starves g2 (spec.md §4.E/§4.F).
func Disj(g1, g2 Goal) Goal {
	return func(s Substitution) Stream {
		return Append(g1(s), g2(s))
	}
}

// Conj is the binary conjunction: it succeeds with every answer of g2
// applied to every answer of g1, via Stream.AppendMap (spec.md §4.F).
func Conj(g1, g2 Goal) Goal {
	return func(s Substitution) Stream {
		return AppendMap(g2, g1(s))
	}
}

// CallFresh mints a fresh variable (using the package's default IDGen)
// named name, applies f to it to build a Goal, and runs that Goal. Use
// CallFreshWith to mint the variable from a specific IDGen (e.g. an
// Engine's).
func CallFresh(name string, f func(Var) Goal) Goal {
	return CallFreshWith(defaultIDGen, name, f)
}

// CallFreshWith is CallFresh parameterized over the IDGen that mints the
// fresh variable — the hook an Engine uses to thread its own IDGen through
// every variable a query introduces.
func CallFreshWith(gen IDGen, name string, f func(Var) Goal) Goal {
	return func(s Substitution) Stream {
		v := NewVar(gen, name)
		return f(v)(s)
	}
}
