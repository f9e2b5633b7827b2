package kanren

// Surface sugar over the binary primitives in goal.go, implementing the
// desugaring contract of spec.md §6:
//
//   - ConjAll/DisjAll: n-ary conj/disj, right-folding over Conj/Disj; an
//     empty list folds to Succeed/Fail respectively.
//   - FreshN: fresh([x1..xm]) { body }, nested CallFresh binding each xi
//     before the conjoined body.
//   - Conde: disj of conjs over a clause matrix.
//   - Run/RunAllNamed: run(n, [vars]) { body } / run_all([vars]) { body },
//     including the reify-each-answer step.
//
// Grounded on the teacher's variadic Conj/Disj in primitives.go (same
// n-ary convenience over binary primitives) and its Run/RunStar two-tier
// split between bare driver operations and a query-variable-aware
// convenience wrapper.

// ConjAll right-folds Conj over goals. An empty list is Succeed, matching
// spec.md §6's "empty body → succeed".
func ConjAll(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Succeed
	}
	if len(goals) == 1 {
		return goals[0]
	}
	return Conj(goals[0], ConjAll(goals[1:]...))
}

// DisjAll right-folds Disj over goals. An empty list is Fail.
func DisjAll(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Fail
	}
	if len(goals) == 1 {
		return goals[0]
	}
	return Disj(goals[0], DisjAll(goals[1:]...))
}

// Conde is disj-of-conjs over a clause matrix: each clause is a list of
// goals conjoined together, and the clauses are disjoined against each
// other. This is the conde(...) desugaring from spec.md §6 — distinct from
// the teacher's Conde, which is a 1:1 alias for Disj because the teacher's
// Goal type doesn't distinguish a clause list from a flat goal list.
func Conde(clauses ...[]Goal) Goal {
	branches := make([]Goal, len(clauses))
	for i, clause := range clauses {
		branches[i] = ConjAll(clause...)
	}
	return DisjAll(branches...)
}

// FreshN introduces len(names) fresh variables (via the package's default
// IDGen), in order, and applies body to the resulting slice. Use
// FreshNWith to source variables from a specific IDGen (e.g. an Engine's).
func FreshN(names []string, body func([]Var) Goal) Goal {
	return FreshNWith(defaultIDGen, names, body)
}

// FreshNWith is FreshN parameterized over the IDGen minting the variables.
func FreshNWith(gen IDGen, names []string, body func([]Var) Goal) Goal {
	return freshNStep(gen, names, nil, body)
}

func freshNStep(gen IDGen, names []string, bound []Var, body func([]Var) Goal) Goal {
	if len(names) == 0 {
		return body(bound)
	}
	name, rest := names[0], names[1:]
	return CallFreshWith(gen, name, func(v Var) Goal {
		next := make([]Var, len(bound)+1)
		copy(next, bound)
		next[len(bound)] = v
		return freshNStep(gen, rest, next, body)
	})
}

// Run is the run(n, [vars]) { body } sugar: it freshens len(names)
// variables, conjoins body's goal against the empty Substitution, takes up
// to n answers, and reifies each answer's query-variable tuple. Results
// preserve stream order (spec.md §6).
func Run(n int, names []string, body func([]Var) Goal) []Term {
	return runNamed(defaultIDGen, n, names, body, false)
}

// RunAllNamed is Run without the answer-count bound (run_all in spec.md
// §6). It only terminates if body's Goal has finitely many answers.
func RunAllNamed(names []string, body func([]Var) Goal) []Term {
	return runNamed(defaultIDGen, 0, names, body, true)
}

func runNamed(gen IDGen, n int, names []string, body func([]Var) Goal, all bool) []Term {
	var queryVars []Var
	goal := FreshNWith(gen, names, func(vs []Var) Goal {
		queryVars = vs
		return body(vs)
	})

	var subs []Substitution
	if all {
		subs = RunAllGoal(goal)
	} else {
		subs = RunGoal(n, goal)
	}

	query := NewTuple(toTerms(queryVars)...)
	reifier := Reify(query)

	out := make([]Term, len(subs))
	for i, s := range subs {
		out[i] = reifier(s)
	}
	return out
}

func toTerms(vars []Var) []Term {
	out := make([]Term, len(vars))
	for i, v := range vars {
		out[i] = v
	}
	return out
}
