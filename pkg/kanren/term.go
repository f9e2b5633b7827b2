// Package kanren implements an embeddable relational/logic-programming
// kernel in the miniKanren family. A host program composes Goals over a set
// of logic variables and asks the kernel to enumerate the Substitutions
// under which those Goals hold, each reified into a ground Term with stable
// placeholder names for any variable left unbound.
//
// The package is intentionally small: a Term model, a persistent
// Substitution, a unifier with occurs-check, a lazy answer Stream, a goal
// algebra (Eq/Succeed/Fail/Disj/Conj/CallFresh), and the Take/TakeAll
// drivers that force a Stream. Surface sugar for block-form conj/disj/
// conde/fresh/run lives in sugar.go and desugars to those primitives.
package kanren

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind tags the variant of a Term. Dispatch throughout the kernel (Walk,
// OccursCheck, Unify) is a type switch on the concrete Term type rather
// than a per-variant method set — the spec treats extensibility to new term
// kinds as a non-goal, so a closed sum type is the right shape.
type Kind int

const (
	KindVar Kind = iota
	KindSym
	KindNum
	KindBool
	KindStr
	KindSeq
	KindTuple
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindSym:
		return "Sym"
	case KindNum:
		return "Num"
	case KindBool:
		return "Bool"
	case KindStr:
		return "Str"
	case KindSeq:
		return "Seq"
	case KindTuple:
		return "Tuple"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Term is any value in the kernel's universe: a logic variable, an atomic
// constant, or a composite built out of other Terms. Variables and
// composites may nest arbitrarily; a Term is ground iff it contains no Var.
type Term interface {
	// Kind reports which variant this Term is.
	Kind() Kind
	// String renders a debug representation; it does not walk bindings.
	String() string
	// Equal is strict structural equality (reflexive, recursive on
	// composites, Var equal iff same id) — not unification.
	Equal(other Term) bool

	// isTerm is unexported so Term stays closed to this package's variants.
	isTerm()
}

// Var is a logic variable. Identity is the id alone; name is display-only
// and never participates in equality, hashing, or unification.
type Var struct {
	id   string
	name string
}

// NewVar mints a fresh variable using gen for the id. The empty name
// defaults to "unnamed", matching the source's default display name.
func NewVar(gen IDGen, name string) Var {
	if name == "" {
		name = "unnamed"
	}
	return Var{id: gen.NextID(), name: name}
}

// Fresh mints a fresh variable using the package's default IDGen (a
// uuid.NewString-backed generator). Use NewVar with an explicit IDGen
// (e.g. a CounterGen) for deterministic ids in tests and examples.
func Fresh(name string) Var {
	return NewVar(defaultIDGen, name)
}

func (v Var) Kind() Kind { return KindVar }

func (v Var) String() string {
	if v.name != "" && v.name != "unnamed" {
		return fmt.Sprintf("_%s.%s", v.name, v.id)
	}
	return fmt.Sprintf("_%s", v.id)
}

// ID returns the variable's unique identity.
func (v Var) ID() string { return v.id }

// Name returns the variable's display name (never semantically relevant).
func (v Var) Name() string { return v.name }

func (v Var) Equal(other Term) bool {
	o, ok := other.(Var)
	return ok && o.id == v.id
}

func (Var) isTerm() {}

// Sym is an atom/keyword constant, e.g. the Reasoned Schemer's :olive.
type Sym struct {
	Name string
}

func NewSym(name string) Sym { return Sym{Name: name} }

func (s Sym) Kind() Kind      { return KindSym }
func (s Sym) String() string  { return ":" + s.Name }
func (s Sym) Equal(o Term) bool {
	other, ok := o.(Sym)
	return ok && other.Name == s.Name
}
func (Sym) isTerm() {}

// Num is a numeric constant. The kernel does not distinguish integers from
// floats at the type level (the source doesn't either); equality is exact.
type Num struct {
	Value float64
}

func NewNum(v float64) Num { return Num{Value: v} }

func (n Num) Kind() Kind     { return KindNum }
func (n Num) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n Num) Equal(o Term) bool {
	other, ok := o.(Num)
	return ok && other.Value == n.Value
}
func (Num) isTerm() {}

// Bool is a boolean constant.
type Bool struct {
	Value bool
}

func NewBool(v bool) Bool { return Bool{Value: v} }

func (b Bool) Kind() Kind     { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(b.Value) }
func (b Bool) Equal(o Term) bool {
	other, ok := o.(Bool)
	return ok && other.Value == b.Value
}
func (Bool) isTerm() {}

// Str is a string constant.
type Str struct {
	Value string
}

func NewStr(v string) Str { return Str{Value: v} }

func (s Str) Kind() Kind     { return KindStr }
func (s Str) String() string { return strconv.Quote(s.Value) }
func (s Str) Equal(o Term) bool {
	other, ok := o.(Str)
	return ok && other.Value == s.Value
}
func (Str) isTerm() {}

// Seq is an ordered, finite sequence of Terms with cons-list semantics:
// unification recurses on the head, then the tail, right-associatively.
type Seq struct {
	Elements []Term
}

func NewSeq(elements ...Term) Seq {
	cp := make([]Term, len(elements))
	copy(cp, elements)
	return Seq{Elements: cp}
}

func (s Seq) Kind() Kind     { return KindSeq }
func (s Seq) Len() int       { return len(s.Elements) }
func (s Seq) Empty() bool    { return len(s.Elements) == 0 }

// Head returns the first element; panics on an empty Seq (callers in this
// package only call Head after checking Empty).
func (s Seq) Head() Term { return s.Elements[0] }

// Tail returns the Seq of every element after the first.
func (s Seq) Tail() Seq { return Seq{Elements: s.Elements[1:]} }

func (s Seq) String() string {
	parts := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (s Seq) Equal(o Term) bool {
	other, ok := o.(Seq)
	if !ok || len(other.Elements) != len(s.Elements) {
		return false
	}
	for i := range s.Elements {
		if !s.Elements[i].Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}
func (Seq) isTerm() {}

// Tuple is a fixed-arity tuple of Terms. It is distinct from Seq: two
// Tuples unify positionally only when their arities match.
type Tuple struct {
	Elements []Term
}

func NewTuple(elements ...Term) Tuple {
	cp := make([]Term, len(elements))
	copy(cp, elements)
	return Tuple{Elements: cp}
}

func (t Tuple) Kind() Kind { return KindTuple }
func (t Tuple) Arity() int { return len(t.Elements) }

// AsSeq converts the Tuple to a Seq of the same length, for the unifier's
// "convert both to sequences of equal length" step (spec.md §4.D).
func (t Tuple) AsSeq() Seq { return Seq{Elements: t.Elements} }

func (t Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "#(" + strings.Join(parts, " ") + ")"
}

func (t Tuple) Equal(o Term) bool {
	other, ok := o.(Tuple)
	if !ok || len(other.Elements) != len(t.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}
func (Tuple) isTerm() {}

// mapEntry is one key/value pair of a Map, kept in canonical-key order so
// that unification's "pair each key in some deterministic order" and
// reification's left-to-right recursion are both stable.
type mapEntry struct {
	Key   Term
	Value Term
}

// Map is an unordered mapping from ground, scalar keys (Sym, Num, Bool,
// Str) to Terms. Keys are restricted to those four kinds so a canonical
// string form can order them deterministically without a second walk —
// see SPEC_FULL.md §3.
type Map struct {
	entries []mapEntry
}

// NewMap builds a Map from key/value pairs, validating that every key is
// ground and scalar and that no key repeats. All problems are reported
// together via a multierror, matching this module's "validate eagerly at
// construction, aggregate every failure" policy for composite builders.
func NewMap(pairs ...TermPair) (Map, error) {
	var errs error
	seen := make(map[string]bool, len(pairs))
	entries := make([]mapEntry, 0, len(pairs))

	for i, p := range pairs {
		key := canonicalKey(p.Key)
		if key == "" {
			errs = appendErr(errs, fmt.Errorf("map pair %d: key %s is not a ground scalar term", i, p.Key))
			continue
		}
		if seen[key] {
			errs = appendErr(errs, fmt.Errorf("map pair %d: duplicate key %s", i, p.Key))
			continue
		}
		seen[key] = true
		entries = append(entries, mapEntry{Key: p.Key, Value: p.Value})
	}
	if errs != nil {
		return Map{}, errs
	}

	sort.Slice(entries, func(i, j int) bool {
		return canonicalKey(entries[i].Key) < canonicalKey(entries[j].Key)
	})
	return Map{entries: entries}, nil
}

// MustNewMap is like NewMap but panics on error; for tests and examples
// constructing obviously-valid maps.
func MustNewMap(pairs ...TermPair) Map {
	m, err := NewMap(pairs...)
	if err != nil {
		panic(err)
	}
	return m
}

// TermPair is one key/value pair supplied to NewMap.
type TermPair struct {
	Key   Term
	Value Term
}

// Pair is a convenience constructor for TermPair.
func Pair(key, value Term) TermPair { return TermPair{Key: key, Value: value} }

// Len reports how many entries the Map holds.
func (m Map) Len() int { return len(m.entries) }

// Keys returns the Map's keys in canonical (sorted) order.
func (m Map) Keys() []Term {
	out := make([]Term, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Key
	}
	return out
}

// Lookup returns the value bound to key and whether it was present.
func (m Map) Lookup(key Term) (Term, bool) {
	ck := canonicalKey(key)
	for _, e := range m.entries {
		if canonicalKey(e.Key) == ck {
			return e.Value, true
		}
	}
	return nil, false
}

func (m Map) Kind() Kind { return KindMap }

func (m Map) String() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = fmt.Sprintf("%s: %s", e.Key, e.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m Map) Equal(o Term) bool {
	other, ok := o.(Map)
	if !ok || len(other.entries) != len(m.entries) {
		return false
	}
	for i := range m.entries {
		if !m.entries[i].Key.Equal(other.entries[i].Key) {
			return false
		}
		if !m.entries[i].Value.Equal(other.entries[i].Value) {
			return false
		}
	}
	return true
}
func (Map) isTerm() {}

// canonicalKey renders a scalar ground Term as a sortable string, or ""
// if term isn't an allowed Map key (not ground/scalar).
func canonicalKey(term Term) string {
	switch t := term.(type) {
	case Sym:
		return "s:" + t.Name
	case Str:
		return "t:" + t.Value
	case Num:
		return "n:" + strconv.FormatFloat(t.Value, 'g', -1, 64)
	case Bool:
		return "b:" + strconv.FormatBool(t.Value)
	default:
		return ""
	}
}
