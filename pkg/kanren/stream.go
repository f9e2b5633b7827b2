package kanren

// Stream is a lazy, possibly infinite sequence of Substitutions: the
// kernel's representation of "every way so far found to satisfy a Goal".
// It has exactly three logical shapes (spec.md §3/§4.E):
//
//   - Empty       — no answers.
//   - Cons(s, r)  — an answer s, followed by a (lazily produced) rest r.
//   - Suspension  — a thunk that, when forced, produces one of these
//     three shapes again.
//
// Suspensions are the kernel's only source of non-strictness, and forcing
// one is the only mechanism for interleaving two disjuncts fairly even
// when one of them is infinite.
//
// The teacher's equivalent (core.go's Stream, stream.go's ResultStream
// family) is built on channels and goroutines for a deliberately
// *concurrent* engine — a different design goal than this spec's
// single-threaded, cooperative core (spec.md §5 says a mutable/shared
// stream here would be incorrect). This Stream is instead the classic
// tagged-union-plus-thunk shape spec.md §9 calls for: no channel, no
// goroutine, no mutex.
type Stream struct {
	kind streamKind
	head Substitution
	rest *Stream
	next func() Stream
}

type streamKind int

const (
	streamEmpty streamKind = iota
	streamCons
	streamSuspension
)

// EmptyStream is the stream with no answers.
func EmptyStream() Stream { return Stream{kind: streamEmpty} }

// ConsStream builds a stream whose first answer is head, followed by rest.
func ConsStream(head Substitution, rest Stream) Stream {
	r := rest
	return Stream{kind: streamCons, head: head, rest: &r}
}

// SuspendStream wraps thunk as a Suspension. thunk must do a bounded
// amount of work and return one of the three Stream shapes — it must not
// itself loop until the search is exhausted (spec.md §5).
func SuspendStream(thunk func() Stream) Stream {
	return Stream{kind: streamSuspension, next: thunk}
}

// IsEmpty reports whether s is the Empty stream. It does not force s.
func (s Stream) IsEmpty() bool { return s.kind == streamEmpty }

// IsSuspension reports whether s is a Suspension. It does not force s.
func (s Stream) IsSuspension() bool { return s.kind == streamSuspension }

// Force repeatedly invokes a chain of Suspensions until a non-Suspension
// shape (Empty or Cons) is reached. This is the kernel's sole forcing
// point: it is an explicit loop, not recursion, so a long run of
// Suspension → Suspension chains — the common case for a disjunction
// interleaving with an expensive or infinite branch — costs no Go call
// stack (spec.md §5's trampolining requirement).
func Force(s Stream) Stream {
	for s.kind == streamSuspension {
		s = s.next()
	}
	return s
}

// Append implements mplus/interleave (spec.md §4.E): it gives both
// disjuncts a chance to produce answers even when the first is infinite,
// by swapping sides every time a Suspension is forced.
func Append(a, b Stream) Stream {
	switch a.kind {
	case streamEmpty:
		return b
	case streamSuspension:
		thunk := a.next
		return SuspendStream(func() Stream {
			return Append(b, thunk())
		})
	default: // streamCons
		return ConsStream(a.head, Append(*a.rest, b))
	}
}

// AppendMap implements bind (spec.md §4.E): apply g to every Substitution
// in s, concatenating the resulting streams via Append so that fairness
// composes through a chain of binds, not just a single disjunction.
func AppendMap(g Goal, s Stream) Stream {
	switch s.kind {
	case streamEmpty:
		return EmptyStream()
	case streamSuspension:
		thunk := s.next
		return SuspendStream(func() Stream {
			return AppendMap(g, thunk())
		})
	default: // streamCons
		return Append(g(s.head), AppendMap(g, *s.rest))
	}
}
