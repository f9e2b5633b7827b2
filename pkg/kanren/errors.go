package kanren

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// ErrOccursCheck is returned by Extend when binding a variable to a term
// would introduce a cycle into the substitution. It is the kernel's sole
// failure sentinel at the Substitution layer — spec.md §7 collapses it and
// ordinary unification mismatches into the same externally-visible
// outcome: the branch produces the empty Stream. Goals never surface this
// error directly; only Extend returns it, and Unify reports it as a false
// result.
var ErrOccursCheck = errors.New("kanren: occurs check failed")

// ErrUnify names a structural unification mismatch (mismatched kinds,
// mismatched Tuple arity, mismatched Map key sets, unequal atoms). No
// function in this package returns it: Unify reports a mismatch as a false
// result, and Eq turns that into an empty Stream.
var ErrUnify = errors.New("kanren: unification failed")

// appendErr accumulates errs into a *multierror.Error, matching the
// aggregate-every-failure policy used by NewMap and EngineConfig.Validate.
func appendErr(errs error, err error) error {
	if err == nil {
		return errs
	}
	return multierror.Append(errs, err)
}
