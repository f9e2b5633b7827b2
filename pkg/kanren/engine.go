package kanren

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// EngineConfig bounds an Engine's behavior. Occurs-check is not
// configurable — it is mandatory per spec.md §4.D — but a host may cap how
// many answers an otherwise-unbounded RunAll will pull, trading
// completeness for a bounded-memory guarantee at the call site.
type EngineConfig struct {
	// MaxAnswers caps the number of answers Engine.RunAll will pull. Zero
	// (the default) means unbounded, matching spec.md's run_all.
	MaxAnswers int
}

// Validate reports every problem with c at once via a multierror,
// matching this module's aggregate-every-failure policy for construction-
// time validation (grounded on hashicorp-nomad's pervasive
// *multierror.Error accumulation in config validation).
func (c EngineConfig) Validate() error {
	var errs error
	if c.MaxAnswers < 0 {
		errs = appendErr(errs, fmt.Errorf("kanren: EngineConfig.MaxAnswers must be >= 0, got %d", c.MaxAnswers))
	}
	return errs
}

// Engine bundles an IDGen and an optional structured logger behind the
// kernel's package-level functions, for hosts that want one configured
// value instead of reaching for module-level globals (spec.md §6's
// Engine addition). It holds no goal-evaluation state of its own — Goals
// built from an Engine's variables are exactly as pure as any other Goal.
type Engine struct {
	gen IDGen
	log hclog.Logger
	cfg EngineConfig
}

// EngineOption configures a NewEngine call.
type EngineOption func(*engineOptions)

type engineOptions struct {
	gen IDGen
	log hclog.Logger
	cfg EngineConfig
}

// WithIDGen overrides the Engine's IDGen (default: UUIDGen{}).
func WithIDGen(gen IDGen) EngineOption {
	return func(o *engineOptions) { o.gen = gen }
}

// WithLogger attaches a structured logger. Trace-level logs report each
// variable minted by Engine.Fresh (query variables minted inside Run/RunAll
// are not logged); Debug-level logs report each Run/RunAll call.
// The default is hclog's null logger, so an Engine is silent (and
// allocation-light) unless a host opts in.
func WithLogger(l hclog.Logger) EngineOption {
	return func(o *engineOptions) { o.log = l }
}

// WithConfig sets the Engine's EngineConfig.
func WithConfig(c EngineConfig) EngineOption {
	return func(o *engineOptions) { o.cfg = c }
}

// NewEngine builds an Engine from opts, validating the resulting
// EngineConfig before returning it.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	o := engineOptions{gen: UUIDGen{}, log: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{gen: o.gen, log: o.log, cfg: o.cfg}, nil
}

// Fresh mints a fresh variable from the Engine's IDGen.
func (e *Engine) Fresh(name string) Var {
	v := NewVar(e.gen, name)
	e.log.Trace("minted fresh variable", "id", v.ID(), "name", v.Name())
	return v
}

// Run is Engine-scoped sugar for the package-level Run: it sources query
// variables from the Engine's IDGen and logs the call at debug level.
func (e *Engine) Run(n int, names []string, body func([]Var) Goal) []Term {
	e.log.Debug("kanren: running bounded query", "n", n, "vars", names)
	return runNamed(e.gen, n, names, body, false)
}

// RunAll is Engine-scoped sugar for the package-level RunAllNamed. If the
// Engine's EngineConfig.MaxAnswers is positive, it is used as a hard cap
// instead of running fully unbounded.
func (e *Engine) RunAll(names []string, body func([]Var) Goal) []Term {
	if e.cfg.MaxAnswers > 0 {
		e.log.Debug("kanren: running query bounded by MaxAnswers", "max", e.cfg.MaxAnswers, "vars", names)
		return runNamed(e.gen, e.cfg.MaxAnswers, names, body, false)
	}
	e.log.Debug("kanren: running unbounded query", "vars", names)
	return runNamed(e.gen, 0, names, body, true)
}
