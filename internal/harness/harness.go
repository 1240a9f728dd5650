package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"

	"github.com/roach88/periods/internal/factory"
	"github.com/roach88/periods/internal/period"
	"github.com/roach88/periods/internal/testutil"
)

// Operation names.
const (
	OpLength       = "length"
	OpOverlap      = "overlap"
	OpOverlapsWith = "overlaps_with"
	OpTouchesWith  = "touches_with"
	OpContains     = "contains"
	OpEquals       = "equals"
	OpSubtract     = "subtract"
	OpDiff         = "diff"
	OpGap          = "gap"
	OpRenew        = "renew"
	OpGaps         = "gaps"
	OpBoundaries   = "boundaries"
	OpIntersect    = "intersect"
	OpUnion        = "union"
)

type resultKind string

const (
	resultPeriods resultKind = "periods"
	resultBool    resultKind = "bool"
	resultInt     resultKind = "int"
)

// signature describes the arguments an op takes. with is the exact number
// of with arguments, or -1 for any number.
type signature struct {
	period     bool
	collection bool
	with       int
	result     resultKind
}

func (s signature) yields(e Expect) bool {
	switch s.result {
	case resultBool:
		return e.Bool != nil
	case resultInt:
		return e.Int != nil
	default:
		return e.Periods != nil
	}
}

var operations = map[string]signature{
	OpLength:       {period: true, result: resultInt},
	OpOverlap:      {period: true, with: 1, result: resultPeriods},
	OpOverlapsWith: {period: true, with: 1, result: resultBool},
	OpTouchesWith:  {period: true, with: 1, result: resultBool},
	OpContains:     {period: true, with: 1, result: resultBool},
	OpEquals:       {period: true, with: 1, result: resultBool},
	OpSubtract:     {period: true, with: -1, result: resultPeriods},
	OpDiff:         {period: true, with: 1, result: resultPeriods},
	OpGap:          {period: true, with: 1, result: resultPeriods},
	OpRenew:        {period: true, result: resultPeriods},
	OpGaps:         {collection: true, result: resultPeriods},
	OpBoundaries:   {collection: true, result: resultPeriods},
	OpIntersect:    {period: true, collection: true, result: resultPeriods},
	OpUnion:        {collection: true, result: resultPeriods},
}

// Operations returns the supported op names, sorted.
func Operations() []string {
	ops := make([]string, 0, len(operations))
	for op := range operations {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Harness executes scenario steps against parsed periods.
type Harness struct {
	periods map[string]period.Period
	clock   *testutil.DeterministicClock
	logger  *slog.Logger
}

// Option configures a run.
type Option func(*Harness)

// WithLogger routes step logs to logger. Runs are silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) { h.logger = logger }
}

// Run executes a scenario and returns the result.
//
// The returned error is reserved for scenarios that cannot run at all, such
// as an invalid scenario or a period that does not parse. Steps whose outcome differs from the
// expectation are reported in Result.Errors.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	h := &Harness{
		periods: make(map[string]period.Period, len(scenario.Periods)),
		clock:   testutil.NewDeterministicClock(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	for name, notation := range scenario.Periods {
		p, err := factory.FromString(notation)
		if err != nil {
			return nil, fmt.Errorf("period %q: %w", name, err)
		}
		h.periods[name] = p
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		seq := h.clock.Next()
		args := h.args(step)
		outcome := h.execute(step)
		result.AddTrace(seq, step.Op, args, outcome)

		want := step.Expect.Outcome()
		if !matches(want, outcome) {
			result.AddError(fmt.Sprintf("steps[%d] %s: expected %s, got %s", i, step.Op, want, outcome))
		}

		h.logger.Debug("step completed",
			"scenario", scenario.Name,
			"step", i,
			"seq", seq,
			"op", step.Op,
			"outcome", outcome.String())
	}

	for _, assertion := range scenario.Assertions {
		if err := h.evaluate(result.Trace, assertion); err != nil {
			result.AddError(err.Error())
		}
	}

	return result, nil
}

// args renders a step's operands in bracket notation: the period first,
// then the with arguments, then the collection members.
func (h *Harness) args(step Step) []string {
	var out []string
	if step.Period != "" {
		out = append(out, h.periods[step.Period].String())
	}
	for _, name := range step.With {
		out = append(out, h.periods[name].String())
	}
	for _, name := range step.Collection {
		out = append(out, h.periods[name].String())
	}
	return out
}

func (h *Harness) lookup(names []string) []period.Period {
	out := make([]period.Period, len(names))
	for i, name := range names {
		out[i] = h.periods[name]
	}
	return out
}

func (h *Harness) execute(step Step) Outcome {
	p := h.periods[step.Period]
	with := h.lookup(step.With)
	c := period.NewCollection(h.lookup(step.Collection)...)

	switch step.Op {
	case OpLength:
		n := p.Length()
		return Outcome{Int: &n}
	case OpOverlap:
		return optionalOutcome(p.Overlap(with[0]))
	case OpOverlapsWith:
		return boolOutcome(p.OverlapsWith(with[0]))
	case OpTouchesWith:
		return boolOutcome(p.TouchesWith(with[0]))
	case OpContains:
		return boolOutcome(p.Contains(with[0]))
	case OpEquals:
		return boolOutcome(p.Equals(with[0]))
	case OpSubtract:
		return collectionOutcome(p.Subtract(with...))
	case OpDiff:
		return collectionOutcome(p.Diff(with[0]))
	case OpGap:
		return optionalOutcome(p.Gap(with[0]))
	case OpRenew:
		return Outcome{Periods: []string{p.Renew().String()}}
	case OpGaps:
		return collectionOutcome(c.Gaps())
	case OpBoundaries:
		return optionalOutcome(c.Boundaries())
	case OpIntersect:
		return collectionOutcome(c.Intersect(p))
	case OpUnion:
		return collectionOutcome(c.Union())
	default:
		return Outcome{Error: fmt.Sprintf("unknown op %q", step.Op)}
	}
}

func errorOutcome(err error) Outcome {
	var pe *period.Error
	if errors.As(err, &pe) {
		return Outcome{Error: string(pe.Code)}
	}
	return Outcome{Error: err.Error()}
}

func boolOutcome(b bool, err error) Outcome {
	if err != nil {
		return errorOutcome(err)
	}
	return Outcome{Bool: &b}
}

func optionalOutcome(p *period.Period, err error) Outcome {
	if err != nil {
		return errorOutcome(err)
	}
	if p == nil {
		return Outcome{Periods: []string{}}
	}
	return Outcome{Periods: []string{p.String()}}
}

func collectionOutcome(c period.Collection, err error) Outcome {
	if err != nil {
		return errorOutcome(err)
	}
	out := make([]string, 0, c.Len())
	for _, p := range c.All() {
		out = append(out, p.String())
	}
	return Outcome{Periods: out}
}

// matches compares outcomes field by field. Expected periods must be
// written in the canonical notation the library prints.
func matches(want, got Outcome) bool {
	switch {
	case want.Error != "" || got.Error != "":
		return want.Error == got.Error
	case want.Bool != nil:
		return got.Bool != nil && *want.Bool == *got.Bool
	case want.Int != nil:
		return got.Int != nil && *want.Int == *got.Int
	default:
		return got.Bool == nil && got.Int == nil && slices.Equal(want.Periods, got.Periods)
	}
}
