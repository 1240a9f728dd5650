package harness

import (
	"fmt"
	"strings"
)

// Outcome is the value a step produced. Exactly one field is meaningful:
// Error when the operation failed, otherwise whichever of Periods, Bool or
// Int the operation returns.
type Outcome struct {
	Periods []string `json:"periods,omitempty"`
	Bool    *bool    `json:"bool,omitempty"`
	Int     *int     `json:"int,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func (o Outcome) String() string {
	switch {
	case o.Error != "":
		return "error " + o.Error
	case o.Bool != nil:
		return fmt.Sprintf("%t", *o.Bool)
	case o.Int != nil:
		return fmt.Sprintf("%d", *o.Int)
	default:
		return "{" + strings.Join(o.Periods, " ") + "}"
	}
}

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq     int64    `json:"seq"`
	Op      string   `json:"op"`
	Args    []string `json:"args"`
	Outcome Outcome  `json:"outcome"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every step matched its expectation and every
	// assertion held.
	Pass bool `json:"pass"`

	// Trace holds one event per step, in execution order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains mismatch and assertion messages.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an executed step to the trace.
func (r *Result) AddTrace(seq int64, op string, args []string, outcome Outcome) {
	r.Trace = append(r.Trace, TraceEvent{
		Seq:     seq,
		Op:      op,
		Args:    args,
		Outcome: outcome,
	})
}
