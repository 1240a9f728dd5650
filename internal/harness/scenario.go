package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named set of periods and the operations to run on them.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Periods maps a name to a period in bracket notation.
	Periods map[string]string `yaml:"periods"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final trace.
	// Supported types: trace_contains, trace_order, trace_count
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step runs one operation and checks its outcome.
type Step struct {
	// Op is the operation name, e.g. "subtract" or "gaps".
	Op string `yaml:"op"`

	// Period names the subject of a period operation, or the period a
	// collection is intersected with.
	Period string `yaml:"period,omitempty"`

	// With names the operation's period arguments.
	With []string `yaml:"with,omitempty"`

	// Collection names the members of the subject of a collection operation.
	Collection []string `yaml:"collection,omitempty"`

	// Expect is the outcome the step must produce.
	Expect Expect `yaml:"expect"`
}

// Expect holds exactly one expected outcome.
type Expect struct {
	// Periods lists the expected periods in bracket notation. An empty list
	// expects no periods.
	Periods *[]string `yaml:"periods,omitempty"`
	Bool    *bool     `yaml:"bool,omitempty"`
	Int     *int      `yaml:"int,omitempty"`

	// Error is the expected error code.
	Error string `yaml:"error,omitempty"`
}

func (e Expect) count() int {
	n := 0
	if e.Periods != nil {
		n++
	}
	if e.Bool != nil {
		n++
	}
	if e.Int != nil {
		n++
	}
	if e.Error != "" {
		n++
	}
	return n
}

// Outcome returns the expectation in the shape a step produces.
func (e Expect) Outcome() Outcome {
	o := Outcome{Bool: e.Bool, Int: e.Int, Error: e.Error}
	if e.Periods != nil {
		o.Periods = *e.Periods
	}
	return o
}

// Assertion validates the trace of a finished scenario.
type Assertion struct {
	// Type specifies the assertion type:
	// - "trace_contains": an op ran with the given args (subset match)
	// - "trace_order": ops ran in the given order
	// - "trace_count": an op ran exactly Count times
	Type string `yaml:"type"`

	// Op is the operation name (used by trace_contains and trace_count).
	Op string `yaml:"op,omitempty"`

	// Args are period names that must all appear among the step's
	// arguments (used by trace_contains).
	Args []string `yaml:"args,omitempty"`

	// Count is the expected number of occurrences (used by trace_count).
	Count int `yaml:"count,omitempty"`

	// Ops is the expected op order (used by trace_order).
	Ops []string `yaml:"ops,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	// Reject unknown fields so a typo like "expects:" is not silently ignored.
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and that every
// step references declared periods with the arguments its op needs.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Periods) == 0 {
		return fmt.Errorf("periods map is required and must be non-empty")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(s, step); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

func validateStep(s *Scenario, step Step) error {
	if step.Op == "" {
		return fmt.Errorf("op is required")
	}
	sig, ok := operations[step.Op]
	if !ok {
		return fmt.Errorf("unknown op %q", step.Op)
	}

	if sig.period && step.Period == "" {
		return fmt.Errorf("%s requires period", step.Op)
	}
	if !sig.period && step.Period != "" {
		return fmt.Errorf("%s does not take period", step.Op)
	}
	if sig.collection && len(step.Collection) == 0 {
		return fmt.Errorf("%s requires a non-empty collection", step.Op)
	}
	if !sig.collection && len(step.Collection) > 0 {
		return fmt.Errorf("%s does not take collection", step.Op)
	}
	if sig.with >= 0 && len(step.With) != sig.with {
		return fmt.Errorf("%s takes %d with argument(s), got %d", step.Op, sig.with, len(step.With))
	}

	names := append([]string{}, step.With...)
	names = append(names, step.Collection...)
	if step.Period != "" {
		names = append(names, step.Period)
	}
	for _, name := range names {
		if _, ok := s.Periods[name]; !ok {
			return fmt.Errorf("unknown period %q", name)
		}
	}

	switch n := step.Expect.count(); {
	case n == 0:
		return fmt.Errorf("expect is required")
	case n > 1:
		return fmt.Errorf("expect must hold exactly one of periods, bool, int or error")
	}
	if step.Expect.Error == "" && !sig.yields(step.Expect) {
		return fmt.Errorf("%s yields %s", step.Op, sig.result)
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTraceContains:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Ops) == 0 {
			return fmt.Errorf("assertions[%d]: ops list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
