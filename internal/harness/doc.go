// Package harness runs period algebra scenarios and snapshots their traces.
//
// # Scenario Format
//
// Scenarios are YAML files naming a few periods and the operations to run
// on them:
//
//	name: subtract_meeting
//	description: "Removing a meeting splits the day"
//	periods:
//	  january: "[2022-01-01, 2022-01-31]"
//	  meeting: "[2022-01-10, 2022-01-15]"
//	steps:
//	  - op: subtract
//	    period: january
//	    with: [meeting]
//	    expect:
//	      periods: ["[2022-01-01, 2022-01-09]", "[2022-01-16, 2022-01-31]"]
//	  - op: overlaps_with
//	    period: january
//	    with: [meeting]
//	    expect:
//	      bool: true
//	assertions:
//	  - type: trace_count
//	    op: subtract
//	    count: 1
//
// Period operations take a subject "period" and zero or more "with"
// arguments. Collection operations (gaps, boundaries, union, intersect) take
// a "collection" list of names; intersect also takes the "period" to
// intersect with.
//
// Each step expects exactly one of: a list of periods in bracket notation,
// a bool, an int, or an error code such as CANNOT_COMPARE_PERIODS.
//
// # Deterministic Traces
//
// Steps are stamped by a testutil.DeterministicClock, so a scenario always
// produces the same trace. RunWithGolden compares the canonical JSON trace
// against testdata/golden/{name}.golden; regenerate with:
//
//	go test ./internal/harness -update
package harness
