// Package schedule loads named calendars of periods and answers availability
// questions over them.
//
// A schedule document declares calendars, each a list of periods in bracket
// notation. Documents are written either in CUE:
//
//	calendar: alice: periods: [
//		"[2022-01-03 09, 2022-01-03 12)",
//		"[2022-01-03 14, 2022-01-03 16)",
//	]
//
// or in YAML:
//
//	calendars:
//	  alice:
//	    periods:
//	      - "[2022-01-03 09, 2022-01-03 12)"
//
// Loading validates every calendar and collects all errors rather than
// stopping at the first one. Each error carries a code and, when known, the
// file position of the offending entry:
//
//	S001  calendar has no periods
//	S002  period cannot be parsed
//	S003  calendar mixes precisions
//
// Once loaded, Free subtracts a calendar from a window to find free slots and
// Conflicts reports where two calendars overlap.
package schedule
