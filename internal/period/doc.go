// Package period implements an interval algebra over date/time ranges.
//
// A Period is a bounded span of time measured at a Precision (year down to
// second) with Boundaries saying whether each endpoint belongs to it. Periods
// are compared unit by unit on their included endpoints, so "[2022-01-01,
// 2022-02-01)" and "[2022-01-01, 2022-01-31]" are the same period at day
// precision.
//
// Key constraints:
//   - Periods and Collections are immutable values; every operation returns new ones
//   - Pairwise operations require equal precision (ErrCodeCannotComparePeriods)
//   - Absence of overlap is a result (nil), not an error
//   - Time zones are carried on the instants and never converted
//   - No sub-second precision; rounding always drops nanoseconds
//
// The package never logs and performs no I/O. Parsing of strings into periods
// lives in package factory.
package period
