package period

import (
	"errors"
	"fmt"
	"time"
)

// Error represents a violated contract of the period algebra.
//
// Errors are raised synchronously at the point of violation:
//   - Invalid period: start after end once boundaries are resolved
//   - Cannot compare: pairwise operation over periods of different precision
//   - Cannot ceil: ceiling requested at a finer precision than the value's own
//   - Invalid boundaries / date / notation: malformed input
//
// Error includes structured fields naming the conflicting values.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Details contains the conflicting values.
	Details map[string]string
}

// ErrorCode categorizes period errors.
type ErrorCode string

const (
	// ErrCodeInvalidPeriod indicates a period whose start is after its end.
	ErrCodeInvalidPeriod ErrorCode = "INVALID_PERIOD"

	// ErrCodeCannotComparePeriods indicates two periods with differing precision.
	ErrCodeCannotComparePeriods ErrorCode = "CANNOT_COMPARE_PERIODS"

	// ErrCodeCannotCeilLowerPrecision indicates a ceiling finer than the value's precision.
	ErrCodeCannotCeilLowerPrecision ErrorCode = "CANNOT_CEIL_LOWER_PRECISION"

	// ErrCodeInvalidBoundaries indicates an unknown bracket combination.
	ErrCodeInvalidBoundaries ErrorCode = "INVALID_BOUNDARIES"

	// ErrCodeInvalidPrecision indicates an unknown precision name.
	ErrCodeInvalidPrecision ErrorCode = "INVALID_PRECISION"

	// ErrCodeInvalidDate indicates input that cannot be resolved to an instant.
	ErrCodeInvalidDate ErrorCode = "INVALID_DATE"

	// ErrCodeInvalidNotation indicates a string that is not bracket notation.
	ErrCodeInvalidNotation ErrorCode = "INVALID_NOTATION"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HasCode reports whether err is, or wraps, an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// IsInvalidPeriod returns true if the error is an invalid period error.
func IsInvalidPeriod(err error) bool {
	return HasCode(err, ErrCodeInvalidPeriod)
}

// IsCannotComparePeriods returns true if the error is a precision mismatch.
func IsCannotComparePeriods(err error) bool {
	return HasCode(err, ErrCodeCannotComparePeriods)
}

// IsCannotCeilLowerPrecision returns true if the error is a ceiling precision error.
func IsCannotCeilLowerPrecision(err error) bool {
	return HasCode(err, ErrCodeCannotCeilLowerPrecision)
}

// NewInvalidPeriodError creates an Error for a period whose start is after its end.
func NewInvalidPeriodError(start, end time.Time, p Precision) *Error {
	return &Error{
		Code:    ErrCodeInvalidPeriod,
		Message: fmt.Sprintf("the end time %s is before the start time %s", p.Format(end), p.Format(start)),
		Details: map[string]string{
			"start":     p.Format(start),
			"end":       p.Format(end),
			"precision": p.String(),
		},
	}
}

// NewCannotComparePeriodsError creates an Error for two periods with differing precision.
func NewCannotComparePeriodsError(a, b Precision) *Error {
	return &Error{
		Code:    ErrCodeCannotComparePeriods,
		Message: fmt.Sprintf("cannot compare a %s-precision period with a %s-precision period", a, b),
		Details: map[string]string{
			"precision":       a.String(),
			"other_precision": b.String(),
		},
	}
}

// NewCannotCeilLowerPrecisionError creates an Error for a ceiling at a finer
// precision than the value's own.
func NewCannotCeilLowerPrecisionError(own, target Precision) *Error {
	return &Error{
		Code:    ErrCodeCannotCeilLowerPrecision,
		Message: fmt.Sprintf("cannot get the latest %s of a %s", own, target),
		Details: map[string]string{
			"precision": own.String(),
			"target":    target.String(),
		},
	}
}

// NewInvalidBoundariesError creates an Error for an unknown bracket pair.
func NewInvalidBoundariesError(start, end string) *Error {
	return &Error{
		Code:    ErrCodeInvalidBoundaries,
		Message: fmt.Sprintf("unknown boundaries %q", start+end),
		Details: map[string]string{"boundaries": start + end},
	}
}

// NewInvalidDateError creates an Error for input that cannot be parsed with layout.
func NewInvalidDateError(input, layout string) *Error {
	return &Error{
		Code:    ErrCodeInvalidDate,
		Message: fmt.Sprintf("could not construct a date from %q with format %q", input, layout),
		Details: map[string]string{"input": input, "layout": layout},
	}
}

// NewInvalidNotationError creates an Error for a string that is not bracket notation.
func NewInvalidNotationError(input string) *Error {
	return &Error{
		Code:    ErrCodeInvalidNotation,
		Message: fmt.Sprintf("%q is not a period in bracket notation", input),
		Details: map[string]string{"input": input},
	}
}
