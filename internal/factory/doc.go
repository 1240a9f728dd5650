// Package factory resolves strings and instants into periods.
//
// It owns the input grammar of the algebra: date strings at year to second
// granularity ("2022", "2022-01", "2022-01-01 10:30:15") and bracket notation
// ("[2022-01-01, 2022-03-31)"), where "[" and "]" include an endpoint and "("
// and ")" exclude it. Malformed input fails with period.ErrCodeInvalidDate or
// period.ErrCodeInvalidNotation.
package factory
