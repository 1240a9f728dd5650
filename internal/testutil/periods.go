package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/periods/internal/factory"
	"github.com/roach88/periods/internal/period"
)

// MustPeriod parses a period in bracket notation or fails the test.
func MustPeriod(tb testing.TB, s string, opts ...factory.Option) period.Period {
	tb.Helper()
	p, err := factory.FromString(s, opts...)
	require.NoError(tb, err, "parsing %q", s)
	return p
}

// MustCollection parses every notation into a collection or fails the test.
func MustCollection(tb testing.TB, ss ...string) period.Collection {
	tb.Helper()
	c, err := factory.FromStrings(ss)
	require.NoError(tb, err)
	return c
}

// Notations renders every member of c in bracket notation. An empty
// collection yields an empty, non-nil slice so it compares equal to []string{}.
func Notations(c period.Collection) []string {
	out := []string{}
	for _, p := range c.All() {
		out = append(out, p.String())
	}
	return out
}
