package period_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"

	"github.com/roach88/periods/internal/period"
	"github.com/roach88/periods/internal/testutil"
)

func mustPeriod(t *testing.T, s string) period.Period {
	t.Helper()
	return testutil.MustPeriod(t, s)
}

func mustCollection(t *testing.T, ss ...string) period.Collection {
	t.Helper()
	return testutil.MustCollection(t, ss...)
}

func notations(c period.Collection) []string { return testutil.Notations(c) }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func instant(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC)
}

// newYork is a zone with daylight saving changes on 2022-03-13 and 2022-11-06.
func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}
