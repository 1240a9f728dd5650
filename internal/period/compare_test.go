package period_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/periods/internal/period"
)

func TestTouchingPeriodsDoNotOverlap(t *testing.T) {
	a := mustPeriod(t, "[2022-01-01, 2022-01-05]")
	b := mustPeriod(t, "[2022-01-06, 2022-01-10]")

	for _, pair := range [][2]period.Period{{a, b}, {b, a}} {
		touches, err := pair[0].TouchesWith(pair[1])
		require.NoError(t, err)
		assert.True(t, touches)

		overlaps, err := pair[0].OverlapsWith(pair[1])
		require.NoError(t, err)
		assert.False(t, overlaps)
	}
}

func TestOverlapsWith(t *testing.T) {
	tests := []struct {
		a, b     string
		overlaps bool
		touches  bool
	}{
		{"[2022-01-01, 2022-01-10]", "[2022-01-10, 2022-01-20]", true, false},
		{"[2022-01-01, 2022-01-10)", "[2022-01-10, 2022-01-20]", false, true},
		{"[2022-01-01, 2022-01-31]", "[2022-01-10, 2022-01-15]", true, false},
		{"[2022-01-01, 2022-01-05]", "[2022-01-08, 2022-01-10]", false, false},
		{"[2022-01, 2022-02]", "[2022-03, 2022-04]", false, true},
		{"[2022-01-01 10, 2022-01-01 12)", "(2022-01-01 11, 2022-01-01 14]", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.a+" "+tt.b, func(t *testing.T) {
			a, b := mustPeriod(t, tt.a), mustPeriod(t, tt.b)

			overlaps, err := a.OverlapsWith(b)
			require.NoError(t, err)
			assert.Equal(t, tt.overlaps, overlaps)

			touches, err := a.TouchesWith(b)
			require.NoError(t, err)
			assert.Equal(t, tt.touches, touches)
		})
	}
}

func TestContains(t *testing.T) {
	outer := mustPeriod(t, "[2022-01-01, 2022-01-31]")
	inner := mustPeriod(t, "[2022-01-10, 2022-01-15]")
	same := mustPeriod(t, "[2022-01-01, 2022-02-01)")
	crossing := mustPeriod(t, "[2022-01-20, 2022-02-10]")

	contains, err := outer.Contains(inner)
	require.NoError(t, err)
	assert.True(t, contains)

	contains, err = inner.Contains(outer)
	require.NoError(t, err)
	assert.False(t, contains)

	contains, err = outer.Contains(same)
	require.NoError(t, err)
	assert.True(t, contains)

	contains, err = outer.Contains(crossing)
	require.NoError(t, err)
	assert.False(t, contains)
}

func TestContainsInstant(t *testing.T) {
	p := mustPeriod(t, "[2022-01-01, 2022-02-01)")

	assert.True(t, p.ContainsInstant(date(2022, 1, 1)))
	assert.True(t, p.ContainsInstant(instant(2022, 1, 31, 15, 0, 0)))
	assert.False(t, p.ContainsInstant(date(2022, 2, 1)))
	assert.False(t, p.ContainsInstant(instant(2021, 12, 31, 23, 59, 59)))
}

func TestEqualsIgnoresBoundaries(t *testing.T) {
	a := mustPeriod(t, "[2022-01-01, 2022-01-31]")
	b := mustPeriod(t, "(2021-12-31, 2022-02-01)")
	c := mustPeriod(t, "[2022-01-01, 2022-01-30]")

	eq, err := a.Equals(b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a.Equals(c)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestPairwiseOperationsRequireSamePrecision(t *testing.T) {
	day := mustPeriod(t, "[2022-01-01, 2022-01-31]")
	hour := mustPeriod(t, "[2022-01-01 00, 2022-01-01 05]")

	_, err := day.Overlap(hour)
	require.Error(t, err)
	assert.True(t, period.IsCannotComparePeriods(err))

	_, err = day.OverlapsWith(hour)
	assert.True(t, period.IsCannotComparePeriods(err))

	_, err = day.TouchesWith(hour)
	assert.True(t, period.IsCannotComparePeriods(err))

	_, err = day.Contains(hour)
	assert.True(t, period.IsCannotComparePeriods(err))

	_, err = day.Equals(hour)
	assert.True(t, period.IsCannotComparePeriods(err))

	_, err = day.Subtract(hour)
	assert.True(t, period.IsCannotComparePeriods(err))

	_, err = day.Gap(hour)
	assert.True(t, period.IsCannotComparePeriods(err))

	var pe *period.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "day", pe.Details["precision"])
	assert.Equal(t, "hour", pe.Details["other_precision"])
}

func TestStartsAndEnds(t *testing.T) {
	p := mustPeriod(t, "(2021-12-31, 2022-01-10]")

	assert.True(t, p.StartsAt(instant(2022, 1, 1, 13, 0, 0)))
	assert.True(t, p.StartsBefore(date(2022, 1, 2)))
	assert.False(t, p.StartsBefore(date(2022, 1, 1)))
	assert.True(t, p.StartsBeforeOrAt(date(2022, 1, 1)))
	assert.True(t, p.StartsAfter(date(2021, 12, 31)))
	assert.True(t, p.StartsAfterOrAt(date(2022, 1, 1)))
	assert.False(t, p.StartsAfter(date(2022, 1, 1)))

	assert.True(t, p.EndsAt(date(2022, 1, 10)))
	assert.True(t, p.EndsBefore(date(2022, 1, 11)))
	assert.True(t, p.EndsBeforeOrAt(date(2022, 1, 10)))
	assert.True(t, p.EndsAfter(date(2022, 1, 9)))
	assert.True(t, p.EndsAfterOrAt(date(2022, 1, 10)))
	assert.False(t, p.EndsAfter(date(2022, 1, 10)))
}
