package period_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/periods/internal/period"
)

func TestNewIncludedEndpoints(t *testing.T) {
	tests := []struct {
		notation      string
		includedStart time.Time
		includedEnd   time.Time
		length        int
	}{
		{"[2022-01-01, 2022-01-05]", date(2022, 1, 1), date(2022, 1, 5), 5},
		{"[2022-01-01, 2022-01-05)", date(2022, 1, 1), date(2022, 1, 4), 4},
		{"(2022-01-01, 2022-01-05]", date(2022, 1, 2), date(2022, 1, 5), 4},
		{"(2022-01-01, 2022-01-05)", date(2022, 1, 2), date(2022, 1, 4), 3},
		{"[2022-01-01, 2022-01-01]", date(2022, 1, 1), date(2022, 1, 1), 1},
		{"[2022-01, 2022-03)", date(2022, 1, 1), date(2022, 2, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			p := mustPeriod(t, tt.notation)
			assert.True(t, tt.includedStart.Equal(p.IncludedStart()), "included start %s", p.IncludedStart())
			assert.True(t, tt.includedEnd.Equal(p.IncludedEnd()), "included end %s", p.IncludedEnd())
			assert.Equal(t, tt.length, p.Length())
			assert.Equal(t, tt.notation, p.String())
		})
	}
}

func TestNewRoundsEndpoints(t *testing.T) {
	p, err := period.New(
		time.Date(2022, 1, 1, 13, 30, 0, 0, time.UTC),
		time.Date(2022, 1, 3, 8, 0, 0, 0, time.UTC),
		period.Day,
		period.IncludeBoth,
	)
	require.NoError(t, err)

	assert.True(t, date(2022, 1, 1).Equal(p.Start()))
	assert.True(t, date(2022, 1, 3).Equal(p.End()))
	assert.Equal(t, period.Day, p.Precision())
	assert.Equal(t, period.IncludeBoth, p.Boundaries())
}

func TestNewEndBeforeStart(t *testing.T) {
	_, err := period.New(date(2022, 2, 1), date(2022, 1, 1), period.Day, period.IncludeBoth)

	require.Error(t, err)
	assert.True(t, period.IsInvalidPeriod(err))

	var pe *period.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "2022-02-01", pe.Details["start"])
	assert.Equal(t, "2022-01-01", pe.Details["end"])
}

func TestNewExclusionsLeaveNothing(t *testing.T) {
	_, err := period.New(date(2022, 1, 1), date(2022, 1, 2), period.Day, period.ExcludeBoth)
	assert.True(t, period.IsInvalidPeriod(err))

	_, err = period.New(date(2022, 1, 1), date(2022, 1, 1), period.Day, period.ExcludeEnd)
	assert.True(t, period.IsInvalidPeriod(err))
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		period.MustNew(date(2022, 2, 1), date(2022, 1, 1), period.Day, period.IncludeBoth)
	})
}

func TestNewFromIncludedRoundTrip(t *testing.T) {
	notations := []string{
		"[2022-01-01, 2022-01-31]",
		"[2022-01-01, 2022-02-01)",
		"(2021-12-31, 2022-01-31]",
		"(2021-12-31, 2022-02-01)",
		"[2020, 2022)",
		"(2022-01, 2022-06]",
		"[2022-01-01 10, 2022-01-01 18)",
		"(2022-01-01 10:00, 2022-01-01 10:30)",
		"[2022-01-01 10:00:00, 2022-01-01 10:00:59)",
	}

	for _, n := range notations {
		t.Run(n, func(t *testing.T) {
			p := mustPeriod(t, n)

			q, err := period.NewFromIncluded(p.IncludedStart(), p.IncludedEnd(), p.Precision(), p.Boundaries())
			require.NoError(t, err)

			assert.True(t, p.Start().Equal(q.Start()), "start %s vs %s", p.Start(), q.Start())
			assert.True(t, p.End().Equal(q.End()), "end %s vs %s", p.End(), q.End())
			assert.Equal(t, p.String(), q.String())

			eq, err := p.Equals(q)
			require.NoError(t, err)
			assert.True(t, eq)
		})
	}
}

func TestLengthAcrossPrecisions(t *testing.T) {
	tests := []struct {
		notation string
		length   int
		duration string
	}{
		{"[2022-01-01, 2022-01-31]", 31, "P31D"},
		{"[2024-02-01, 2024-02-29]", 29, "P29D"},
		{"[2022-01, 2022-03]", 3, "P3M"},
		{"[2020, 2022]", 3, "P3Y"},
		{"[2022-01-01 10, 2022-01-01 13]", 4, "PT4H"},
		{"[2022-01-01 10:00, 2022-01-01 10:30)", 30, "PT30M"},
		{"[2022-01-01 10:00:00, 2022-01-01 10:00:09]", 10, "PT10S"},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			p := mustPeriod(t, tt.notation)
			assert.Equal(t, tt.length, p.Length())
			assert.Equal(t, tt.duration, p.Duration().String())
		})
	}
}

func TestRenew(t *testing.T) {
	tests := []struct {
		notation string
		renewed  string
	}{
		{"[2022-01-01, 2022-01-31]", "[2022-02-01, 2022-03-03]"},
		{"[2022-01-01, 2022-01-08)", "[2022-01-08, 2022-01-15)"},
		{"[2022-01, 2022-03]", "[2022-04, 2022-06]"},
		{"(2022-01-01 09, 2022-01-01 12]", "(2022-01-01 12, 2022-01-01 15]"},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			p := mustPeriod(t, tt.notation)
			renewed := p.Renew()

			assert.Equal(t, tt.renewed, renewed.String())
			assert.Equal(t, p.Length(), renewed.Length())

			touches, err := p.TouchesWith(renewed)
			require.NoError(t, err)
			assert.True(t, touches)
		})
	}
}

func TestInstants(t *testing.T) {
	p := mustPeriod(t, "[2022-01-01, 2022-01-05)")

	got := slices.Collect(p.Instants())

	require.Len(t, got, 4)
	assert.True(t, date(2022, 1, 1).Equal(got[0]))
	assert.True(t, date(2022, 1, 4).Equal(got[3]))
}

func TestInstantsRestartable(t *testing.T) {
	p := mustPeriod(t, "[2022-01, 2022-12]")
	seq := p.Instants()

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Len(t, first, 12)
	assert.Equal(t, first, second)
	assert.Equal(t, p.Length(), len(first))
}

func TestInstantsStopEarly(t *testing.T) {
	p := mustPeriod(t, "[2022-01-01 00:00:00, 2022-01-01 23:59:59]")

	var seen []time.Time
	for ts := range p.Instants() {
		seen = append(seen, ts)
		if len(seen) == 3 {
			break
		}
	}

	require.Len(t, seen, 3)
	assert.True(t, instant(2022, 1, 1, 0, 0, 2).Equal(seen[2]))
}

func TestCeilingEnd(t *testing.T) {
	p := mustPeriod(t, "[2022-01-01, 2022-02-10]")

	end, err := p.CeilingEnd(period.Day)
	require.NoError(t, err)
	assert.True(t, instant(2022, 2, 10, 23, 59, 59).Equal(end))

	end, err = p.CeilingEnd(period.Month)
	require.NoError(t, err)
	assert.True(t, instant(2022, 2, 28, 23, 59, 59).Equal(end))

	end, err = p.CeilingEnd(period.Year)
	require.NoError(t, err)
	assert.True(t, instant(2022, 12, 31, 23, 59, 59).Equal(end))

	_, err = p.CeilingEnd(period.Hour)
	assert.True(t, period.IsCannotCeilLowerPrecision(err))
}

func TestCeilingStart(t *testing.T) {
	p := mustPeriod(t, "(2022-01-31, 2022-03-01]")

	start, err := p.CeilingStart(period.Month)
	require.NoError(t, err)
	assert.True(t, instant(2022, 2, 28, 23, 59, 59).Equal(start))
}

func TestTimeZonePassesThrough(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	p, err := period.New(
		time.Date(2022, 1, 1, 0, 0, 0, 0, loc),
		time.Date(2022, 1, 3, 0, 0, 0, 0, loc),
		period.Day,
		period.IncludeBoth,
	)
	require.NoError(t, err)

	assert.Equal(t, loc, p.IncludedStart().Location())
	assert.Equal(t, loc, p.Renew().IncludedEnd().Location())
}

func TestHourPeriodsAcrossDaylightSaving(t *testing.T) {
	ny := newYork(t)
	utc := func(month time.Month, day, hour, minute int) time.Time {
		return time.Date(2022, month, day, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		precision period.Precision
		start     time.Time
		end       time.Time
		instants  []time.Time
	}{
		{
			name:      "fall back repeats an hour",
			precision: period.Hour,
			start:     time.Date(2022, 11, 6, 0, 0, 0, 0, ny),
			end:       time.Date(2022, 11, 6, 3, 0, 0, 0, ny),
			instants:  []time.Time{utc(11, 6, 4, 0), utc(11, 6, 5, 0), utc(11, 6, 6, 0), utc(11, 6, 7, 0), utc(11, 6, 8, 0)},
		},
		{
			name:      "spring forward skips an hour",
			precision: period.Hour,
			start:     time.Date(2022, 3, 13, 0, 0, 0, 0, ny),
			end:       time.Date(2022, 3, 13, 4, 0, 0, 0, ny),
			instants:  []time.Time{utc(3, 13, 5, 0), utc(3, 13, 6, 0), utc(3, 13, 7, 0), utc(3, 13, 8, 0)},
		},
		{
			name:      "minutes through the repeated hour",
			precision: period.Minute,
			start:     utc(11, 6, 5, 58).In(ny),
			end:       utc(11, 6, 6, 1).In(ny),
			instants:  []time.Time{utc(11, 6, 5, 58), utc(11, 6, 5, 59), utc(11, 6, 6, 0), utc(11, 6, 6, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := period.New(tt.start, tt.end, tt.precision, period.IncludeBoth)
			require.NoError(t, err)

			var got []time.Time
			for ts := range p.Instants() {
				got = append(got, ts)
				if len(got) > len(tt.instants) {
					break
				}
			}

			require.Len(t, got, len(tt.instants))
			for i := range got {
				assert.True(t, tt.instants[i].Equal(got[i]), "instant %d: want %s, got %s", i, tt.instants[i], got[i])
			}
			assert.Equal(t, len(tt.instants), p.Length())
		})
	}
}

func TestRenewAcrossFallBack(t *testing.T) {
	ny := newYork(t)
	p, err := period.New(
		time.Date(2022, 11, 6, 0, 0, 0, 0, ny),
		time.Date(2022, 11, 6, 5, 0, 0, 0, time.UTC).In(ny), // 01:00 EDT
		period.Hour,
		period.IncludeBoth,
	)
	require.NoError(t, err)

	renewed := p.Renew()

	assert.True(t, time.Date(2022, 11, 6, 6, 0, 0, 0, time.UTC).Equal(renewed.IncludedStart()))
	assert.True(t, time.Date(2022, 11, 6, 7, 0, 0, 0, time.UTC).Equal(renewed.IncludedEnd()))
	assert.Equal(t, p.Length(), renewed.Length())

	touches, err := p.TouchesWith(renewed)
	require.NoError(t, err)
	assert.True(t, touches)
}

func TestSubtractRepeatedHour(t *testing.T) {
	ny := newYork(t)
	whole, err := period.New(time.Date(2022, 11, 6, 0, 0, 0, 0, ny), time.Date(2022, 11, 6, 3, 0, 0, 0, ny), period.Hour, period.IncludeBoth)
	require.NoError(t, err)
	firstOneAM := time.Date(2022, 11, 6, 5, 0, 0, 0, time.UTC).In(ny)
	busy, err := period.New(firstOneAM, firstOneAM, period.Hour, period.IncludeBoth)
	require.NoError(t, err)

	free, err := whole.Subtract(busy)
	require.NoError(t, err)

	require.Equal(t, 2, free.Len())
	assert.True(t, time.Date(2022, 11, 6, 4, 0, 0, 0, time.UTC).Equal(free.At(0).IncludedEnd()))
	assert.True(t, time.Date(2022, 11, 6, 6, 0, 0, 0, time.UTC).Equal(free.At(1).IncludedStart()))
	assert.True(t, time.Date(2022, 11, 6, 8, 0, 0, 0, time.UTC).Equal(free.At(1).IncludedEnd()))
	assert.Equal(t, whole.Length()-1, free.At(0).Length()+free.At(1).Length())
}
