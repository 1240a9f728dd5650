package factory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/periods/internal/factory"
	"github.com/roach88/periods/internal/period"
)

func TestMakeDefaults(t *testing.T) {
	p, err := factory.Make("2022-01-01", "2022-01-31")
	require.NoError(t, err)

	assert.Equal(t, period.Day, p.Precision())
	assert.Equal(t, period.IncludeBoth, p.Boundaries())
	assert.Equal(t, time.UTC, p.Start().Location())
	assert.Equal(t, "[2022-01-01, 2022-01-31]", p.String())
	assert.Equal(t, 31, p.Length())
}

func TestMakeWithOptions(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)

	p, err := factory.Make("01/01/2022 10:15", "01/01/2022 18:40",
		factory.WithLayout("02/01/2006 15:04"),
		factory.WithPrecision(period.Hour),
		factory.WithBoundaries(period.ExcludeEnd),
		factory.WithLocation(loc),
	)
	require.NoError(t, err)

	assert.Equal(t, "[2022-01-01 10, 2022-01-01 18)", p.String())
	assert.Equal(t, 8, p.Length())
	assert.Equal(t, loc, p.IncludedEnd().Location())
}

func TestMakeInvalid(t *testing.T) {
	_, err := factory.Make("2022-13-01", "2022-01-31")
	assert.True(t, period.HasCode(err, period.ErrCodeInvalidDate))

	_, err = factory.Make("yesterday", "2022-01-31")
	assert.True(t, period.HasCode(err, period.ErrCodeInvalidDate))

	_, err = factory.Make("2022-02-01", "2022-01-31")
	assert.True(t, period.IsInvalidPeriod(err))

	assert.Panics(t, func() { factory.MustMake("2022-02-01", "2022-01-31") })
}

func TestMakeTimes(t *testing.T) {
	p, err := factory.MakeTimes(
		time.Date(2022, 3, 10, 9, 30, 0, 0, time.UTC),
		time.Date(2022, 5, 2, 0, 0, 0, 0, time.UTC),
		factory.WithPrecision(period.Month),
	)
	require.NoError(t, err)
	assert.Equal(t, "[2022-03, 2022-05]", p.String())
}

func TestFromString(t *testing.T) {
	tests := []struct {
		input      string
		notation   string
		precision  period.Precision
		boundaries period.Boundaries
	}{
		{"[2022, 2023]", "[2022, 2023]", period.Year, period.IncludeBoth},
		{"[2022-01, 2022-03)", "[2022-01, 2022-03)", period.Month, period.ExcludeEnd},
		{"(2022-01-01, 2022-01-31]", "(2022-01-01, 2022-01-31]", period.Day, period.ExcludeStart},
		{"  ( 2022-01-01 10 , 2022-01-01 12 )  ", "(2022-01-01 10, 2022-01-01 12)", period.Hour, period.ExcludeBoth},
		{"[2022-01-01T10:30, 2022-01-01T11:00)", "[2022-01-01 10:30, 2022-01-01 11:00)", period.Minute, period.ExcludeEnd},
		{"[2022-01-01 10:30:00, 2022-01-01 10:30:59]", "[2022-01-01 10:30:00, 2022-01-01 10:30:59]", period.Second, period.IncludeBoth},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := factory.FromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.notation, p.String())
			assert.Equal(t, tt.precision, p.Precision())
			assert.Equal(t, tt.boundaries, p.Boundaries())
		})
	}
}

func TestFromStringInvalid(t *testing.T) {
	tests := []struct {
		input string
		code  period.ErrorCode
	}{
		{"2022-01-01, 2022-01-31", period.ErrCodeInvalidNotation},
		{"[2022-01-01 2022-01-31]", period.ErrCodeInvalidNotation},
		{"]2022-01-01, 2022-01-31[", period.ErrCodeInvalidNotation},
		{"[2022-01-01, 2022-01]", period.ErrCodeInvalidDate},
		{"[2022-02-30, 2022-03-01]", period.ErrCodeInvalidDate},
		{"[2022-01-31, 2022-01-01]", period.ErrCodeInvalidPeriod},
		{"(2022-01-01, 2022-01-02)", period.ErrCodeInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := factory.FromString(tt.input)
			require.Error(t, err)
			assert.True(t, period.HasCode(err, tt.code), "got %v", err)
		})
	}

	assert.Panics(t, func() { factory.MustFromString("nope") })
}

func TestFromStringLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)

	p, err := factory.FromString("[2022-01-01, 2022-01-02]", factory.WithLocation(loc))
	require.NoError(t, err)
	assert.Equal(t, loc, p.Start().Location())
}

func TestFromStrings(t *testing.T) {
	c, err := factory.FromStrings([]string{"[2022-01-01, 2022-01-05]", "[2022-01-10, 2022-01-15)"})
	require.NoError(t, err)
	assert.Equal(t, "{[2022-01-01, 2022-01-05] [2022-01-10, 2022-01-15)}", c.String())

	_, err = factory.FromStrings([]string{"[2022-01-01, 2022-01-05]", "bogus"})
	assert.True(t, period.HasCode(err, period.ErrCodeInvalidNotation))
}

func TestPrecisionFromString(t *testing.T) {
	tests := map[string]period.Precision{
		"2022":                  period.Year,
		"2022-01":               period.Month,
		"2022-01-01":            period.Day,
		"2022-01-01 10":         period.Hour,
		"2022-01-01T10":         period.Hour,
		"2022-01-01 10:30":      period.Minute,
		" 2022-01-01 10:30:15 ": period.Second,
	}

	for input, want := range tests {
		got, err := factory.PrecisionFromString(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"", "22", "2022/01/01", "2022-01-01 10:30:15.5"} {
		_, err := factory.PrecisionFromString(input)
		assert.True(t, period.HasCode(err, period.ErrCodeInvalidDate), "%q", input)
	}
}

func TestParseDate(t *testing.T) {
	got, err := factory.ParseDate("2022-03-04 05:06", "", nil)
	require.NoError(t, err)
	assert.True(t, time.Date(2022, 3, 4, 5, 6, 0, 0, time.UTC).Equal(got))
	assert.Equal(t, time.UTC, got.Location())

	_, err = factory.ParseDate("04.03.2022", "", nil)
	assert.True(t, period.HasCode(err, period.ErrCodeInvalidDate))

	got, err = factory.ParseDate("04.03.2022", "02.01.2006", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.March, got.Month())
}
