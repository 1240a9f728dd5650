package period_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/periods/internal/period"
)

func TestParseBoundaries(t *testing.T) {
	tests := []struct {
		start, end string
		want       period.Boundaries
		startIncl  bool
		endIncl    bool
	}{
		{"[", "]", period.IncludeBoth, true, true},
		{"[", ")", period.ExcludeEnd, true, false},
		{"(", "]", period.ExcludeStart, false, true},
		{"(", ")", period.ExcludeBoth, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.start+tt.end, func(t *testing.T) {
			b, err := period.ParseBoundaries(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
			assert.Equal(t, tt.startIncl, b.StartIncluded())
			assert.Equal(t, !tt.startIncl, b.StartExcluded())
			assert.Equal(t, tt.endIncl, b.EndIncluded())
			assert.Equal(t, !tt.endIncl, b.EndExcluded())
			assert.Equal(t, tt.start+tt.end, b.String())
		})
	}
}

func TestParseBoundariesUnknown(t *testing.T) {
	for _, pair := range [][2]string{{"]", "["}, {"{", "}"}, {"", ""}, {"[", "["}} {
		_, err := period.ParseBoundaries(pair[0], pair[1])
		assert.True(t, period.HasCode(err, period.ErrCodeInvalidBoundaries), "%q", pair)
	}
}

func TestBoundariesRealStart(t *testing.T) {
	included := date(2022, 1, 2)

	assert.True(t, included.Equal(period.IncludeBoth.RealStart(included, period.Day)))
	assert.True(t, included.Equal(period.ExcludeEnd.RealStart(included, period.Day)))
	assert.True(t, date(2022, 1, 1).Equal(period.ExcludeStart.RealStart(included, period.Day)))
	assert.True(t, date(2022, 1, 1).Equal(period.ExcludeBoth.RealStart(included, period.Day)))
	assert.True(t, date(2021, 12, 1).Equal(period.ExcludeStart.RealStart(date(2022, 1, 1), period.Month)))
}

func TestBoundariesRealEnd(t *testing.T) {
	included := date(2022, 1, 31)

	assert.True(t, included.Equal(period.IncludeBoth.RealEnd(included, period.Day)))
	assert.True(t, included.Equal(period.ExcludeStart.RealEnd(included, period.Day)))
	assert.True(t, date(2022, 2, 1).Equal(period.ExcludeEnd.RealEnd(included, period.Day)))
	assert.True(t, date(2022, 2, 1).Equal(period.ExcludeBoth.RealEnd(included, period.Day)))
	assert.True(t, instant(2022, 1, 31, 1, 0, 0).Equal(period.ExcludeEnd.RealEnd(included, period.Hour)))
}
