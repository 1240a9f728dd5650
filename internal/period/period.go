package period

import (
	"iter"
	"time"

	isoperiod "github.com/rickb777/period"
)

// Period is a bounded span of time measured at a precision.
//
// start and end are the endpoints as written, which may be excluded by the
// boundaries. includedStart and includedEnd are the first and last units that
// belong to the period; all algebra runs on the included pair.
//
// Period is an immutable value. Every operation returns new values.
type Period struct {
	start         time.Time
	end           time.Time
	includedStart time.Time
	includedEnd   time.Time
	precision     Precision
	boundaries    Boundaries
}

// New creates a period from its written endpoints. Both endpoints are rounded
// to the precision before the boundaries are applied.
//
// Returns an InvalidPeriod error when start is after end, or when the
// exclusions leave no unit inside the period.
func New(start, end time.Time, precision Precision, boundaries Boundaries) (Period, error) {
	start = precision.Round(start)
	end = precision.Round(end)

	if start.After(end) {
		return Period{}, NewInvalidPeriodError(start, end, precision)
	}

	p := Period{
		start:         start,
		end:           end,
		includedStart: start,
		includedEnd:   end,
		precision:     precision,
		boundaries:    boundaries,
	}
	if boundaries.StartExcluded() {
		p.includedStart = precision.Increment(start)
	}
	if boundaries.EndExcluded() {
		p.includedEnd = precision.Decrement(end)
	}

	if p.includedStart.After(p.includedEnd) {
		return Period{}, NewInvalidPeriodError(p.includedStart, p.includedEnd, precision)
	}
	return p, nil
}

// NewFromIncluded creates a period from its included endpoints. The written
// endpoints are recovered through Boundaries.RealStart and RealEnd, so
// NewFromIncluded(p.IncludedStart(), p.IncludedEnd(), p.Precision(), p.Boundaries())
// equals p.
func NewFromIncluded(includedStart, includedEnd time.Time, precision Precision, boundaries Boundaries) (Period, error) {
	includedStart = precision.Round(includedStart)
	includedEnd = precision.Round(includedEnd)

	return New(
		boundaries.RealStart(includedStart, precision),
		boundaries.RealEnd(includedEnd, precision),
		precision,
		boundaries,
	)
}

// MustNew is like New but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustNew(start, end time.Time, precision Precision, boundaries Boundaries) Period {
	p, err := New(start, end, precision, boundaries)
	if err != nil {
		panic(err)
	}
	return p
}

// closed builds an include-both period over an already validated, rounded pair.
func closed(start, end time.Time, precision Precision) Period {
	return Period{
		start:         start,
		end:           end,
		includedStart: start,
		includedEnd:   end,
		precision:     precision,
		boundaries:    IncludeBoth,
	}
}

func (p Period) Start() time.Time         { return p.start }
func (p Period) End() time.Time           { return p.end }
func (p Period) IncludedStart() time.Time { return p.includedStart }
func (p Period) IncludedEnd() time.Time   { return p.includedEnd }
func (p Period) Precision() Precision     { return p.precision }
func (p Period) Boundaries() Boundaries   { return p.boundaries }

// String renders the period in bracket notation, e.g. "[2022-01-01, 2022-01-31]".
func (p Period) String() string {
	return p.boundaries.StartBracket() +
		p.precision.Format(p.start) + ", " + p.precision.Format(p.end) +
		p.boundaries.EndBracket()
}

// Length returns the number of precision units in the period, counting both
// included endpoints. A one-day period has length 1.
func (p Period) Length() int {
	return p.precision.units(p.includedStart, p.includedEnd) + 1
}

// Duration returns the length as an ISO-8601 period, e.g. P31D or PT4H.
func (p Period) Duration() isoperiod.Period {
	return p.precision.span(p.Length())
}

// CeilingStart returns the latest instant of the included start's unit at
// target precision. target may not be finer than the period's precision.
func (p Period) CeilingStart(target Precision) (time.Time, error) {
	return p.precision.Ceil(p.includedStart, target)
}

// CeilingEnd returns the latest instant of the included end's unit at
// target precision. CeilingEnd(p.Precision()) is the last second of the period.
func (p Period) CeilingEnd(target Precision) (time.Time, error) {
	return p.precision.Ceil(p.includedEnd, target)
}

// Renew returns a period of the same length and boundaries that starts on the
// unit right after this period ends.
func (p Period) Renew() Period {
	start := p.precision.Increment(p.includedEnd)
	end := p.precision.add(start, p.Length()-1)
	renewed, err := NewFromIncluded(start, end, p.precision, p.boundaries)
	if err != nil {
		// start <= end by construction
		panic(err)
	}
	return renewed
}

// Instants yields every unit of the period from the included start to the
// included end. The sequence can be ranged over any number of times.
func (p Period) Instants() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for t := p.includedStart; !t.After(p.includedEnd); t = p.precision.Increment(t) {
			if !yield(t) {
				return
			}
		}
	}
}

func (p Period) ensurePrecisionMatches(other Period) error {
	if p.precision == other.precision {
		return nil
	}
	return NewCannotComparePeriodsError(p.precision, other.precision)
}
