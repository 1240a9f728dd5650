package period

import "time"

// OverlapsWith reports whether the two periods share at least one unit.
func (p Period) OverlapsWith(other Period) (bool, error) {
	if err := p.ensurePrecisionMatches(other); err != nil {
		return false, err
	}
	return p.overlapsWith(other), nil
}

func (p Period) overlapsWith(other Period) bool {
	return !p.includedStart.After(other.includedEnd) && !other.includedStart.After(p.includedEnd)
}

// TouchesWith reports whether the periods are adjacent: one starts on the
// unit right after the other ends.
func (p Period) TouchesWith(other Period) (bool, error) {
	if err := p.ensurePrecisionMatches(other); err != nil {
		return false, err
	}
	return p.touchesWith(other), nil
}

func (p Period) touchesWith(other Period) bool {
	return p.precision.Increment(p.includedEnd).Equal(other.includedStart) ||
		p.precision.Increment(other.includedEnd).Equal(p.includedStart)
}

// Contains reports whether other lies entirely within p.
func (p Period) Contains(other Period) (bool, error) {
	if err := p.ensurePrecisionMatches(other); err != nil {
		return false, err
	}
	return !other.includedStart.Before(p.includedStart) && !other.includedEnd.After(p.includedEnd), nil
}

// ContainsInstant reports whether t, rounded to the period's precision, falls
// on one of its units.
func (p Period) ContainsInstant(t time.Time) bool {
	t = p.precision.Round(t)
	return !t.Before(p.includedStart) && !t.After(p.includedEnd)
}

// Equals reports whether both periods cover the same units. Boundaries are
// irrelevant: "[2022-01-01, 2022-02-01)" equals "[2022-01-01, 2022-01-31]".
func (p Period) Equals(other Period) (bool, error) {
	if err := p.ensurePrecisionMatches(other); err != nil {
		return false, err
	}
	return p.equals(other), nil
}

func (p Period) equals(other Period) bool {
	return p.precision == other.precision &&
		p.includedStart.Equal(other.includedStart) &&
		p.includedEnd.Equal(other.includedEnd)
}

func (p Period) StartsBefore(t time.Time) bool {
	return p.includedStart.Before(t)
}

func (p Period) StartsBeforeOrAt(t time.Time) bool {
	return !p.includedStart.After(t)
}

func (p Period) StartsAfter(t time.Time) bool {
	return p.includedStart.After(t)
}

func (p Period) StartsAfterOrAt(t time.Time) bool {
	return !p.includedStart.Before(t)
}

// StartsAt reports whether the included start is the unit t falls on.
func (p Period) StartsAt(t time.Time) bool {
	return p.includedStart.Equal(p.precision.Round(t))
}

func (p Period) EndsBefore(t time.Time) bool {
	return p.includedEnd.Before(t)
}

func (p Period) EndsBeforeOrAt(t time.Time) bool {
	return !p.includedEnd.After(t)
}

func (p Period) EndsAfter(t time.Time) bool {
	return p.includedEnd.After(t)
}

func (p Period) EndsAfterOrAt(t time.Time) bool {
	return !p.includedEnd.Before(t)
}

// EndsAt reports whether the included end is the unit t falls on.
func (p Period) EndsAt(t time.Time) bool {
	return p.includedEnd.Equal(p.precision.Round(t))
}
