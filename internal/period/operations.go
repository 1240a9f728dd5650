package period

import (
	"slices"
	"time"
)

// Overlap returns the period both p and other cover, or nil when they share
// no unit. The result includes both endpoints.
func (p Period) Overlap(other Period) (*Period, error) {
	if err := p.ensurePrecisionMatches(other); err != nil {
		return nil, err
	}
	return p.overlap(other), nil
}

func (p Period) overlap(other Period) *Period {
	start := latest(p.includedStart, other.includedStart)
	end := earliest(p.includedEnd, other.includedEnd)
	if start.After(end) {
		return nil
	}
	o := closed(start, end, p.precision)
	return &o
}

// OverlapAll returns the period covered by p and every one of others, or nil
// when no unit is shared by all of them.
func (p Period) OverlapAll(others ...Period) (*Period, error) {
	current := closed(p.includedStart, p.includedEnd, p.precision)
	for _, other := range others {
		if err := p.ensurePrecisionMatches(other); err != nil {
			return nil, err
		}
		o := current.overlap(other)
		if o == nil {
			return nil, nil
		}
		current = *o
	}
	return &current, nil
}

// OverlapAny returns p's overlap with each of others that it overlaps, in the
// order of others.
func (p Period) OverlapAny(others ...Period) (Collection, error) {
	var overlaps []Period
	for _, other := range others {
		if err := p.ensurePrecisionMatches(other); err != nil {
			return Collection{}, err
		}
		if o := p.overlap(other); o != nil {
			overlaps = append(overlaps, *o)
		}
	}
	return Collection{periods: overlaps}, nil
}

// Gap returns the period strictly between p and other. It is nil when the
// periods overlap or touch.
func (p Period) Gap(other Period) (*Period, error) {
	if err := p.ensurePrecisionMatches(other); err != nil {
		return nil, err
	}
	if p.overlapsWith(other) || p.touchesWith(other) {
		return nil, nil
	}

	first, second := p, other
	if second.includedEnd.Before(first.includedStart) {
		first, second = second, first
	}
	gap := closed(
		p.precision.Increment(first.includedEnd),
		p.precision.Decrement(second.includedStart),
		p.precision,
	)
	return &gap, nil
}

// Subtract returns the parts of p not covered by any of others, as a
// disjoint collection ordered by start.
//
// others may overlap each other. Without others, or when none of them
// overlaps p, the result holds p itself.
func (p Period) Subtract(others ...Period) (Collection, error) {
	relevant := make([]Period, 0, len(others))
	for _, other := range others {
		if err := p.ensurePrecisionMatches(other); err != nil {
			return Collection{}, err
		}
		if p.overlapsWith(other) {
			relevant = append(relevant, other)
		}
	}
	if len(relevant) == 0 {
		return Collection{periods: []Period{p}}, nil
	}

	slices.SortStableFunc(relevant, func(a, b Period) int {
		return a.includedStart.Compare(b.includedStart)
	})

	var remaining []Period
	cursor := p.includedStart
	for _, other := range relevant {
		if other.includedStart.After(cursor) {
			remaining = append(remaining, closed(cursor, p.precision.Decrement(other.includedStart), p.precision))
		}
		if next := p.precision.Increment(other.includedEnd); next.After(cursor) {
			cursor = next
		}
	}
	if !cursor.After(p.includedEnd) {
		remaining = append(remaining, closed(cursor, p.includedEnd, p.precision))
	}

	return Collection{periods: remaining}, nil
}

// Diff returns the symmetric difference of p and other: the units covered by
// exactly one of them. p's remainder comes first.
func (p Period) Diff(other Period) (Collection, error) {
	left, err := p.Subtract(other)
	if err != nil {
		return Collection{}, err
	}
	right, err := other.Subtract(p)
	if err != nil {
		return Collection{}, err
	}
	return left.Add(right.periods...), nil
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
