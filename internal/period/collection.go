package period

import (
	"iter"
	"slices"
	"strings"
)

// Collection is an ordered sequence of periods.
//
// Duplicates and overlapping members are allowed. A Collection is never
// mutated: every transformation returns a new one.
type Collection struct {
	periods []Period
}

// NewCollection creates a collection holding periods in the given order.
func NewCollection(periods ...Period) Collection {
	return Collection{periods: slices.Clone(periods)}
}

func (c Collection) Len() int      { return len(c.periods) }
func (c Collection) IsEmpty() bool { return len(c.periods) == 0 }

// At returns the i-th period.
func (c Collection) At(i int) Period { return c.periods[i] }

// Periods returns a copy of the members.
func (c Collection) Periods() []Period {
	return slices.Clone(c.periods)
}

// All yields the members with their index.
func (c Collection) All() iter.Seq2[int, Period] {
	return slices.All(c.periods)
}

// String renders the members in bracket notation, separated by spaces.
func (c Collection) String() string {
	parts := make([]string, len(c.periods))
	for i, p := range c.periods {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Add returns a collection with periods appended.
func (c Collection) Add(periods ...Period) Collection {
	out := make([]Period, 0, len(c.periods)+len(periods))
	out = append(out, c.periods...)
	out = append(out, periods...)
	return Collection{periods: out}
}

// Map returns a collection with fn applied to every member.
func (c Collection) Map(fn func(Period) Period) Collection {
	out := make([]Period, len(c.periods))
	for i, p := range c.periods {
		out[i] = fn(p)
	}
	return Collection{periods: out}
}

// Filter returns the members for which keep returns true.
func (c Collection) Filter(keep func(Period) bool) Collection {
	var out []Period
	for _, p := range c.periods {
		if keep(p) {
			out = append(out, p)
		}
	}
	return Collection{periods: out}
}

// Reduce folds the members of c into a single value, in order.
func Reduce[T any](c Collection, fn func(carry T, p Period) T, initial T) T {
	carry := initial
	for _, p := range c.periods {
		carry = fn(carry, p)
	}
	return carry
}

// Overlap returns the overlap of every pair of members of c and other,
// iterating c in the outer loop. Duplicates are kept.
func (c Collection) Overlap(other Collection) (Collection, error) {
	var overlaps []Period
	for _, p := range c.periods {
		for _, q := range other.periods {
			o, err := p.Overlap(q)
			if err != nil {
				return Collection{}, err
			}
			if o != nil {
				overlaps = append(overlaps, *o)
			}
		}
	}
	return Collection{periods: overlaps}, nil
}

// OverlapAll folds Overlap over others, starting from c.
func (c Collection) OverlapAll(others ...Collection) (Collection, error) {
	overlap := c
	for _, other := range others {
		var err error
		overlap, err = overlap.Overlap(other)
		if err != nil {
			return Collection{}, err
		}
	}
	return overlap, nil
}

// Boundaries returns the period from the earliest included start to the latest
// included end of the members, or nil for an empty collection. Members must
// share one precision.
func (c Collection) Boundaries() (*Period, error) {
	if len(c.periods) == 0 {
		return nil, nil
	}

	first := c.periods[0]
	start, end := first.includedStart, first.includedEnd
	for _, p := range c.periods[1:] {
		if err := first.ensurePrecisionMatches(p); err != nil {
			return nil, err
		}
		start = earliest(start, p.includedStart)
		end = latest(end, p.includedEnd)
	}

	b := closed(start, end, first.precision)
	return &b, nil
}

// Gaps returns the parts of the collection's boundaries covered by no member.
func (c Collection) Gaps() (Collection, error) {
	bounds, err := c.Boundaries()
	if err != nil {
		return Collection{}, err
	}
	if bounds == nil {
		return Collection{}, nil
	}
	return bounds.Subtract(c.periods...)
}

// Intersect returns, for every member overlapping p, its overlap with p.
func (c Collection) Intersect(p Period) (Collection, error) {
	var intersected []Period
	for _, member := range c.periods {
		o, err := p.Overlap(member)
		if err != nil {
			return Collection{}, err
		}
		if o == nil {
			continue
		}
		intersected = append(intersected, *o)
	}
	return Collection{periods: intersected}, nil
}

// Subtract removes every period of others from every member and concatenates
// the remainders. An empty others returns c unchanged.
func (c Collection) Subtract(others Collection) (Collection, error) {
	if others.IsEmpty() {
		return c, nil
	}

	var remaining []Period
	for _, p := range c.periods {
		rest, err := p.Subtract(others.periods...)
		if err != nil {
			return Collection{}, err
		}
		remaining = append(remaining, rest.periods...)
	}
	return Collection{periods: remaining}, nil
}

// SubtractPeriod removes p from every member.
func (c Collection) SubtractPeriod(p Period) (Collection, error) {
	return c.Subtract(Collection{periods: []Period{p}})
}

// Sort returns the members ordered by included start, then included end.
func (c Collection) Sort() Collection {
	out := slices.Clone(c.periods)
	slices.SortStableFunc(out, func(a, b Period) int {
		if n := a.includedStart.Compare(b.includedStart); n != 0 {
			return n
		}
		return a.includedEnd.Compare(b.includedEnd)
	})
	return Collection{periods: out}
}

// Unique drops members equal to an earlier member, keeping the first.
func (c Collection) Unique() Collection {
	var out []Period
	for _, p := range c.periods {
		if !slices.ContainsFunc(out, p.equals) {
			out = append(out, p)
		}
	}
	return Collection{periods: out}
}

// Union merges overlapping and touching members into a sorted disjoint
// collection. Members must share one precision.
func (c Collection) Union() (Collection, error) {
	if _, err := c.Boundaries(); err != nil {
		return Collection{}, err
	}

	var merged []Period
	for _, p := range c.Sort().periods {
		if n := len(merged); n > 0 {
			last := merged[n-1]
			if !p.includedStart.After(last.precision.Increment(last.includedEnd)) {
				merged[n-1] = closed(last.includedStart, latest(last.includedEnd, p.includedEnd), last.precision)
				continue
			}
		}
		merged = append(merged, closed(p.includedStart, p.includedEnd, p.precision))
	}
	return Collection{periods: merged}, nil
}
