package period

import "time"

// Boundaries says which endpoints of a period are part of it.
type Boundaries uint8

const (
	IncludeBoth  Boundaries = iota // [start, end]
	ExcludeEnd                     // [start, end)
	ExcludeStart                   // (start, end]
	ExcludeBoth                    // (start, end)
)

// ParseBoundaries maps a bracket pair such as "[" and ")" to Boundaries.
func ParseBoundaries(start, end string) (Boundaries, error) {
	switch start + end {
	case "[]":
		return IncludeBoth, nil
	case "[)":
		return ExcludeEnd, nil
	case "(]":
		return ExcludeStart, nil
	case "()":
		return ExcludeBoth, nil
	}
	return 0, NewInvalidBoundariesError(start, end)
}

func (b Boundaries) StartExcluded() bool {
	return b == ExcludeStart || b == ExcludeBoth
}

func (b Boundaries) StartIncluded() bool {
	return !b.StartExcluded()
}

func (b Boundaries) EndExcluded() bool {
	return b == ExcludeEnd || b == ExcludeBoth
}

func (b Boundaries) EndIncluded() bool {
	return !b.EndExcluded()
}

// StartBracket returns "[" or "(".
func (b Boundaries) StartBracket() string {
	if b.StartExcluded() {
		return "("
	}
	return "["
}

// EndBracket returns "]" or ")".
func (b Boundaries) EndBracket() string {
	if b.EndExcluded() {
		return ")"
	}
	return "]"
}

// String returns the bracket pair, e.g. "[)".
func (b Boundaries) String() string {
	return b.StartBracket() + b.EndBracket()
}

// RealStart returns the written start for an included start: unchanged when
// the start is included, one unit earlier when it is excluded.
func (b Boundaries) RealStart(includedStart time.Time, p Precision) time.Time {
	if b.StartIncluded() {
		return includedStart
	}
	return p.Decrement(includedStart)
}

// RealEnd returns the written end for an included end.
func (b Boundaries) RealEnd(includedEnd time.Time, p Precision) time.Time {
	if b.EndIncluded() {
		return includedEnd
	}
	return p.Increment(includedEnd)
}
