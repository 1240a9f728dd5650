package period

import (
	"strings"
	"time"

	isoperiod "github.com/rickb777/period"
)

// Precision is the granularity a period is measured in.
// Values are ordered from coarsest (Year) to finest (Second).
type Precision uint8

const (
	Year Precision = iota + 1
	Month
	Day
	Hour
	Minute
	Second
)

// Precisions lists every precision from coarsest to finest.
var Precisions = []Precision{Year, Month, Day, Hour, Minute, Second}

var precisionNames = map[Precision]string{
	Year:   "year",
	Month:  "month",
	Day:    "day",
	Hour:   "hour",
	Minute: "minute",
	Second: "second",
}

var precisionLayouts = map[Precision]string{
	Year:   "2006",
	Month:  "2006-01",
	Day:    "2006-01-02",
	Hour:   "2006-01-02 15",
	Minute: "2006-01-02 15:04",
	Second: "2006-01-02 15:04:05",
}

// ParsePrecision returns the precision with the given name ("day", "hour", ...).
func ParsePrecision(name string) (Precision, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Precisions {
		if precisionNames[p] == n {
			return p, nil
		}
	}
	return 0, &Error{
		Code:    ErrCodeInvalidPrecision,
		Message: "unknown precision " + name,
		Details: map[string]string{"precision": name},
	}
}

// IsValid reports whether p is one of the six defined precisions.
func (p Precision) IsValid() bool {
	return p >= Year && p <= Second
}

// String returns the lower-case unit name.
func (p Precision) String() string {
	if name, ok := precisionNames[p]; ok {
		return name
	}
	return "unknown"
}

// Layout returns the Go time layout of a date written at this precision.
func (p Precision) Layout() string {
	return precisionLayouts[p]
}

// Format renders t at this precision.
func (p Precision) Format(t time.Time) string {
	return t.Format(p.Layout())
}

// Interval returns one unit of this precision as an ISO-8601 period.
func (p Precision) Interval() isoperiod.Period {
	return p.span(1)
}

// span returns n units of this precision as an ISO-8601 period.
func (p Precision) span(n int) isoperiod.Period {
	switch p {
	case Year:
		return isoperiod.NewYMD(n, 0, 0)
	case Month:
		return isoperiod.NewYMD(0, n, 0)
	case Day:
		return isoperiod.NewYMD(0, 0, n)
	case Hour:
		return isoperiod.NewHMS(n, 0, 0)
	case Minute:
		return isoperiod.NewHMS(0, n, 0)
	case Second:
		return isoperiod.NewHMS(0, 0, n)
	}
	return isoperiod.Zero
}

// Equals reports whether p matches any of others.
func (p Precision) Equals(others ...Precision) bool {
	for _, o := range others {
		if p == o {
			return true
		}
	}
	return false
}

// HigherThan reports whether p is strictly finer-grained than other.
func (p Precision) HigherThan(other Precision) bool {
	return p > other
}

// Compare returns -1, 0 or +1 ordering coarse before fine.
func (p Precision) Compare(other Precision) int {
	switch {
	case p < other:
		return -1
	case p > other:
		return 1
	}
	return 0
}

// Round truncates every field of t finer than p to its minimum value.
// Sub-second parts are always dropped. The location of t is kept.
//
// Hour, Minute and Second truncate the instant itself, so a wall-clock time
// repeated by a daylight saving change keeps its own offset.
func (p Precision) Round(t time.Time) time.Time {
	t = t.Round(0)
	switch p {
	case Hour:
		return t.Add(-(time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second +
			time.Duration(t.Nanosecond())))
	case Minute:
		return t.Add(-(time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())))
	case Second:
		return t.Add(-time.Duration(t.Nanosecond()))
	}

	year, month, day := t.Date()
	if p < Month {
		month = time.January
	}
	if p < Day {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Ceil returns the last second of the target unit holding t: December, the
// last day of the month, 23:59:59. The target may not be finer than p.
func (p Precision) Ceil(t time.Time, target Precision) (time.Time, error) {
	if target.HigherThan(p) {
		return time.Time{}, NewCannotCeilLowerPrecisionError(p, target)
	}
	return target.Increment(t).Add(-time.Second), nil
}

// Increment adds one unit to t and rounds the result.
func (p Precision) Increment(t time.Time) time.Time {
	next, _ := p.Interval().AddTo(p.Round(t))
	return p.Round(next)
}

// Decrement subtracts one unit from t and rounds the result.
func (p Precision) Decrement(t time.Time) time.Time {
	prev, _ := p.Interval().Negate().AddTo(p.Round(t))
	return p.Round(prev)
}

// add moves t by n units of p and rounds the result. n may be negative.
func (p Precision) add(t time.Time, n int) time.Time {
	next, _ := p.span(n).AddTo(p.Round(t))
	return p.Round(next)
}

// units counts the whole units of p from a to b; both must be rounded to p.
func (p Precision) units(a, b time.Time) int {
	switch p {
	case Year:
		return b.Year() - a.Year()
	case Month:
		return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	case Day:
		ay, am, ad := a.Date()
		by, bm, bd := b.Date()
		da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
		db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
		return int(db.Sub(da) / (24 * time.Hour))
	case Hour:
		return int(b.Sub(a) / time.Hour)
	case Minute:
		return int(b.Sub(a) / time.Minute)
	default:
		return int(b.Sub(a) / time.Second)
	}
}
