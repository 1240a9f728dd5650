package factory

import (
	"regexp"
	"strings"
	"time"

	"github.com/roach88/periods/internal/period"
)

var (
	// granularityPattern matches a date written at year to second granularity.
	granularityPattern = regexp.MustCompile(`^(\d{4})(-\d{2})?(-\d{2})?([ T]\d{2})?(:\d{2})?(:\d{2})?$`)

	// notationPattern matches "[2022-01-01, 2022-01-31)" style periods.
	notationPattern = regexp.MustCompile(`^\s*([\[(])\s*([\d\-T: ]+?)\s*,+\s*([\d\-T: ]+?)\s*([\])])\s*$`)
)

// options holds the inputs Make falls back on when a caller omits them.
type options struct {
	precision  period.Precision
	boundaries period.Boundaries
	location   *time.Location
	layout     string
}

// Option configures Make, MakeTimes and FromString.
type Option func(*options)

// WithPrecision sets the precision. Defaults to day.
func WithPrecision(p period.Precision) Option {
	return func(o *options) { o.precision = p }
}

// WithBoundaries sets the boundaries. Defaults to include-both.
func WithBoundaries(b period.Boundaries) Option {
	return func(o *options) { o.boundaries = b }
}

// WithLocation sets the location dates are parsed in. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.location = loc }
}

// WithLayout parses dates with an explicit Go time layout instead of
// inferring one from their granularity.
func WithLayout(layout string) Option {
	return func(o *options) { o.layout = layout }
}

func resolve(opts []Option) options {
	o := options{
		precision:  period.Day,
		boundaries: period.IncludeBoth,
		location:   time.UTC,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Make creates a period from two date strings.
//
// Example: Make("2022-01-01", "2022-01-31") is the 31 days of January 2022.
func Make(start, end string, opts ...Option) (period.Period, error) {
	o := resolve(opts)

	s, err := parseDate(start, o.layout, o.location)
	if err != nil {
		return period.Period{}, err
	}
	e, err := parseDate(end, o.layout, o.location)
	if err != nil {
		return period.Period{}, err
	}

	return period.New(s, e, o.precision, o.boundaries)
}

// MakeTimes creates a period from two instants.
func MakeTimes(start, end time.Time, opts ...Option) (period.Period, error) {
	o := resolve(opts)
	return period.New(start, end, o.precision, o.boundaries)
}

// MustMake is like Make but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustMake(start, end string, opts ...Option) period.Period {
	p, err := Make(start, end, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// FromString parses a period in bracket notation, e.g. "[2022-01-01, 2022-03-31)".
// The precision is inferred from the granularity of the start date; only
// WithLocation is honoured among opts.
func FromString(s string, opts ...Option) (period.Period, error) {
	o := resolve(opts)

	m := notationPattern.FindStringSubmatch(s)
	if m == nil {
		return period.Period{}, period.NewInvalidNotationError(s)
	}
	startBracket, startDate, endDate, endBracket := m[1], m[2], m[3], m[4]

	boundaries, err := period.ParseBoundaries(startBracket, endBracket)
	if err != nil {
		return period.Period{}, err
	}

	precision, err := PrecisionFromString(startDate)
	if err != nil {
		return period.Period{}, err
	}

	start, err := parseDate(startDate, precision.Layout(), o.location)
	if err != nil {
		return period.Period{}, err
	}
	end, err := parseDate(endDate, precision.Layout(), o.location)
	if err != nil {
		return period.Period{}, err
	}

	return period.New(start, end, precision, boundaries)
}

// MustFromString is like FromString but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustFromString(s string, opts ...Option) period.Period {
	p, err := FromString(s, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// FromStrings parses every string with FromString into a collection.
func FromStrings(ss []string, opts ...Option) (period.Collection, error) {
	periods := make([]period.Period, 0, len(ss))
	for _, s := range ss {
		p, err := FromString(s, opts...)
		if err != nil {
			return period.Collection{}, err
		}
		periods = append(periods, p)
	}
	return period.NewCollection(periods...), nil
}

// PrecisionFromString infers a precision from how much of a date is written:
// "2022" is a year, "2022-01-01 10:30" a minute.
func PrecisionFromString(date string) (period.Precision, error) {
	m := granularityPattern.FindStringSubmatch(strings.TrimSpace(date))
	if m == nil {
		return 0, period.NewInvalidDateError(date, "")
	}

	written := 0
	for _, group := range m[1:] {
		if group == "" {
			break
		}
		written++
	}
	return period.Precisions[written-1], nil
}

// ParseDate parses s in loc. Without a layout, the layout is inferred from the
// granularity of s.
func ParseDate(s, layout string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return parseDate(s, layout, loc)
}

func parseDate(s, layout string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if layout == "" {
		precision, err := PrecisionFromString(s)
		if err != nil {
			return time.Time{}, err
		}
		layout = precision.Layout()
	}
	if !strings.Contains(layout, "T") {
		s = strings.Replace(s, "T", " ", 1)
	}

	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, period.NewInvalidDateError(s, layout)
	}
	return t, nil
}
