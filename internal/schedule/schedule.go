package schedule

import (
	"fmt"

	"github.com/roach88/periods/internal/factory"
	"github.com/roach88/periods/internal/period"
)

// Calendar is a named collection of periods sharing one precision.
type Calendar struct {
	Name    string
	Periods period.Collection
}

// Precision returns the precision shared by the calendar's periods.
func (c Calendar) Precision() period.Precision {
	if c.Periods.IsEmpty() {
		return 0
	}
	return c.Periods.At(0).Precision()
}

// Busy returns the calendar's periods merged into a sorted disjoint cover.
func (c Calendar) Busy() (period.Collection, error) {
	return c.Periods.Union()
}

// Schedule is a set of calendars in declaration order.
type Schedule struct {
	names     []string
	calendars map[string]Calendar
}

// New builds a schedule from calendars. A later calendar replaces an earlier
// one with the same name.
func New(calendars ...Calendar) *Schedule {
	s := &Schedule{calendars: make(map[string]Calendar, len(calendars))}
	for _, c := range calendars {
		s.add(c)
	}
	return s
}

func (s *Schedule) add(c Calendar) {
	if _, ok := s.calendars[c.Name]; !ok {
		s.names = append(s.names, c.Name)
	}
	s.calendars[c.Name] = c
}

// Names returns calendar names in declaration order.
func (s *Schedule) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of calendars.
func (s *Schedule) Len() int { return len(s.names) }

// Calendar looks up a calendar by name.
func (s *Schedule) Calendar(name string) (Calendar, bool) {
	c, ok := s.calendars[name]
	return c, ok
}

func (s *Schedule) lookup(name string) (Calendar, error) {
	c, ok := s.calendars[name]
	if !ok {
		return Calendar{}, &ValidationError{
			Code:     ErrCodeUnknownCalendar,
			Calendar: name,
			Message:  "no such calendar",
		}
	}
	return c, nil
}

// Free returns the parts of within not covered by the named calendar, in
// order. within must have the calendar's precision.
func (s *Schedule) Free(name string, within period.Period) (period.Collection, error) {
	c, err := s.lookup(name)
	if err != nil {
		return period.Collection{}, err
	}
	free, err := within.Subtract(c.Periods.Periods()...)
	if err != nil {
		return period.Collection{}, fmt.Errorf("free slots of %s: %w", name, err)
	}
	return free, nil
}

// FreeAll returns the parts of within covered by none of the named
// calendars, the slots where everyone is available.
func (s *Schedule) FreeAll(within period.Period, names ...string) (period.Collection, error) {
	var busy []period.Period
	for _, name := range names {
		c, err := s.lookup(name)
		if err != nil {
			return period.Collection{}, err
		}
		busy = append(busy, c.Periods.Periods()...)
	}
	free, err := within.Subtract(busy...)
	if err != nil {
		return period.Collection{}, fmt.Errorf("common free slots: %w", err)
	}
	return free, nil
}

// Conflicts returns the spans where calendars a and b are both busy, merged
// into a sorted disjoint cover.
func (s *Schedule) Conflicts(a, b string) (period.Collection, error) {
	ca, err := s.lookup(a)
	if err != nil {
		return period.Collection{}, err
	}
	cb, err := s.lookup(b)
	if err != nil {
		return period.Collection{}, err
	}

	overlaps, err := ca.Periods.Overlap(cb.Periods)
	if err != nil {
		return period.Collection{}, fmt.Errorf("conflicts of %s and %s: %w", a, b, err)
	}
	return overlaps.Union()
}

// entry is one period as written in a document, before parsing.
type entry struct {
	notation string
	pos      Position
}

// builder turns raw calendar entries into a Schedule, collecting validation
// errors instead of stopping at the first one.
type builder struct {
	opts     []factory.Option
	schedule *Schedule
	errs     []error
}

func newBuilder(opts []factory.Option) *builder {
	return &builder{opts: opts, schedule: New()}
}

func (b *builder) fail(code, calendar, message string, pos Position, err error) {
	b.errs = append(b.errs, &ValidationError{
		Code:     code,
		Calendar: calendar,
		Message:  message,
		Pos:      pos,
		Err:      err,
	})
}

// addCalendar validates the entries of one calendar. A calendar with any
// invalid entry is left out of the schedule.
func (b *builder) addCalendar(name string, pos Position, entries []entry) {
	if len(entries) == 0 {
		b.fail(ErrCodeNoPeriods, name, "calendar declares no periods", pos, nil)
		return
	}

	valid := true
	periods := make([]period.Period, 0, len(entries))
	for _, e := range entries {
		p, err := factory.FromString(e.notation, b.opts...)
		if err != nil {
			b.fail(ErrCodeInvalidPeriod, name, fmt.Sprintf("%q: %v", e.notation, err), e.pos, err)
			valid = false
			continue
		}
		if len(periods) > 0 && periods[0].Precision() != p.Precision() {
			msg := fmt.Sprintf("%q has precision %s, calendar has %s", e.notation, p.Precision(), periods[0].Precision())
			b.fail(ErrCodeMixedPrecision, name, msg, e.pos, period.NewCannotComparePeriodsError(periods[0].Precision(), p.Precision()))
			valid = false
			continue
		}
		periods = append(periods, p)
	}

	if valid {
		b.schedule.add(Calendar{Name: name, Periods: period.NewCollection(periods...)})
	}
}

func (b *builder) result() (*Schedule, []error) {
	if b.schedule.Len() == 0 && len(b.errs) == 0 {
		b.fail(ErrCodeNoCalendars, "", "no calendars declared", Position{}, nil)
	}
	return b.schedule, b.errs
}
