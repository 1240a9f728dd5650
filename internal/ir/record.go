package ir

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/periods/internal/period"
)

// PeriodRecord is the wire form of a period.
type PeriodRecord struct {
	Start         string `json:"start"`          // RFC 3339, as written
	End           string `json:"end"`            // RFC 3339, as written
	IncludedStart string `json:"included_start"` // RFC 3339
	IncludedEnd   string `json:"included_end"`   // RFC 3339
	Precision     string `json:"precision"`      // "year" .. "second"
	Boundaries    string `json:"boundaries"`     // "[]", "[)", "(]" or "()"
	Length        int64  `json:"length"`
	Notation      string `json:"notation"`
}

// CollectionRecord is the wire form of a named collection.
type CollectionRecord struct {
	Name    string         `json:"name"`
	Periods []PeriodRecord `json:"periods"`
}

// NewPeriodRecord converts a period to its wire form.
func NewPeriodRecord(p period.Period) PeriodRecord {
	return PeriodRecord{
		Start:         p.Start().Format(time.RFC3339),
		End:           p.End().Format(time.RFC3339),
		IncludedStart: p.IncludedStart().Format(time.RFC3339),
		IncludedEnd:   p.IncludedEnd().Format(time.RFC3339),
		Precision:     p.Precision().String(),
		Boundaries:    p.Boundaries().String(),
		Length:        int64(p.Length()),
		Notation:      p.String(),
	}
}

// NewCollectionRecord converts a collection to its wire form.
func NewCollectionRecord(name string, c period.Collection) CollectionRecord {
	rec := CollectionRecord{Name: name, Periods: make([]PeriodRecord, 0, c.Len())}
	for _, p := range c.All() {
		rec.Periods = append(rec.Periods, NewPeriodRecord(p))
	}
	return rec
}

// Period rebuilds the period from its written endpoints, precision and
// boundaries. Derived fields are not trusted.
func (r PeriodRecord) Period() (period.Period, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return period.Period{}, fmt.Errorf("start: %w", period.NewInvalidDateError(r.Start, time.RFC3339))
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return period.Period{}, fmt.Errorf("end: %w", period.NewInvalidDateError(r.End, time.RFC3339))
	}
	precision, err := period.ParsePrecision(r.Precision)
	if err != nil {
		return period.Period{}, err
	}
	if len(r.Boundaries) != 2 {
		return period.Period{}, period.NewInvalidBoundariesError(r.Boundaries, "")
	}
	boundaries, err := period.ParseBoundaries(r.Boundaries[:1], r.Boundaries[1:])
	if err != nil {
		return period.Period{}, err
	}
	return period.New(start, end, precision, boundaries)
}

// Collection rebuilds the collection from its records.
func (r CollectionRecord) Collection() (period.Collection, error) {
	periods := make([]period.Period, 0, len(r.Periods))
	for i, rec := range r.Periods {
		p, err := rec.Period()
		if err != nil {
			return period.Collection{}, fmt.Errorf("%s[%d]: %w", r.Name, i, err)
		}
		periods = append(periods, p)
	}
	return period.NewCollection(periods...), nil
}

// DecodeCollectionRecord reads a collection record from JSON. The document
// must be an object holding only canonical values, so floats and nulls are
// rejected. Unknown fields are ignored.
func DecodeCollectionRecord(data []byte) (CollectionRecord, error) {
	v, err := UnmarshalValue(data)
	if err != nil {
		return CollectionRecord{}, fmt.Errorf("decoding collection record: %w", err)
	}
	if _, ok := v.(Object); !ok {
		return CollectionRecord{}, fmt.Errorf("decoding collection record: expected an object, got %T", v)
	}

	var rec CollectionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return CollectionRecord{}, fmt.Errorf("decoding collection record: %w", err)
	}
	return rec, nil
}

// Object returns the record as a canonical value, including derived fields.
func (r PeriodRecord) Object() Object {
	obj := r.identity()
	obj["included_start"] = String(r.IncludedStart)
	obj["included_end"] = String(r.IncludedEnd)
	obj["length"] = Int(r.Length)
	obj["notation"] = String(r.Notation)
	return obj
}

// Object returns the record as a canonical value.
func (r CollectionRecord) Object() Object {
	members := make(Array, len(r.Periods))
	for i, p := range r.Periods {
		members[i] = p.Object()
	}
	return Object{
		"name":    String(r.Name),
		"periods": members,
	}
}

// identity holds the fields that determine a period.
func (r PeriodRecord) identity() Object {
	return Object{
		"start":      String(r.Start),
		"end":        String(r.End),
		"precision":  String(r.Precision),
		"boundaries": String(r.Boundaries),
	}
}

// Notations renders every period of c in bracket notation.
func Notations(c period.Collection) Array {
	arr := make(Array, 0, c.Len())
	for _, p := range c.All() {
		arr = append(arr, String(p.String()))
	}
	return arr
}
