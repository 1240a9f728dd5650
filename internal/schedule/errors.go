package schedule

import (
	"fmt"
)

// Error codes for schedule loading and validation.
const (
	// Validation errors (S001-S009)
	ErrCodeNoPeriods      = "S001" // calendar declares no periods
	ErrCodeInvalidPeriod  = "S002" // period cannot be parsed
	ErrCodeMixedPrecision = "S003" // calendar mixes precisions

	// Load errors (S010-S019)
	ErrCodeNotFound    = "S010" // path not found
	ErrCodeNoFiles     = "S011" // no schedule files found
	ErrCodeLoadFailed  = "S012" // CUE load failed
	ErrCodeBuildFailed = "S013" // CUE build or YAML decode failed
	ErrCodeNoCalendars = "S014" // document declares no calendars

	// Query errors (S020-S029)
	ErrCodeUnknownCalendar = "S020" // calendar name not in schedule
)

// Position locates an entry in a schedule document.
type Position struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// IsValid reports whether the position points at a line.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// ValidationError describes one problem found while loading a schedule.
type ValidationError struct {
	Code     string   `json:"code"`
	Calendar string   `json:"calendar,omitempty"`
	Message  string   `json:"message"`
	Pos      Position `json:"pos"`

	// Err is the underlying period error, if any.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Calendar != "" {
		msg = e.Calendar + ": " + msg
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *ValidationError) Unwrap() error { return e.Err }
