package schedule

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/periods/internal/factory"
)

// LoadCUE loads every CUE file of the package in dir and builds the schedule
// declared under its top-level "calendar" field.
//
// All validation errors are collected. The returned schedule holds the
// calendars that validated, and is nil only when the files could not be
// loaded at all.
func LoadCUE(dir string, opts ...factory.Option) (*Schedule, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&ValidationError{Code: ErrCodeNotFound, Message: fmt.Sprintf("schedule directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&ValidationError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing schedule directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&ValidationError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.cue"))
	if err != nil {
		return nil, []error{&ValidationError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(files) == 0 {
		return nil, []error{&ValidationError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, []error{&ValidationError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&ValidationError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := cuecontext.New().BuildInstance(inst)
	return fromCUE(value, opts)
}

// ParseCUE builds a schedule from a single CUE document.
func ParseCUE(src []byte, filename string, opts ...factory.Option) (*Schedule, []error) {
	value := cuecontext.New().CompileBytes(src, cue.Filename(filename))
	return fromCUE(value, opts)
}

func fromCUE(value cue.Value, opts []factory.Option) (*Schedule, []error) {
	if err := value.Err(); err != nil {
		return nil, []error{cueError(err)}
	}

	b := newBuilder(opts)

	calendars := value.LookupPath(cue.ParsePath("calendar"))
	if !calendars.Exists() {
		return b.result()
	}

	iter, err := calendars.Fields()
	if err != nil {
		return nil, []error{cueError(err)}
	}
	for iter.Next() {
		name := iter.Label()
		cal := iter.Value()

		periods := cal.LookupPath(cue.ParsePath("periods"))
		if !periods.Exists() {
			b.addCalendar(name, cuePosition(cal.Pos()), nil)
			continue
		}

		list, err := periods.List()
		if err != nil {
			b.fail(ErrCodeInvalidPeriod, name, "periods must be a list of strings", cuePosition(periods.Pos()), nil)
			continue
		}

		var entries []entry
		ok := true
		for list.Next() {
			v := list.Value()
			notation, err := v.String()
			if err != nil {
				b.fail(ErrCodeInvalidPeriod, name, fmt.Sprintf("period must be a string: %v", err), cuePosition(v.Pos()), nil)
				ok = false
				continue
			}
			entries = append(entries, entry{notation: notation, pos: cuePosition(v.Pos())})
		}
		if ok {
			b.addCalendar(name, cuePosition(cal.Pos()), entries)
		}
	}

	return b.result()
}

func cuePosition(pos token.Pos) Position {
	if !pos.IsValid() {
		return Position{}
	}
	return Position{Filename: pos.Filename(), Line: pos.Line(), Column: pos.Column()}
}

// cueError extracts position info from the first CUE error.
func cueError(err error) *ValidationError {
	ve := &ValidationError{Code: ErrCodeBuildFailed, Message: err.Error()}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return ve
	}
	ve.Message = errs[0].Error()
	if positions := cueerrors.Positions(errs[0]); len(positions) > 0 {
		ve.Pos = cuePosition(positions[0])
	}
	return ve
}
