package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/periods/internal/factory"
	"github.com/roach88/periods/internal/schedule"
)

// LoadSchedule loads a schedule from a CUE directory, a single .cue file or
// a .yaml/.yml file. Like the schedule loaders it returns every validation
// error; the schedule is nil only when nothing could be loaded.
func LoadSchedule(path string, opts ...factory.Option) (*schedule.Schedule, []error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, []error{&schedule.ValidationError{Code: schedule.ErrCodeNotFound, Message: fmt.Sprintf("schedule not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&schedule.ValidationError{Code: schedule.ErrCodeNotFound, Message: fmt.Sprintf("error accessing schedule: %v", err)}}
	}

	if info.IsDir() {
		return schedule.LoadCUE(path, opts...)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return schedule.LoadYAML(path, opts...)
	case ".cue":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, []error{&schedule.ValidationError{Code: schedule.ErrCodeLoadFailed, Message: fmt.Sprintf("reading schedule file: %v", err)}}
		}
		return schedule.ParseCUE(data, path, opts...)
	default:
		return nil, []error{&schedule.ValidationError{
			Code:    schedule.ErrCodeNoFiles,
			Message: fmt.Sprintf("unsupported schedule file %s: want a directory, .cue, .yaml or .yml", path),
		}}
	}
}

// scheduleOptions returns the factory options schedule periods are parsed with.
func (o *RootOptions) scheduleOptions() ([]factory.Option, error) {
	loc, err := o.location()
	if err != nil {
		return nil, err
	}
	return []factory.Option{factory.WithLocation(loc)}, nil
}
