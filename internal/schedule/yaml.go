package schedule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/periods/internal/factory"
)

// LoadYAML loads a schedule from a YAML file with a top-level "calendars"
// mapping. Errors are collected the same way as LoadCUE.
func LoadYAML(path string, opts ...factory.Option) (*Schedule, []error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, []error{&ValidationError{Code: ErrCodeNotFound, Message: fmt.Sprintf("schedule file not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&ValidationError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading schedule file: %v", err)}}
	}
	return ParseYAML(data, path, opts...)
}

// ParseYAML builds a schedule from a YAML document.
func ParseYAML(data []byte, filename string, opts ...factory.Option) (*Schedule, []error) {
	var doc struct {
		Calendars yaml.Node `yaml:"calendars"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, []error{&ValidationError{
			Code:    ErrCodeBuildFailed,
			Message: fmt.Sprintf("parsing YAML: %v", err),
			Pos:     Position{Filename: filename},
		}}
	}

	b := newBuilder(opts)
	pos := func(n *yaml.Node) Position {
		return Position{Filename: filename, Line: n.Line, Column: n.Column}
	}

	calendars := &doc.Calendars
	if calendars.Kind == 0 {
		return b.result()
	}
	if calendars.Kind != yaml.MappingNode {
		return nil, []error{&ValidationError{
			Code:    ErrCodeBuildFailed,
			Message: "calendars must be a mapping of name to calendar",
			Pos:     pos(calendars),
		}}
	}

	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(calendars.Content); i += 2 {
		key, cal := calendars.Content[i], calendars.Content[i+1]
		name := key.Value

		var body struct {
			Periods *yaml.Node `yaml:"periods"`
		}
		if err := cal.Decode(&body); err != nil {
			b.fail(ErrCodeBuildFailed, name, fmt.Sprintf("decoding calendar: %v", err), pos(cal), nil)
			continue
		}
		if body.Periods == nil {
			b.addCalendar(name, pos(key), nil)
			continue
		}
		if body.Periods.Kind != yaml.SequenceNode {
			b.fail(ErrCodeInvalidPeriod, name, "periods must be a list of strings", pos(body.Periods), nil)
			continue
		}

		entries := make([]entry, 0, len(body.Periods.Content))
		ok := true
		for _, item := range body.Periods.Content {
			if item.Kind != yaml.ScalarNode {
				b.fail(ErrCodeInvalidPeriod, name, "period must be a string", pos(item), nil)
				ok = false
				continue
			}
			entries = append(entries, entry{notation: item.Value, pos: pos(item)})
		}
		if ok {
			b.addCalendar(name, pos(key), entries)
		}
	}

	return b.result()
}
