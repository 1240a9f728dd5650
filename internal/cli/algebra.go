package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/periods/internal/ir"
	"github.com/roach88/periods/internal/period"
)

// CollectionResult is a computed collection with its content id.
type CollectionResult struct {
	ir.CollectionRecord
	ID string `json:"id"`
}

// WriteText prints one period per line, or "(none)".
func (r CollectionResult) WriteText(w io.Writer) {
	if len(r.Periods) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, p := range r.Periods {
		fmt.Fprintln(w, p.Notation)
	}
}

func newCollectionResult(name string, c period.Collection) (CollectionResult, error) {
	rec := ir.NewCollectionRecord(name, c)
	id, err := ir.CollectionID(rec)
	if err != nil {
		return CollectionResult{}, err
	}
	return CollectionResult{CollectionRecord: rec, ID: id}, nil
}

// emitCollection reports a collection computed by an operation.
func emitCollection(opts *RootOptions, formatter *OutputFormatter, name string, c period.Collection) error {
	result, err := newCollectionResult(name, c)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}
	opts.logger().Debug("computed collection", "op", name, "periods", c.Len(), "id", result.ID)
	return formatter.Success(result)
}

// readRecords loads a collection saved as JSON, either a bare collection
// record or the envelope printed by --format json. An envelope's id must
// match the periods it carries.
func readRecords(path string) (period.Collection, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return period.Collection{}, WrapExitError(ExitCommandError, "records file not found: "+path, err)
	}
	if err != nil {
		return period.Collection{}, WrapExitError(ExitCommandError, "reading records", err)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if json.Unmarshal(data, &envelope) == nil && len(envelope.Data) > 0 {
		data = envelope.Data
	}

	rec, err := ir.DecodeCollectionRecord(data)
	if err != nil {
		return period.Collection{}, WrapExitError(ExitCommandError, path, err)
	}

	var stamped struct {
		ID string `json:"id"`
	}
	if json.Unmarshal(data, &stamped) == nil && stamped.ID != "" {
		id, err := ir.CollectionID(rec)
		if err != nil {
			return period.Collection{}, err
		}
		if id != stamped.ID {
			return period.Collection{}, NewExitError(ExitCommandError, fmt.Sprintf("%s: id %s does not match its periods", path, stamped.ID))
		}
	}

	c, err := rec.Collection()
	if err != nil {
		return period.Collection{}, WrapExitError(ExitCommandError, path, err)
	}
	return c, nil
}

// parseWithRecords parses the period arguments and appends the periods read
// from path, when set.
func (o *RootOptions) parseWithRecords(args []string, path string) ([]period.Period, error) {
	periods, err := o.parsePeriods(args)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return periods, nil
	}
	c, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	o.logger().Debug("read records", "path", path, "periods", c.Len())
	return append(periods, c.Periods()...), nil
}

// NewOverlapCommand creates the overlap command.
func NewOverlapCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "overlap <period> <period>...",
		Short: "Print the span shared by all periods",
		Long: `Print the span covered by every given period, or "(none)" when they
do not all overlap. All periods must share one precision.

Example:
  periods overlap "[2022-01-01, 2022-01-31]" "[2022-01-10, 2022-02-15]"`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverlap(rootOpts, args, cmd)
		},
	}
}

func runOverlap(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	periods, err := opts.parsePeriods(args)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	overlap, err := periods[0].OverlapAll(periods[1:]...)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}

	c := period.NewCollection()
	if overlap != nil {
		c = c.Add(*overlap)
	}
	return emitCollection(opts, formatter, "overlap", c)
}

// SubtractOptions holds flags for the subtract command.
type SubtractOptions struct {
	*RootOptions
	Records string // JSON collection whose periods are subtracted too
}

// NewSubtractCommand creates the subtract command.
func NewSubtractCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SubtractOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "subtract <period> <other>...",
		Short: "Print what remains of a period after removing others",
		Long: `Print the parts of the first period covered by none of the others,
in order. --records adds the periods of a collection saved with
--format json to the others.

Examples:
  periods subtract "[2022-01-01, 2022-01-31]" "[2022-01-10, 2022-01-15]"
  periods subtract --records busy.json "[2022-01-03 08, 2022-01-03 18)"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubtract(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Records, "records", "", "JSON collection file whose periods are subtracted too")

	return cmd
}

func runSubtract(opts *SubtractOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	periods, err := opts.parseWithRecords(args, opts.Records)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	remaining, err := periods[0].Subtract(periods[1:]...)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}
	return emitCollection(opts.RootOptions, formatter, "subtract", remaining)
}

// GapsOptions holds flags for the gaps command.
type GapsOptions struct {
	*RootOptions
	Union   bool   // print the merged cover instead of the gaps
	Records string // JSON collection whose periods are added to the arguments
}

// NewGapsCommand creates the gaps command.
func NewGapsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GapsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gaps <period>...",
		Short: "Print the holes between periods",
		Long: `Print the spans between the earliest start and the latest end of the
given periods that none of them covers. With --union, print the periods
merged into a disjoint cover instead. --records adds the periods of a
collection saved with --format json.

Examples:
  periods gaps "[2022-01-01, 2022-01-05]" "[2022-01-10, 2022-01-15]"
  periods gaps --union "[2022-01-01, 2022-01-05]" "[2022-01-06, 2022-01-15]"
  periods gaps --records busy.json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGaps(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Union, "union", false, "print the merged cover instead of the gaps")
	cmd.Flags().StringVar(&opts.Records, "records", "", "JSON collection file whose periods are added")

	return cmd
}

func runGaps(opts *GapsOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if len(args) == 0 && opts.Records == "" {
		return formatter.Fail(ExitCommandError, NewExitError(ExitCommandError, "gaps needs at least one period or --records"))
	}

	periods, err := opts.parseWithRecords(args, opts.Records)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}
	c := period.NewCollection(periods...)

	name, op := "gaps", c.Gaps
	if opts.Union {
		name, op = "union", c.Union
	}
	result, err := op()
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}
	return emitCollection(opts.RootOptions, formatter, name, result)
}
