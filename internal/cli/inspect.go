package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/periods/internal/ir"
)

// PeriodInfo describes one period.
type PeriodInfo struct {
	ir.PeriodRecord
	Duration string `json:"duration"` // ISO 8601, e.g. P31D
	ID       string `json:"id"`
}

// InspectResult holds the described periods.
type InspectResult struct {
	Periods []PeriodInfo `json:"periods"`
}

// WriteText prints one block per period.
func (r InspectResult) WriteText(w io.Writer) {
	for i, p := range r.Periods {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, p.Notation)
		fmt.Fprintf(w, "  precision:  %s\n", p.Precision)
		fmt.Fprintf(w, "  boundaries: %s\n", p.Boundaries)
		fmt.Fprintf(w, "  included:   %s .. %s\n", p.IncludedStart, p.IncludedEnd)
		fmt.Fprintf(w, "  length:     %d\n", p.Length)
		fmt.Fprintf(w, "  duration:   %s\n", p.Duration)
		fmt.Fprintf(w, "  id:         %s\n", p.ID)
	}
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <period>...",
		Short: "Describe periods",
		Long: `Describe each period: its precision, boundaries, included endpoints,
length in precision units, ISO 8601 duration and content id.

Examples:
  periods inspect "[2022-01-01, 2022-02-01)"
  periods inspect --precision month 2022-01/2022-03`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args, cmd)
		},
	}
}

func runInspect(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	periods, err := opts.parsePeriods(args)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	result := InspectResult{Periods: make([]PeriodInfo, 0, len(periods))}
	for _, p := range periods {
		rec := ir.NewPeriodRecord(p)
		id, err := ir.PeriodID(rec)
		if err != nil {
			return formatter.Fail(ExitFailure, err)
		}
		result.Periods = append(result.Periods, PeriodInfo{
			PeriodRecord: rec,
			Duration:     p.Duration().String(),
			ID:           id,
		})
	}

	opts.logger().Debug("inspected periods", "count", len(result.Periods))
	return formatter.Success(result)
}
