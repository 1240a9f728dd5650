package cli

import (
	"github.com/spf13/cobra"
)

// FreeOptions holds flags for the free command.
type FreeOptions struct {
	*RootOptions
	Within string // period to search
}

// NewFreeCommand creates the free command.
func NewFreeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FreeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "free <schedule> [calendar...]",
		Short: "Find free slots in a schedule",
		Long: `Print the parts of --within where none of the named calendars is busy.
Without calendar names, every calendar in the schedule is considered.

The schedule is a directory of CUE files, a single .cue file or a YAML file.

Examples:
  periods free ./team --within "[2022-01-03 09, 2022-01-03 17)"
  periods free team.yaml alice bob --within "[2022-01-03 09, 2022-01-03 17)"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFree(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Within, "within", "", "period to search for free slots (required)")
	_ = cmd.MarkFlagRequired("within")

	return cmd
}

func runFree(opts *FreeOptions, path string, names []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	within, err := opts.parsePeriod(opts.Within)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	parseOpts, err := opts.scheduleOptions()
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	sched, errs := LoadSchedule(path, parseOpts...)
	if len(errs) > 0 {
		for _, e := range errs {
			logger.Debug("schedule error", "error", e)
		}
		return formatter.Fail(ExitCommandError, errs[0])
	}
	logger.Debug("schedule loaded", "path", path, "calendars", sched.Len())

	if len(names) == 0 {
		names = sched.Names()
	}

	free, err := sched.FreeAll(within, names...)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}
	return emitCollection(opts.RootOptions, formatter, "free", free)
}
