package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// IterateOptions holds flags for the iterate command.
type IterateOptions struct {
	*RootOptions
	Limit int // stop after this many instants; 0 means all
}

// IterateResult lists the instants of a period.
type IterateResult struct {
	Notation  string   `json:"notation"`
	Precision string   `json:"precision"`
	Instants  []string `json:"instants"`
	Truncated bool     `json:"truncated,omitempty"`
}

// WriteText prints one instant per line.
func (r IterateResult) WriteText(w io.Writer) {
	for _, t := range r.Instants {
		fmt.Fprintln(w, t)
	}
	if r.Truncated {
		fmt.Fprintln(w, "...")
	}
}

// NewIterateCommand creates the iterate command.
func NewIterateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IterateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "iterate <period>",
		Short: "List every unit of a period",
		Long: `List every unit of the period at its precision, from the included
start to the included end.

Example:
  periods iterate "[2022-01-01 09, 2022-01-01 17)"
  periods iterate --limit 7 "[2022-01-01, 2022-12-31]"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIterate(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "stop after this many instants (0 for all)")

	return cmd
}

func runIterate(opts *IterateOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Limit < 0 {
		return formatter.Fail(ExitCommandError, NewExitError(ExitCommandError, "--limit must be non-negative"))
	}

	p, err := opts.parsePeriod(arg)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	result := IterateResult{
		Notation:  p.String(),
		Precision: p.Precision().String(),
		Instants:  []string{},
	}
	for t := range p.Instants() {
		if opts.Limit > 0 && len(result.Instants) == opts.Limit {
			result.Truncated = true
			break
		}
		result.Instants = append(result.Instants, p.Precision().Format(t))
	}

	return formatter.Success(result)
}
