package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/periods/internal/factory"
	"github.com/roach88/periods/internal/ir"
	"github.com/roach88/periods/internal/period"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Precision string // precision of START/END arguments
	TZ        string // location dates are parsed in

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the periods CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "periods",
		Version: ir.ToolVersion,
		Short:   "Interval algebra over date and time periods",
		Long: `Work with date and time periods: overlaps, subtraction, gaps and
free-slot search over calendars.

A period argument is written in bracket notation, e.g. "[2022-01-01, 2022-01-31)",
whose precision is inferred from the dates, or as START/END, e.g.
"2022-01-01/2022-01-31", which uses --precision and includes both ends.

Defaults come from PERIODS_PRECISION, PERIODS_TZ, PERIODS_FORMAT and
PERIODS_VERBOSE; flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return WrapExitError(ExitCommandError, "reading environment", err)
			}
			opts.ApplyConfig(cfg, cmd.Flags().Changed)

			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Precision, "precision", "day", "precision of START/END arguments (year|month|day|hour|minute|second)")
	cmd.PersistentFlags().StringVar(&opts.TZ, "tz", "UTC", "IANA time zone dates are parsed in")

	// Add subcommands
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewOverlapCommand(opts))
	cmd.AddCommand(NewSubtractCommand(opts))
	cmd.AddCommand(NewGapsCommand(opts))
	cmd.AddCommand(NewIterateCommand(opts))
	cmd.AddCommand(NewFreeCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// newLogger returns a text logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// location resolves --tz. An empty zone is UTC.
func (o *RootOptions) location() (*time.Location, error) {
	if o.TZ == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(o.TZ)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("unknown time zone %q", o.TZ), err)
	}
	return loc, nil
}

// parsePeriod reads a period argument in bracket notation or START/END form.
func (o *RootOptions) parsePeriod(arg string) (period.Period, error) {
	loc, err := o.location()
	if err != nil {
		return period.Period{}, err
	}

	start, end, ok := strings.Cut(arg, "/")
	if !ok || strings.ContainsAny(arg, "[]()") {
		return factory.FromString(arg, factory.WithLocation(loc))
	}

	name := o.Precision
	if name == "" {
		name = period.Day.String()
	}
	precision, err := period.ParsePrecision(name)
	if err != nil {
		return period.Period{}, err
	}
	return factory.Make(strings.TrimSpace(start), strings.TrimSpace(end),
		factory.WithPrecision(precision),
		factory.WithLocation(loc))
}

// parsePeriods reads every argument with parsePeriod.
func (o *RootOptions) parsePeriods(args []string) ([]period.Period, error) {
	out := make([]period.Period, 0, len(args))
	for _, arg := range args {
		p, err := o.parsePeriod(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
