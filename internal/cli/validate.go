package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/periods/internal/schedule"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool                        `json:"valid"`
	Calendars []string                    `json:"calendars"`
	Errors    []*schedule.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schedule>",
		Short: "Validate a schedule",
		Long: `Validate a schedule without querying it.

Checks that every calendar declares periods, that every period parses and
that each calendar sticks to one precision. All problems are reported, with
file positions where available.

Exit codes:
  0 - Schedule is valid
  1 - Validation errors found
  2 - Schedule could not be loaded`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	parseOpts, err := opts.scheduleOptions()
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	sched, errs := LoadSchedule(path, parseOpts...)

	// Nothing loaded at all: the path or document is unusable.
	if sched == nil {
		return formatter.Fail(ExitCommandError, errs[0])
	}

	result := ValidationResult{Valid: len(errs) == 0, Calendars: sched.Names()}
	for _, err := range errs {
		var ve *schedule.ValidationError
		if errors.As(err, &ve) {
			result.Errors = append(result.Errors, ve)
			continue
		}
		result.Errors = append(result.Errors, &schedule.ValidationError{Code: ErrCodeGeneric, Message: err.Error()})
	}

	formatter.VerboseLog("Loaded %d valid calendar(s) from %s", sched.Len(), path)

	if !result.Valid {
		return outputValidationErrors(cmd.OutOrStdout(), formatter, result)
	}
	return outputValidateSuccess(cmd.OutOrStdout(), formatter, result)
}

func outputValidationErrors(w io.Writer, formatter *OutputFormatter, result ValidationResult) error {
	message := fmt.Sprintf("%d validation error(s)", len(result.Errors))

	if formatter.Format == "json" {
		resp := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    result.Errors[0].Code,
				Message: message,
			},
			TraceID: formatter.traceID(),
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return err
		}
		return NewExitError(ExitFailure, message)
	}

	fmt.Fprintf(w, "✗ %s\n", message)
	for _, e := range result.Errors {
		fmt.Fprintf(w, "  %s\n", e.Error())
	}
	return NewExitError(ExitFailure, message)
}

func outputValidateSuccess(w io.Writer, formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(w, "✓ Schedule valid: %d calendar(s)\n", len(result.Calendars))
	return nil
}
