// Package main provides the CLI entry point for sheetdiff.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/config"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/gsheets"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/output"
)

func main() {
	cfg, dotenv, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(sheetdiff.ExitUsage)
	}
	setupEnvironment(cfg, dotenv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = newRootCmd(cfg).ExecuteContext(ctx)
	stop()

	if err != nil && !errors.Is(err, sheetdiff.ErrMismatch) && !isReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(sheetdiff.ExitCode(err))
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetdiff",
		Short: "Compare and reorder spreadsheet data",
		Long: `sheetdiff validates an automatically generated workbook against a manually
maintained one, and sorts workbook rows by group priority.

Numbers are compared after rounding half away from zero to 5 decimal places;
text is compared trimmed and case-insensitively. A path of the form
gsheet:<spreadsheet-id> reads a Google spreadsheet instead of an xlsx file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.Google.CredentialsFile, "credentials", cfg.Google.CredentialsFile,
		"Google service account file for gsheet: paths")

	rootCmd.AddCommand(newOffsetCmd(cfg), newSheetsCmd(cfg), newSortCmd(cfg))
	return rootCmd
}

func sourceOptions(cfg *config.Config) sheetdiff.SourceOptions {
	return sheetdiff.SourceOptions{
		GoogleCredentials: cfg.Google.CredentialsFile,
		Retry: gsheets.RetryConfig{
			MaxRetries: cfg.Google.MaxRetries,
			BaseDelay:  cfg.Google.BaseDelay,
			MaxDelay:   cfg.Google.MaxDelay,
			Timeout:    cfg.Google.Timeout,
		},
	}
}

// reportFlags selects the report format shared by the comparison commands.
type reportFlags struct {
	json   bool
	pretty bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.json, "json", false, "Write the report as JSON")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
}

// write renders res as JSON or with the given text writer.
func write[T any](w io.Writer, f reportFlags, res T, text func(io.Writer, T) error) error {
	if !f.json {
		return text(w, res)
	}
	data, err := output.ToJSON(res, f.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// reportedError marks an error whose details were already written to the
// report, so main only sets the exit code.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
