package sheetdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
)

// Exit codes of the comparison commands.
const (
	ExitMatched  = 0
	ExitMismatch = 1
	ExitUsage    = 2
)

// Exit codes of the sort command beyond ExitUsage.
const (
	ExitOpenFailed  = 3
	ExitNoTargets   = 4
	ExitWriteFailed = 5
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrMismatch indicates the compared data differ. It is returned after the
// report has been written and is not a failure of the tool itself.
var ErrMismatch = errors.New("data mismatch")

// UsageError represents invalid arguments or an unreadable input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Usagef creates a UsageError from a format string.
func Usagef(format string, args ...interface{}) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// MissingSheetError represents a sheet name absent from a workbook.
type MissingSheetError struct {
	Missing models.MissingSheet
	// Matched lists the sheets that fully matched before the missing one.
	Matched []string
}

func (e *MissingSheetError) Error() string {
	var parts []string
	if e.Missing.Side != models.SideAuto {
		parts = append(parts, fmt.Sprintf("manual available: %q", e.Missing.ManualAvailable))
	}
	if e.Missing.Side != models.SideManual {
		parts = append(parts, fmt.Sprintf("auto available: %q", e.Missing.AutoAvailable))
	}
	return fmt.Sprintf("sheet %q not found in %s workbook (%s)", e.Missing.Sheet, e.Missing.Side, strings.Join(parts, "; "))
}

// SortError represents a sort command failure with its exit code.
type SortError struct {
	Code int
	Err  error
}

func (e *SortError) Error() string {
	return e.Err.Error()
}

func (e *SortError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by this package to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitMatched
	}
	if errors.Is(err, ErrMismatch) {
		return ExitMismatch
	}
	var sortErr *SortError
	if errors.As(err, &sortErr) {
		return sortErr.Code
	}
	return ExitUsage
}
