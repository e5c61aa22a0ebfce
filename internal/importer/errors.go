package importer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput means the file had no rows at all, not even a header.
	ErrEmptyInput = errors.New("the file is empty")

	// ErrNoValidRows means every data row was blank.
	ErrNoValidRows = errors.New("no valid transactions found")

	// ErrStorageFailure wraps any storage error raised during the atomic
	// batch insert; callers see no partial side effects.
	ErrStorageFailure = errors.New("storage failure")
)

// Row-level validation failures. The exact wording is what users see next
// to the offending row number.
var (
	errBalanceRequired = errors.New("Balance field is required and must contain a valid number")
	errAmountRequired  = errors.New("Amount field is required and must contain a valid number")
	errNoAmountColumns = errors.New("Either Withdraw or Deposit must have a value (both cannot be empty)")
)

// TypeIndicatorError reports an unrecognised CR/DR cell.
type TypeIndicatorError struct {
	Raw string
}

func (e *TypeIndicatorError) Error() string {
	return fmt.Sprintf("Type field must be CR/Credit (for deposit) or DR/Debit (for withdrawal). Found: '%s'", e.Raw)
}

// RowError ties a parse failure to its 1-based row number in the source
// file, where the header is row 1.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// ImportErrors is the full set of row failures from one import attempt.
// A non-empty set rejects the whole import before anything is written.
type ImportErrors []RowError

func (e ImportErrors) Error() string {
	msgs := make([]string, len(e))
	for i, re := range e {
		msgs[i] = re.Error()
	}

	return fmt.Sprintf("found %d error(s) in the file: %s", len(e), strings.Join(msgs, "; "))
}

// Messages returns one human-readable line per failed row.
func (e ImportErrors) Messages() []string {
	msgs := make([]string, len(e))
	for i, re := range e {
		msgs[i] = re.Error()
	}

	return msgs
}

// MissingMappingError reports required fields that have no column assigned.
type MissingMappingError struct {
	Fields []string
}

func (e *MissingMappingError) Error() string {
	return "missing column mappings for required fields: " + strings.Join(e.Fields, ", ")
}
