package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the date layout a user declares for an import. Separator
// variants of the declared format are tried automatically during parsing.
type DateFormat string

const (
	FormatDDMMYYYY DateFormat = "DD/MM/YYYY"
	FormatDDMMYY   DateFormat = "DD/MM/YY"
	FormatMMDDYYYY DateFormat = "MM/DD/YYYY"
	FormatYYYYMMDD DateFormat = "YYYY-MM-DD"
)

// DateFormats lists the accepted formats in the order they are offered to users.
func DateFormats() []DateFormat {
	return []DateFormat{FormatDDMMYYYY, FormatDDMMYY, FormatMMDDYYYY, FormatYYYYMMDD}
}

func (f DateFormat) Valid() bool {
	switch f {
	case FormatDDMMYYYY, FormatDDMMYY, FormatMMDDYYYY, FormatYYYYMMDD:
		return true
	}

	return false
}

func (f DateFormat) layout() string {
	switch f {
	case FormatDDMMYYYY:
		return "02/01/2006"
	case FormatDDMMYY:
		return "02/01/06"
	case FormatMMDDYYYY:
		return "01/02/2006"
	case FormatYYYYMMDD:
		return "2006-01-02"
	}

	return string(f)
}

// Display returns the human-readable description used in error messages.
func (f DateFormat) Display() string {
	switch f {
	case FormatDDMMYYYY:
		return "DD/MM/YYYY (e.g., 15/03/2024)"
	case FormatDDMMYY:
		return "DD/MM/YY (e.g., 15/03/24)"
	case FormatMMDDYYYY:
		return "MM/DD/YYYY (e.g., 03/15/2024)"
	case FormatYYYYMMDD:
		return "YYYY-MM-DD (e.g., 2024-03-15)"
	}

	return string(f)
}

// InvalidDateError reports a date cell that matched neither the declared
// format nor any of its separator variants.
type InvalidDateError struct {
	Raw      string
	Expected string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("The date '%s' is not in the expected format. Expected %s", e.Raw, e.Expected)
}

// Spreadsheet serial day counts are relative to 1899-12-30, which absorbs
// the fictitious 1900-02-29 that the 1900 epoch carries.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDate parses a raw date cell against the declared format. The second
// return is false when the cell is empty; the caller decides whether an
// empty date is an error.
//
// Attempts, in order, first success wins:
//  1. purely numeric cells are read as spreadsheet serial day counts
//  2. strict parse with the declared format — accepted only when formatting
//     the result back reproduces the trimmed input exactly, which rejects
//     lenient overflow parses such as day 32 rolling into the next month
//  3. the declared format with its separator swapped for the other two of
//     "/", "-" and ".", under the same round-trip rule
func ParseDate(raw string, format DateFormat) (time.Time, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false, nil
	}

	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if d, ok := fromSerial(serial); ok {
			return d, true, nil
		}
	}

	layout := format.layout()
	if d, ok := strictParse(trimmed, layout); ok {
		return d, true, nil
	}

	sep := layoutSeparator(layout)
	for _, alt := range []string{"/", "-", "."} {
		if alt == sep {
			continue
		}

		if d, ok := strictParse(trimmed, strings.ReplaceAll(layout, sep, alt)); ok {
			return d, true, nil
		}
	}

	return time.Time{}, false, &InvalidDateError{Raw: raw, Expected: format.Display()}
}

// strictParse accepts a value only if it round-trips through the layout.
func strictParse(s, layout string) (time.Time, bool) {
	d, err := time.Parse(layout, s)
	if err != nil || d.Format(layout) != s {
		return time.Time{}, false
	}

	return d, true
}

func layoutSeparator(layout string) string {
	if strings.Contains(layout, "-") {
		return "-"
	}

	if strings.Contains(layout, ".") {
		return "."
	}

	return "/"
}

// fromSerial converts a serial day count to a calendar date. The fractional
// part is the time of day, which the ledger does not keep.
func fromSerial(serial float64) (time.Time, bool) {
	if serial <= 0 {
		return time.Time{}, false
	}

	return serialEpoch.AddDate(0, 0, int(serial)), true
}
