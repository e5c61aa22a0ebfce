package importer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerly/internal/importer"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	type testCase struct {
		name   string
		raw    string
		format importer.DateFormat
		want   time.Time
	}

	tests := []testCase{
		{"DayMonthYear", "15/03/2024", importer.FormatDDMMYYYY, date(2024, 3, 15)},
		{"MonthDayYear", "03/15/2024", importer.FormatMMDDYYYY, date(2024, 3, 15)},
		{"ISO", "2024-03-15", importer.FormatYYYYMMDD, date(2024, 3, 15)},
		{"SurroundingWhitespace", "  15/03/2024  ", importer.FormatDDMMYYYY, date(2024, 3, 15)},

		// Separator variants of the declared format are accepted.
		{"DashForSlash", "15-03-2024", importer.FormatDDMMYYYY, date(2024, 3, 15)},
		{"DotForSlash", "15.03.2024", importer.FormatDDMMYYYY, date(2024, 3, 15)},
		{"SlashForDash", "2024/03/15", importer.FormatYYYYMMDD, date(2024, 3, 15)},

		// Two-digit years follow Go's window: 00-68 is 2000s, 69-99 is 1900s.
		{"TwoDigitYear2000s", "15/03/24", importer.FormatDDMMYY, date(2024, 3, 15)},
		{"TwoDigitYear1900s", "15/03/99", importer.FormatDDMMYY, date(1999, 3, 15)},

		// Purely numeric cells are spreadsheet serial day counts.
		{"SerialDate", "45366", importer.FormatDDMMYYYY, date(2024, 3, 15)},
		{"SerialDateWithTimeOfDay", "45366.75", importer.FormatDDMMYYYY, date(2024, 3, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := importer.ParseDate(tt.raw, tt.format)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Empty(t *testing.T) {
	_, ok, err := importer.ParseDate("", importer.FormatDDMMYYYY)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = importer.ParseDate("   ", importer.FormatDDMMYYYY)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		format importer.DateFormat
	}{
		{"Garbage", "not a date", importer.FormatDDMMYYYY},
		{"DayOverflow", "32/01/2024", importer.FormatDDMMYYYY},
		{"MonthOverflow", "15/13/2024", importer.FormatDDMMYYYY},
		// Go would parse unpadded digits leniently; the round-trip check
		// rejects them because formatting back restores the padding.
		{"UnpaddedDay", "2/3/2024", importer.FormatDDMMYYYY},
		{"WrongFieldOrder", "2024-03-15", importer.FormatDDMMYYYY},
		{"NegativeSerial", "-5", importer.FormatDDMMYYYY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := importer.ParseDate(tt.raw, tt.format)
			require.Error(t, err)

			var invalid *importer.InvalidDateError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, invalid.Error(), tt.format.Display())
		})
	}
}

func TestParseDate_RoundTripContract(t *testing.T) {
	// Any value that formats back to itself must parse.
	inputs := map[string]importer.DateFormat{
		"01/01/2024": importer.FormatDDMMYYYY,
		"29/02/2024": importer.FormatDDMMYYYY, // leap day
		"12/31/1999": importer.FormatMMDDYYYY,
		"2000-02-29": importer.FormatYYYYMMDD,
	}

	for raw, format := range inputs {
		_, ok, err := importer.ParseDate(raw, format)
		require.NoError(t, err, "input %q", raw)
		assert.True(t, ok, "input %q", raw)
	}
}

func TestDateFormat_Valid(t *testing.T) {
	for _, f := range importer.DateFormats() {
		assert.True(t, f.Valid())
	}

	assert.False(t, importer.DateFormat("DD-MM-YYYY").Valid())
	assert.False(t, importer.DateFormat("").Valid())
}

func TestDateFormat_Display(t *testing.T) {
	assert.Equal(t, "DD/MM/YYYY (e.g., 15/03/2024)", importer.FormatDDMMYYYY.Display())
	assert.Equal(t, "YYYY-MM-DD (e.g., 2024-03-15)", importer.FormatYYYYMMDD.Display())
}
