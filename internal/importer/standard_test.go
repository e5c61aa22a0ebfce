package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerly/internal/importer"
)

var standardCols = importer.Mapping{
	"date":        0,
	"description": 1,
	"withdraw":    2,
	"deposit":     3,
	"balance":     4,
}

func TestStandardParseRow(t *testing.T) {
	spec, err := importer.SpecByID("standard")
	require.NoError(t, err)

	row := []string{"15/03/2024", "  POS Purchase  ", "120.50", "", "4500.00"}

	draft, err := spec.ParseRow(row, standardCols, importer.FormatDDMMYYYY, "ANZ")
	require.NoError(t, err)

	assert.Equal(t, "ANZ", draft.BankName)
	assert.Equal(t, date(2024, 3, 15), draft.Date)
	assert.Equal(t, "POS Purchase", draft.Description)
	require.NotNil(t, draft.Withdraw)
	assert.True(t, draft.Withdraw.Equal(decimalFromString(t, "120.50")))
	assert.Nil(t, draft.Deposit)
	assert.True(t, draft.Balance.Equal(decimalFromString(t, "4500.00")))
	assert.Equal(t, 2024, draft.Year)
	assert.Equal(t, 3, draft.Month)
}

func TestStandardParseRow_DepositOnly(t *testing.T) {
	spec, err := importer.SpecByID("standard")
	require.NoError(t, err)

	row := []string{"15/03/2024", "Salary", "", "5000.00", "9500.00"}

	draft, err := spec.ParseRow(row, standardCols, importer.FormatDDMMYYYY, "ANZ")
	require.NoError(t, err)

	assert.Nil(t, draft.Withdraw)
	require.NotNil(t, draft.Deposit)
	assert.True(t, draft.Deposit.Equal(decimalFromString(t, "5000.00")))
}

func TestStandardParseRow_BothAmountsEmpty(t *testing.T) {
	spec, err := importer.SpecByID("standard")
	require.NoError(t, err)

	row := []string{"15/03/2024", "Mystery", "", "", "4500.00"}

	_, err = spec.ParseRow(row, standardCols, importer.FormatDDMMYYYY, "ANZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Either Withdraw or Deposit must have a value")
}

func TestStandardParseRow_MissingBalance(t *testing.T) {
	spec, err := importer.SpecByID("standard")
	require.NoError(t, err)

	row := []string{"15/03/2024", "Groceries", "50.00", "", ""}

	_, err = spec.ParseRow(row, standardCols, importer.FormatDDMMYYYY, "ANZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Balance field is required")
}

func TestStandardParseRow_BadDate(t *testing.T) {
	spec, err := importer.SpecByID("standard")
	require.NoError(t, err)

	row := []string{"2024-03-15", "Groceries", "50.00", "", "100.00"}

	_, err = spec.ParseRow(row, standardCols, importer.FormatDDMMYYYY, "ANZ")
	require.Error(t, err)

	var invalid *importer.InvalidDateError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "DD/MM/YYYY (e.g., 15/03/2024)")
}

func TestStandardParseRow_EmptyDateCell(t *testing.T) {
	spec, err := importer.SpecByID("standard")
	require.NoError(t, err)

	row := []string{"", "Groceries", "50.00", "", "100.00"}

	_, err = spec.ParseRow(row, standardCols, importer.FormatDDMMYYYY, "ANZ")
	require.Error(t, err)

	var invalid *importer.InvalidDateError
	assert.ErrorAs(t, err, &invalid)
}

func TestStandardParseRow_MalformedAmount(t *testing.T) {
	spec, err := importer.SpecByID("standard")
	require.NoError(t, err)

	row := []string{"15/03/2024", "Groceries", "12.34.56", "", "100.00"}

	_, err = spec.ParseRow(row, standardCols, importer.FormatDDMMYYYY, "ANZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestStandardParseRow_ShortRow(t *testing.T) {
	spec, err := importer.SpecByID("standard")
	require.NoError(t, err)

	// Cells beyond the row's length read as empty.
	row := []string{"15/03/2024", "Groceries", "50.00"}

	_, err = spec.ParseRow(row, standardCols, importer.FormatDDMMYYYY, "ANZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Balance field is required")
}
