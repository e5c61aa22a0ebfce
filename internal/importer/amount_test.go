package importer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerly/internal/importer"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name string
		raw  string
		want string
	}

	tests := []testCase{
		{"Plain", "500.00", "500"},
		{"CurrencyAndThousands", "$1,234.56", "1234.56"},
		{"Negative", "-588.74", "-588.74"},
		{"NoDecimals", "1000", "1000"},
		{"TrailingCurrencyCode", "250.00 EUR", "250"},
		{"SurroundingWhitespace", "  42.50  ", "42.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := importer.ParseAmount(tt.raw)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, got.Equal(decimalFromString(t, tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseAmount_NoValue(t *testing.T) {
	for _, raw := range []string{"", "   ", "-", " - ", "$", "N/A"} {
		got, err := importer.ParseAmount(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Nil(t, got, "input %q", raw)
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	// Leftovers that survive stripping but are not a decimal number are an
	// error rather than a silent coercion.
	for _, raw := range []string{"12.34.56", "1-2", "1.2.3.4", "--5"} {
		got, err := importer.ParseAmount(raw)
		assert.Error(t, err, "input %q", raw)
		assert.Nil(t, got, "input %q", raw)
	}
}
