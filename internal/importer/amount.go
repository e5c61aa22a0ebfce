package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount normalizes a raw amount cell into a nullable decimal.
// Empty, whitespace-only and bare "-" cells carry no value and return nil
// without an error. Currency symbols and thousands separators are stripped;
// whatever remains must still read as a decimal number.
func ParseAmount(raw string) (*decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "-" {
		return nil, nil
	}

	var b strings.Builder

	for _, r := range trimmed {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" || cleaned == "-" {
		return nil, nil
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", raw)
	}

	return &d, nil
}
