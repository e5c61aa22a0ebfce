package importer

import (
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

// Mapping assigns semantic fields to zero-based column indexes. A field
// absent from the map has no column.
type Mapping map[string]int

// Field describes one semantic column of a layout, including the metadata
// the import UI needs to render a mapping form.
type Field struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Layout   string `json:"col"`
}

// Spec is one named strategy for interpreting a tabular layout into
// transaction drafts. The set of specs is fixed at process start.
type Spec struct {
	ID          string
	Name        string
	Description string

	// Fields is ordered; column auto-detection tests fields in this order.
	Fields []Field

	// keywords holds the lowercase header variants that claim each field.
	keywords map[string][]string

	parseRow func(row []string, cols Mapping, format DateFormat, bank string) (transaction.Draft, error)
}

// specs is the registry. Order matters: it breaks format-detection ties,
// and the first entry is the fallback when nothing matches.
var specs = []*Spec{standardSpec, creditDebitSpec}

// SpecByID resolves an explicitly chosen parser.
func SpecByID(id string) (*Spec, error) {
	for _, s := range specs {
		if s.ID == id {
			return s, nil
		}
	}

	return nil, fmt.Errorf("unknown parser %q", id)
}

// RequiredFields returns the field keys a mapping must cover.
func (s *Spec) RequiredFields() []string {
	var required []string

	for _, f := range s.Fields {
		if f.Required {
			required = append(required, f.Key)
		}
	}

	return required
}

// MissingMappings returns the required fields absent from cols.
func (s *Spec) MissingMappings(cols Mapping) []string {
	var missing []string

	for _, key := range s.RequiredFields() {
		if _, ok := cols[key]; !ok {
			missing = append(missing, key)
		}
	}

	return missing
}

// ParseRow normalizes one data row into a transaction draft.
func (s *Spec) ParseRow(row []string, cols Mapping, format DateFormat, bank string) (transaction.Draft, error) {
	return s.parseRow(row, cols, format, bank)
}

// Option is the registry surface handed to the presentation layer.
type Option struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Options lists every registered spec for UI selection.
func Options() []Option {
	opts := make([]Option, 0, len(specs))

	for _, s := range specs {
		opts = append(opts, Option{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Fields:      s.Fields,
		})
	}

	return opts
}

// cellValue safely gets the cell mapped to a field, or "" when the field is
// unmapped or the row is short.
func cellValue(row []string, cols Mapping, field string) string {
	idx, ok := cols[field]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return row[idx]
}

// blankRow reports whether every cell is empty after trimming.
func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
