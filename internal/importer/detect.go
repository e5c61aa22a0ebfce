package importer

import "strings"

// AutoDetectColumns proposes a column mapping for this spec from the header
// row. Headers are case-folded and trimmed; each header is tested against
// the spec's fields in declared order and claims the first still-unmapped
// field whose keywords it matches. A claimed field is never reassigned by a
// later header, and a header claims at most one field.
func (s *Spec) AutoDetectColumns(headers []string) Mapping {
	cols := make(Mapping)

	for idx, header := range headers {
		name := strings.ToLower(strings.TrimSpace(header))
		if name == "" {
			continue
		}

		for _, f := range s.Fields {
			if _, claimed := cols[f.Key]; claimed {
				continue
			}

			if matchesKeyword(name, s.keywords[f.Key]) {
				cols[f.Key] = idx
				break
			}
		}
	}

	return cols
}

func matchesKeyword(header string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(header, kw) {
			return true
		}
	}

	return false
}

// AutoDetect scores every registered spec against the header row and picks
// the best fit. Score is the number of mapped fields, plus 10 when every
// required field is mapped. Strict-greater comparison keeps the earlier
// registrant on ties; when nothing scores, the standard spec is the default.
func AutoDetect(headers []string) (*Spec, Mapping) {
	var best *Spec

	var bestCols Mapping

	bestScore := 0

	for _, s := range specs {
		cols := s.AutoDetectColumns(headers)

		score := len(cols)
		if len(s.MissingMappings(cols)) == 0 {
			score += 10
		}

		if score > bestScore {
			best = s
			bestCols = cols
			bestScore = score
		}
	}

	if best == nil {
		return standardSpec, standardSpec.AutoDetectColumns(headers)
	}

	return best, bestCols
}
