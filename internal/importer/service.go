package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer
type TransactionInserter interface {
	CreateBatch(ctx context.Context, drafts []transaction.Draft) ([]*transaction.Transaction, error)
}

type BankEnsurer interface {
	Ensure(ctx context.Context, name string) error
}

// Service runs whole-file, all-or-nothing imports: every row parses or
// nothing is written.
type Service struct {
	transactions TransactionInserter
	banks        BankEnsurer
}

func NewService(transactions TransactionInserter, banks BankEnsurer) *Service {
	return &Service{
		transactions: transactions,
		banks:        banks,
	}
}

type ImportParams struct {
	// Rows is the whole file; row 0 is the header row.
	Rows [][]string

	Bank string

	// ParserID selects a registered parser; empty means auto-detect.
	ParserID string

	// Mapping overrides column auto-detection when non-nil.
	Mapping Mapping

	DateFormat DateFormat
}

type ImportResult struct {
	ParserID string
	Imported []*transaction.Transaction
}

func (s *Service) Import(ctx context.Context, params ImportParams) (*ImportResult, error) {
	if len(params.Rows) == 0 {
		return nil, ErrEmptyInput
	}

	if !params.DateFormat.Valid() {
		return nil, fmt.Errorf("unsupported date format %q", string(params.DateFormat))
	}

	var spec *Spec

	cols := params.Mapping

	if params.ParserID == "" {
		detected, detectedCols := AutoDetect(params.Rows[0])

		spec = detected
		if cols == nil {
			cols = detectedCols
		}
	} else {
		var err error

		spec, err = SpecByID(params.ParserID)
		if err != nil {
			return nil, err
		}

		if cols == nil {
			cols = spec.AutoDetectColumns(params.Rows[0])
		}
	}

	if missing := spec.MissingMappings(cols); len(missing) > 0 {
		return nil, &MissingMappingError{Fields: missing}
	}

	var drafts []transaction.Draft

	var rowErrs ImportErrors

	for i, row := range params.Rows[1:] {
		rowNum := i + 2 // 1-based, header is row 1

		if blankRow(row) {
			continue
		}

		draft, err := spec.ParseRow(row, cols, params.DateFormat, params.Bank)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Err: err})
			continue
		}

		drafts = append(drafts, draft)
	}

	// Fail fast: a single bad row rejects the whole file so the user can
	// fix the source and retry, rather than receiving a partial import.
	if len(rowErrs) > 0 {
		return nil, rowErrs
	}

	if len(drafts) == 0 {
		return nil, ErrNoValidRows
	}

	if err := s.banks.Ensure(ctx, params.Bank); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorageFailure, err)
	}

	txs, err := s.transactions.CreateBatch(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorageFailure, err)
	}

	return &ImportResult{
		ParserID: spec.ID,
		Imported: txs,
	}, nil
}

// PreviewResult is what the mapping UI needs before an import is confirmed.
type PreviewResult struct {
	Headers    []string
	SampleRows [][]string
	ParserID   string
	ParserName string
	Mapping    Mapping
	Options    []Option
}

// Preview inspects the header row, proposes the best parser and column
// mapping, and returns a few sample rows.
func Preview(rows [][]string) (*PreviewResult, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	spec, cols := AutoDetect(headers)

	sample := rows[1:]
	if len(sample) > 3 {
		sample = sample[:3]
	}

	return &PreviewResult{
		Headers:    headers,
		SampleRows: sample,
		ParserID:   spec.ID,
		ParserName: spec.Name,
		Mapping:    cols,
		Options:    Options(),
	}, nil
}
