package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledgerly/internal/importer"
	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

type pipelineMocks struct {
	transactions *importer.MockTransactionInserter
	banks        *importer.MockBankEnsurer
}

func newPipeline(t *testing.T) (*importer.Service, pipelineMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := pipelineMocks{
		transactions: importer.NewMockTransactionInserter(ctrl),
		banks:        importer.NewMockBankEnsurer(ctrl),
	}

	return importer.NewService(mocks.transactions, mocks.banks), mocks
}

func TestImport_Success(t *testing.T) {
	svc, mocks := newPipeline(t)

	rows := [][]string{
		{"Date", "Description", "Withdraw", "Deposit", "Balance"},
		{"15/03/2024", "ATM Withdrawal", "500.00", "", "4500.00"},
		{"", "", "", "", ""}, // blank rows are skipped
		{"16/03/2024", "Salary", "", "5000.00", "9500.00"},
	}

	mocks.banks.EXPECT().Ensure(gomock.Any(), "ANZ").Return(nil)
	mocks.transactions.EXPECT().
		CreateBatch(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, drafts []transaction.Draft) ([]*transaction.Transaction, error) {
			require.Equal(t, "ATM Withdrawal", drafts[0].Description)
			require.Equal(t, "Salary", drafts[1].Description)

			txs := make([]*transaction.Transaction, len(drafts))
			for i := range drafts {
				txs[i] = &transaction.Transaction{Description: drafts[i].Description}
			}
			return txs, nil
		})

	result, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:       rows,
		Bank:       "ANZ",
		DateFormat: importer.FormatDDMMYYYY,
	})
	require.NoError(t, err)

	assert.Equal(t, "standard", result.ParserID)
	assert.Len(t, result.Imported, 2)
}

func TestImport_OneBadRowRejectsWholeFile(t *testing.T) {
	svc, _ := newPipeline(t)

	rows := [][]string{
		{"Date", "Description", "Withdraw", "Deposit", "Balance"},
		{"15/03/2024", "Good", "10.00", "", "100.00"},
		{"99/99/2024", "Bad date", "10.00", "", "90.00"},
		{"17/03/2024", "Also good", "10.00", "", "80.00"},
	}

	// Neither Ensure nor CreateBatch may be called: nothing is written.
	_, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:       rows,
		Bank:       "ANZ",
		DateFormat: importer.FormatDDMMYYYY,
	})
	require.Error(t, err)

	var importErrs importer.ImportErrors
	require.ErrorAs(t, err, &importErrs)
	require.Len(t, importErrs, 1)

	assert.Equal(t, 3, importErrs[0].Row)
	assert.Contains(t, importErrs[0].Error(), "Row 3:")
	assert.Contains(t, importErrs[0].Error(), "99/99/2024")
}

func TestImport_CollectsEveryRowError(t *testing.T) {
	svc, _ := newPipeline(t)

	rows := [][]string{
		{"Date", "Description", "Withdraw", "Deposit", "Balance"},
		{"99/99/2024", "Bad date", "10.00", "", "90.00"},
		{"15/03/2024", "No amounts", "", "", "90.00"},
	}

	_, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:       rows,
		Bank:       "ANZ",
		DateFormat: importer.FormatDDMMYYYY,
	})

	var importErrs importer.ImportErrors
	require.ErrorAs(t, err, &importErrs)
	require.Len(t, importErrs, 2)

	assert.Equal(t, 2, importErrs[0].Row)
	assert.Equal(t, 3, importErrs[1].Row)
}

func TestImport_EmptyInput(t *testing.T) {
	svc, _ := newPipeline(t)

	_, err := svc.Import(context.Background(), importer.ImportParams{
		Bank:       "ANZ",
		DateFormat: importer.FormatDDMMYYYY,
	})
	assert.ErrorIs(t, err, importer.ErrEmptyInput)
}

func TestImport_AllRowsBlank(t *testing.T) {
	svc, _ := newPipeline(t)

	rows := [][]string{
		{"Date", "Description", "Withdraw", "Deposit", "Balance"},
		{"", "", "", "", ""},
		{"  ", "", "", "", ""},
	}

	_, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:       rows,
		Bank:       "ANZ",
		DateFormat: importer.FormatDDMMYYYY,
	})
	assert.ErrorIs(t, err, importer.ErrNoValidRows)
}

func TestImport_InvalidDateFormat(t *testing.T) {
	svc, _ := newPipeline(t)

	_, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:       [][]string{{"Date"}},
		Bank:       "ANZ",
		DateFormat: "DD.MM.YYYY",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported date format")
}

func TestImport_UnknownParser(t *testing.T) {
	svc, _ := newPipeline(t)

	_, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:       [][]string{{"Date"}},
		Bank:       "ANZ",
		ParserID:   "ofx",
		DateFormat: importer.FormatDDMMYYYY,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parser")
}

func TestImport_MissingMappings(t *testing.T) {
	svc, _ := newPipeline(t)

	rows := [][]string{
		{"Foo", "Bar"},
		{"15/03/2024", "x"},
	}

	_, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:       rows,
		Bank:       "ANZ",
		ParserID:   "standard",
		DateFormat: importer.FormatDDMMYYYY,
	})
	require.Error(t, err)

	var missing *importer.MissingMappingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"date", "description", "balance"}, missing.Fields)
}

func TestImport_ExplicitMappingOverridesDetection(t *testing.T) {
	svc, mocks := newPipeline(t)

	// Headers are in a foreign language the keyword tables do not know.
	rows := [][]string{
		{"Fecha", "Concepto", "Cargo", "Abono", "Saldo"},
		{"15/03/2024", "Compra", "25.00", "", "975.00"},
	}

	mocks.banks.EXPECT().Ensure(gomock.Any(), "BBVA").Return(nil)
	mocks.transactions.EXPECT().
		CreateBatch(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, drafts []transaction.Draft) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{{Description: drafts[0].Description}}, nil
		})

	result, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:     rows,
		Bank:     "BBVA",
		ParserID: "standard",
		Mapping: importer.Mapping{
			"date":        0,
			"description": 1,
			"withdraw":    2,
			"deposit":     3,
			"balance":     4,
		},
		DateFormat: importer.FormatDDMMYYYY,
	})
	require.NoError(t, err)
	assert.Len(t, result.Imported, 1)
}

func TestImport_StorageFailure(t *testing.T) {
	svc, mocks := newPipeline(t)

	rows := [][]string{
		{"Date", "Description", "Withdraw", "Deposit", "Balance"},
		{"15/03/2024", "Groceries", "50.00", "", "950.00"},
	}

	mocks.banks.EXPECT().Ensure(gomock.Any(), "ANZ").Return(nil)
	mocks.transactions.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:       rows,
		Bank:       "ANZ",
		DateFormat: importer.FormatDDMMYYYY,
	})
	assert.ErrorIs(t, err, importer.ErrStorageFailure)
}

func TestImport_BankEnsureFailure(t *testing.T) {
	svc, mocks := newPipeline(t)

	rows := [][]string{
		{"Date", "Description", "Withdraw", "Deposit", "Balance"},
		{"15/03/2024", "Groceries", "50.00", "", "950.00"},
	}

	mocks.banks.EXPECT().Ensure(gomock.Any(), "ANZ").Return(errors.New("db down"))

	_, err := svc.Import(context.Background(), importer.ImportParams{
		Rows:       rows,
		Bank:       "ANZ",
		DateFormat: importer.FormatDDMMYYYY,
	})
	assert.ErrorIs(t, err, importer.ErrStorageFailure)
}

func TestPreview(t *testing.T) {
	rows := [][]string{
		{" Date ", "Description", "Amount", "CR/DR", "Balance"},
		{"15/03/2024", "ATM Withdrawal", "500.00", "DR", "4500.00"},
		{"16/03/2024", "Salary", "5000.00", "CR", "9500.00"},
		{"17/03/2024", "Rent", "1500.00", "DR", "8000.00"},
		{"18/03/2024", "Coffee", "4.50", "DR", "7995.50"},
	}

	preview, err := importer.Preview(rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Amount", "CR/DR", "Balance"}, preview.Headers)
	assert.Len(t, preview.SampleRows, 3)
	assert.Equal(t, "credit-debit", preview.ParserID)
	assert.Equal(t, "Credit/Debit Format", preview.ParserName)
	assert.Equal(t, 3, preview.Mapping["type"])
	assert.Len(t, preview.Options, 2)
}

func TestPreview_Empty(t *testing.T) {
	_, err := importer.Preview(nil)
	assert.ErrorIs(t, err, importer.ErrEmptyInput)
}
