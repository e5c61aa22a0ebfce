package importer

import (
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

// Indicator cells accepted by the credit/debit layout, after trimming and
// upper-casing.
var (
	creditIndicators = []string{"CR", "CREDIT", "C", "CREDITED"}
	debitIndicators  = []string{"DR", "DEBIT", "D", "DEBITED"}
)

// creditDebitSpec handles layouts with a single Amount column and a CR/DR
// indicator. Debits land in Withdraw, credits in Deposit.
var creditDebitSpec = &Spec{
	ID:          "credit-debit",
	Name:        "Credit/Debit Format",
	Description: "Files with single Amount column and CR/DR indicator",
	Fields: []Field{
		{Key: "date", Label: "Date", Required: true, Layout: "col-md-6"},
		{Key: "description", Label: "Description", Required: true, Layout: "col-md-6"},
		{Key: "amount", Label: "Amount", Required: true, Layout: "col-md-4"},
		{Key: "type", Label: "Type (CR/DR)", Required: true, Layout: "col-md-4"},
		{Key: "balance", Label: "Balance", Required: true, Layout: "col-md-4"},
	},
	keywords: map[string][]string{
		"date":        {"date", "transaction date", "txn date", "posting date", "trans date", "value date"},
		"description": {"description", "desc", "particulars", "details", "narration", "remarks", "transaction details"},
		"amount":      {"amount", "transaction amount", "txn amount", "value"},
		"type":        {"type", "cr/dr", "crdr", "cr-dr", "credit/debit", "transaction type", "txn type"},
		"balance":     {"balance", "closing balance", "available balance", "running balance", "current balance"},
	},
	parseRow: parseCreditDebitRow,
}

func parseCreditDebitRow(row []string, cols Mapping, format DateFormat, bank string) (transaction.Draft, error) {
	rawDate := cellValue(row, cols, "date")

	date, ok, err := ParseDate(rawDate, format)
	if err != nil {
		return transaction.Draft{}, err
	}

	if !ok {
		return transaction.Draft{}, &InvalidDateError{Raw: rawDate, Expected: format.Display()}
	}

	amount, err := ParseAmount(cellValue(row, cols, "amount"))
	if err != nil {
		return transaction.Draft{}, err
	}

	balance, err := ParseAmount(cellValue(row, cols, "balance"))
	if err != nil {
		return transaction.Draft{}, err
	}

	if balance == nil {
		return transaction.Draft{}, errBalanceRequired
	}

	if amount == nil {
		return transaction.Draft{}, errAmountRequired
	}

	indicator := strings.ToUpper(strings.TrimSpace(cellValue(row, cols, "type")))

	isCredit := slices.Contains(creditIndicators, indicator)
	isDebit := slices.Contains(debitIndicators, indicator)

	if !isCredit && !isDebit {
		return transaction.Draft{}, &TypeIndicatorError{Raw: indicator}
	}

	draft := transaction.Draft{
		BankName:    bank,
		Date:        date,
		Description: strings.TrimSpace(cellValue(row, cols, "description")),
		Balance:     *balance,
		Year:        date.Year(),
		Month:       int(date.Month()),
	}

	// Exactly one side is populated, by construction.
	if isDebit {
		draft.Withdraw = amount
	} else {
		draft.Deposit = amount
	}

	return draft, nil
}
