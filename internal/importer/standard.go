package importer

import (
	"strings"

	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

// standardSpec handles layouts with separate Withdraw and Deposit columns.
var standardSpec = &Spec{
	ID:          "standard",
	Name:        "Standard Format",
	Description: "Files with separate Withdraw and Deposit columns (standard format)",
	Fields: []Field{
		{Key: "date", Label: "Date", Required: true, Layout: "col-md-6"},
		{Key: "description", Label: "Description", Required: true, Layout: "col-md-6"},
		{Key: "withdraw", Label: "Withdraw", Required: false, Layout: "col-md-4"},
		{Key: "deposit", Label: "Deposit", Required: false, Layout: "col-md-4"},
		{Key: "balance", Label: "Balance", Required: true, Layout: "col-md-4"},
	},
	keywords: map[string][]string{
		"date":        {"date", "transaction date", "txn date", "posting date", "trans date", "value date"},
		"description": {"description", "desc", "particulars", "details", "narration", "remarks", "transaction details"},
		"withdraw":    {"withdraw", "withdrawal", "debit", "dr", "amount debited", "debit amount", "paid out"},
		"deposit":     {"deposit", "credit", "cr", "amount credited", "credit amount", "paid in"},
		"balance":     {"balance", "closing balance", "available balance", "running balance", "current balance"},
	},
	parseRow: parseStandardRow,
}

func parseStandardRow(row []string, cols Mapping, format DateFormat, bank string) (transaction.Draft, error) {
	rawDate := cellValue(row, cols, "date")

	date, ok, err := ParseDate(rawDate, format)
	if err != nil {
		return transaction.Draft{}, err
	}

	if !ok {
		// An empty date cell in a non-blank row is still a format error.
		return transaction.Draft{}, &InvalidDateError{Raw: rawDate, Expected: format.Display()}
	}

	withdraw, err := ParseAmount(cellValue(row, cols, "withdraw"))
	if err != nil {
		return transaction.Draft{}, err
	}

	deposit, err := ParseAmount(cellValue(row, cols, "deposit"))
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

	if withdraw == nil && deposit == nil {
		return transaction.Draft{}, errNoAmountColumns
	}

	return transaction.Draft{
		BankName:    bank,
		Date:        date,
		Description: strings.TrimSpace(cellValue(row, cols, "description")),
		Withdraw:    withdraw,
		Deposit:     deposit,
		Balance:     *balance,
		Year:        date.Year(),
		Month:       int(date.Month()),
	}, nil
}
