package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transaction not found")

// Type selects which side of the ledger an operation targets.
type Type string

const (
	TypeWithdraw Type = "withdraw"
	TypeDeposit  Type = "deposit"
	TypeBoth     Type = "both"
)

func (t Type) Valid() bool {
	switch t {
	case TypeWithdraw, TypeDeposit, TypeBoth:
		return true
	}

	return false
}

// Transaction is one bank-ledger line. The bank fields (BankName through
// Month) are written once at import and never modified afterwards; only
// CategoryID and Notes are mutable.
type Transaction struct {
	ID              uuid.UUID
	BankName        string
	Date            time.Time
	Description     string
	Withdraw        *decimal.Decimal
	Deposit         *decimal.Decimal
	Balance         decimal.Decimal
	ReferenceNumber *string
	Year            int
	Month           int
	CategoryID      *uuid.UUID
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Draft is a fully normalized transaction produced by the import parsers,
// awaiting insertion.
type Draft struct {
	BankName    string
	Date        time.Time
	Description string
	Withdraw    *decimal.Decimal
	Deposit     *decimal.Decimal
	Balance     decimal.Decimal
	Year        int
	Month       int
}
