package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

type transactionResponse struct {
	ID              uuid.UUID        `json:"id"`
	BankName        string           `json:"bank_name"`
	Date            string           `json:"date"`
	Description     string           `json:"description"`
	Withdraw        *decimal.Decimal `json:"withdraw"`
	Deposit         *decimal.Decimal `json:"deposit"`
	Balance         decimal.Decimal  `json:"balance"`
	ReferenceNumber *string          `json:"reference_number,omitempty"`
	Year            int              `json:"year"`
	Month           int              `json:"month"`
	CategoryID      *uuid.UUID       `json:"category_id"`
	Notes           *string          `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:              tx.ID,
		BankName:        tx.BankName,
		Date:            tx.Date.Format(time.DateOnly),
		Description:     tx.Description,
		Withdraw:        tx.Withdraw,
		Deposit:         tx.Deposit,
		Balance:         tx.Balance,
		ReferenceNumber: tx.ReferenceNumber,
		Year:            tx.Year,
		Month:           tx.Month,
		CategoryID:      tx.CategoryID,
		Notes:           tx.Notes,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
