package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, bank_name, date, description, withdraw, deposit, balance,
	reference_number, year, month, category_id, notes, created_at, updated_at
`

// scanTransaction reads a transaction row in selectTransactionColumns order.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var withdraw, deposit decimal.NullDecimal

	var reference, notes sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.BankName, &tx.Date, &tx.Description, &withdraw, &deposit, &tx.Balance,
		&reference, &tx.Year, &tx.Month, &tx.CategoryID, &notes,
		&tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if withdraw.Valid {
		tx.Withdraw = &withdraw.Decimal
	}

	if deposit.Valid {
		tx.Deposit = &deposit.Decimal
	}

	if reference.Valid {
		tx.ReferenceNumber = &reference.String
	}

	if notes.Valid {
		tx.Notes = &notes.String
	}

	return &tx, nil
}

// InsertBatch writes all drafts inside one database transaction. Any insert
// failure rolls back the whole batch.
func (s *Store) InsertBatch(ctx context.Context, drafts []transaction.Draft) ([]*transaction.Transaction, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (bank_name, date, description, withdraw, deposit, balance, year, month, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	txs := make([]*transaction.Transaction, 0, len(drafts))

	for _, d := range drafts {
		tx := &transaction.Transaction{
			BankName:    d.BankName,
			Date:        d.Date,
			Description: d.Description,
			Withdraw:    d.Withdraw,
			Deposit:     d.Deposit,
			Balance:     d.Balance,
			Year:        d.Year,
			Month:       d.Month,
		}

		err := dbTx.QueryRowContext(ctx, query,
			d.BankName,
			d.Date,
			d.Description,
			nullDecimal(d.Withdraw),
			nullDecimal(d.Deposit),
			d.Balance,
			d.Year,
			d.Month,
		).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("inserting transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import tx: %w", err)
	}

	return txs, nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Bank != nil {
		query += fmt.Sprintf(" AND bank_name = $%d", argIdx)

		args = append(args, *filter.Bank)
		argIdx++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(" AND year = $%d", argIdx)

		args = append(args, *filter.Year)
		argIdx++
	}

	if filter.Month != nil {
		query += fmt.Sprintf(" AND month = $%d", argIdx)

		args = append(args, *filter.Month)
		argIdx++
	}

	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND category_id = $%d", argIdx)

		args = append(args, *filter.CategoryID)
		argIdx++
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

// UpdateClassification touches only category_id and notes. The imported bank
// fields are deliberately absent from the statement.
func (s *Store) UpdateClassification(ctx context.Context, id uuid.UUID, params transaction.ClassificationParams) error {
	query := `
		UPDATE transactions
		SET category_id = $1, notes = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, params.CategoryID, params.Notes, id)
	if err != nil {
		return fmt.Errorf("updating classification: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating classification: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
