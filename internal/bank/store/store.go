package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgerly/internal/bank"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) EnsureBank(ctx context.Context, name string) error {
	query := `
		INSERT INTO banks (name, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (name) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("ensuring bank: %w", err)
	}

	return nil
}

func (s *Store) ListBanks(ctx context.Context) ([]*bank.Bank, error) {
	query := `
		SELECT id, name, created_at
		FROM banks
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing banks: %w", err)
	}
	defer rows.Close()

	var banks []*bank.Bank

	for rows.Next() {
		var b bank.Bank

		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bank: %w", err)
		}

		banks = append(banks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank rows: %w", err)
	}

	return banks, nil
}

func (s *Store) GetBank(ctx context.Context, id uuid.UUID) (*bank.Bank, error) {
	var b bank.Bank

	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM banks WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bank.ErrNotFound
		}

		return nil, fmt.Errorf("getting bank: %w", err)
	}

	return &b, nil
}

func (s *Store) DeleteBank(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM banks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting bank: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting bank: %w", err)
	}

	if affected == 0 {
		return bank.ErrNotFound
	}

	return nil
}

func (s *Store) CountTransactions(ctx context.Context, name string) (int64, error) {
	var count int64

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE bank_name = $1`, name,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}

	return count, nil
}
