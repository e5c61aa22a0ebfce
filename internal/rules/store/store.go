package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgerly/internal/rules"
	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateRule(ctx context.Context, rule *rules.Rule) error {
	query := `
		INSERT INTO rules (description_match, category_id, transaction_type, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rule.DescriptionMatch,
		rule.CategoryID,
		rule.TransactionType,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}

	return nil
}

func (s *Store) UpdateRule(ctx context.Context, rule *rules.Rule) error {
	query := `
		UPDATE rules
		SET description_match = $1, category_id = $2, transaction_type = $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := s.db.ExecContext(ctx, query,
		rule.DescriptionMatch,
		rule.CategoryID,
		rule.TransactionType,
		rule.ID,
	)
	if err != nil {
		return fmt.Errorf("updating rule: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating rule: %w", err)
	}

	if affected == 0 {
		return rules.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteRule(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}

	if affected == 0 {
		return rules.ErrNotFound
	}

	return nil
}

func (s *Store) GetRule(ctx context.Context, id uuid.UUID) (*rules.Rule, error) {
	query := `
		SELECT id, description_match, category_id, transaction_type, created_at, updated_at
		FROM rules
		WHERE id = $1
	`

	var rule rules.Rule

	var txType string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&rule.ID, &rule.DescriptionMatch, &rule.CategoryID, &txType, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, rules.ErrNotFound
		}

		return nil, fmt.Errorf("getting rule: %w", err)
	}

	rule.TransactionType = transaction.Type(txType)

	return &rule, nil
}

// ListRules returns rules in creation order, which is the order they are
// applied in.
func (s *Store) ListRules(ctx context.Context) ([]*rules.Rule, error) {
	query := `
		SELECT id, description_match, category_id, transaction_type, created_at, updated_at
		FROM rules
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	defer rows.Close()

	var list []*rules.Rule

	for rows.Next() {
		var rule rules.Rule

		var txType string

		if err := rows.Scan(
			&rule.ID, &rule.DescriptionMatch, &rule.CategoryID, &txType, &rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}

		rule.TransactionType = transaction.Type(txType)

		list = append(list, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rule rows: %w", err)
	}

	return list, nil
}

type runTx struct {
	tx *sql.Tx
}

func (s *Store) BeginRun(ctx context.Context) (rules.RunTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning rule run tx: %w", err)
	}

	return &runTx{tx: dbTx}, nil
}

func (r *runTx) Commit() error   { return r.tx.Commit() }
func (r *runTx) Rollback() error { return r.tx.Rollback() }

// ApplyRule updates every transaction in scope whose description contains
// the rule's match substring (case-insensitive) and that passes the rule's
// type filter. With overwrite off, only unclassified transactions change.
func (r *runTx) ApplyRule(ctx context.Context, rule *rules.Rule, scope rules.Scope, overwrite bool) (int64, error) {
	query := `
		UPDATE transactions
		SET category_id = $1, updated_at = NOW()
		WHERE bank_name = $2 AND year = $3 AND month = $4
		AND description ILIKE '%' || $5 || '%'`

	switch rule.TransactionType {
	case transaction.TypeWithdraw:
		query += " AND withdraw IS NOT NULL AND withdraw > 0"
	case transaction.TypeDeposit:
		query += " AND deposit IS NOT NULL AND deposit > 0"
	}

	if !overwrite {
		query += " AND category_id IS NULL"
	}

	res, err := r.tx.ExecContext(ctx, query,
		rule.CategoryID,
		scope.Bank,
		scope.Year,
		scope.Month,
		rule.DescriptionMatch,
	)
	if err != nil {
		return 0, fmt.Errorf("applying rule: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("applying rule: %w", err)
	}

	return affected, nil
}
