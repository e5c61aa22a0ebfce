// Package rules classifies imported transactions in bulk. A rule assigns a
// category to every transaction in a bank/month scope whose description
// contains a substring, optionally restricted to one side of the ledger.
package rules

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

var (
	ErrNotFound = errors.New("rule not found")

	// ErrNoRules means an apply run was requested before any rule exists.
	ErrNoRules = errors.New("no rules found")
)

const maxMatchLength = 255

// Rule matches transactions by description substring. CreatedAt ordering is
// contractual: rules are always applied oldest first.
type Rule struct {
	ID               uuid.UUID
	DescriptionMatch string
	CategoryID       uuid.UUID
	TransactionType  transaction.Type
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// Params carries the user-editable fields of a rule.
type Params struct {
	DescriptionMatch string
	CategoryID       uuid.UUID
	TransactionType  transaction.Type
}

func (p Params) validate() error {
	if p.DescriptionMatch == "" {
		return errors.New("description match is required")
	}

	if len(p.DescriptionMatch) > maxMatchLength {
		return fmt.Errorf("description match cannot exceed %d characters", maxMatchLength)
	}

	if p.CategoryID == uuid.Nil {
		return errors.New("category is required")
	}

	if !p.TransactionType.Valid() {
		return errors.New("transaction type must be withdraw, deposit, or both")
	}

	return nil
}

// Scope selects the slice of the ledger a rule run operates on.
type Scope struct {
	Bank  string
	Year  int
	Month int
}
