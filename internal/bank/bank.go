// Package bank manages the banks that scope imported transactions. Banks are
// created implicitly on import and explicitly through the API, and cannot be
// deleted while transactions still reference them.
package bank

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("bank not found")

	// ErrInUse blocks deletion while transactions still reference the bank.
	ErrInUse = errors.New("bank has transactions and cannot be deleted")
)

type Bank struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
