// Package category holds the classification targets rules and manual edits
// assign to transactions. A fixed set ships with the schema; user-created
// ones carry the IsCustom flag.
package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("category not found")

type Category struct {
	ID        uuid.UUID
	Name      string
	IsCustom  bool
	CreatedAt time.Time
}
