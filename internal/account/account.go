package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("account not found")

// Account is a named balance-holding entity owned by a user.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      string
	Balance   int64 // Balance in minor units (cents)
	Currency  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
