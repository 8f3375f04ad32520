package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind represents the kind of transaction.
type Kind string

const (
	KindIncome   Kind = "income"
	KindExpense  Kind = "expense"
	KindTransfer Kind = "transfer"
)

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrInvalidAmount = errors.New("amount must not be negative")
	ErrMissingFields = errors.New("missing required fields for transaction kind")
)

// Transaction represents a single money movement. The kind determines which
// references are meaningful: income and expense use AccountID and optionally
// CategoryID, transfers use the from/to account pair and carry no category.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Kind          Kind
	Amount        int64 // Amount in minor units (cents)
	Description   string
	Date          time.Time
	CategoryID    *uuid.UUID
	Category      *CategoryInfo // Loaded via JOIN; nil when the category no longer exists
	AccountID     *uuid.UUID
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// CategoryInfo is the slice of category data carried along with a
// transaction row.
type CategoryInfo struct {
	ID    uuid.UUID
	Name  string
	Color string
}
