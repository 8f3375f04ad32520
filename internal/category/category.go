package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind tags a category as grouping income or expense transactions.
// It is fixed at creation.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

var ErrNotFound = errors.New("category not found")

// Category is a named, colored grouping for transactions and budgets.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Kind      Kind
	Color     string
	Icon      string
	CreatedAt time.Time
}
