package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Period is the cadence a budget cap applies to.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

var (
	ErrNotFound      = errors.New("budget not found")
	ErrInvalidAmount = errors.New("amount must not be negative")
)

// Budget caps spending for a category between StartDate and EndDate
// (both inclusive).
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Category   *CategoryInfo // Loaded via JOIN
	Amount     int64         // Cap in minor units (cents)
	Period     Period
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

// CategoryInfo is the slice of category data carried along with a budget row.
type CategoryInfo struct {
	ID    uuid.UUID
	Name  string
	Color string
}
