package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Profile holds per-user preferences. The id is the user id issued by the
// identity provider.
type Profile struct {
	ID          uuid.UUID
	DisplayName string
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
