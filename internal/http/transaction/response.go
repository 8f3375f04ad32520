package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/adityarp/duit/internal/transaction"
)

type transactionResponse struct {
	ID            uuid.UUID         `json:"id"`
	Kind          transaction.Kind  `json:"type"`
	Amount        int64             `json:"amount"`
	Description   string            `json:"description,omitempty"`
	Date          time.Time         `json:"date"`
	CategoryID    *uuid.UUID        `json:"category_id,omitempty"`
	Category      *categoryResponse `json:"category,omitempty"`
	AccountID     *uuid.UUID        `json:"account_id,omitempty"`
	FromAccountID *uuid.UUID        `json:"from_account_id,omitempty"`
	ToAccountID   *uuid.UUID        `json:"to_account_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     *time.Time        `json:"updated_at,omitempty"`
}

type categoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:            tx.ID,
		Kind:          tx.Kind,
		Amount:        tx.Amount,
		Description:   tx.Description,
		Date:          tx.Date,
		CategoryID:    tx.CategoryID,
		AccountID:     tx.AccountID,
		FromAccountID: tx.FromAccountID,
		ToAccountID:   tx.ToAccountID,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}

	if tx.Category != nil {
		resp.Category = &categoryResponse{
			ID:    tx.Category.ID,
			Name:  tx.Category.Name,
			Color: tx.Category.Color,
		}
	}

	return resp
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
