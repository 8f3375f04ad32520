package budget

import (
	"time"

	"github.com/google/uuid"

	"github.com/adityarp/duit/internal/budget"
)

type budgetResponse struct {
	ID         uuid.UUID         `json:"id"`
	CategoryID uuid.UUID         `json:"category_id"`
	Category   *categoryResponse `json:"category,omitempty"`
	Amount     int64             `json:"amount"`
	Period     budget.Period     `json:"period"`
	StartDate  string            `json:"start_date"`
	EndDate    string            `json:"end_date"`
	CreatedAt  time.Time         `json:"created_at"`
}

type categoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color,omitempty"`
}

type budgetWithProgressResponse struct {
	budgetResponse

	Spent      int64         `json:"spent"`
	Percentage float64       `json:"percentage"`
	Remaining  int64         `json:"remaining"`
	Status     budget.Status `json:"status"`
}

func toResponse(b *budget.Budget) budgetResponse {
	resp := budgetResponse{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Period:     b.Period,
		StartDate:  b.StartDate.Format(time.DateOnly),
		EndDate:    b.EndDate.Format(time.DateOnly),
		CreatedAt:  b.CreatedAt,
	}

	if b.Category != nil {
		resp.Category = &categoryResponse{
			ID:    b.Category.ID,
			Name:  b.Category.Name,
			Color: b.Category.Color,
		}
	}

	return resp
}

func toProgressResponse(wp budget.WithProgress) budgetWithProgressResponse {
	return budgetWithProgressResponse{
		budgetResponse: toResponse(wp.Budget),
		Spent:          wp.Progress.Spent,
		Percentage:     wp.Progress.Percentage,
		Remaining:      wp.Progress.Remaining,
		Status:         wp.Progress.Status,
	}
}
