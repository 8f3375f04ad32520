package analytics

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/adityarp/duit/internal/transaction"
)

// CategoryExpenses computes per-category expense totals and their share of
// the window's total spend, over a window of whole calendar months ending
// today. Transactions whose category reference no longer resolves cannot be
// attributed and are skipped here; kind-level sums elsewhere still count
// them. Entries are ordered by amount descending, name ascending on ties.
func (s *Service) CategoryExpenses(ctx context.Context, userID uuid.UUID, months int) ([]CategoryExpense, error) {
	if months < 1 {
		return nil, fmt.Errorf("window must cover at least one month, got %d", months)
	}

	now := s.now()

	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)
	windowEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1)

	txs, err := s.transactions.ListByDateRange(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("listing transactions for breakdown window: %w", err)
	}

	type group struct {
		name   string
		color  string
		amount int64
	}

	groups := make(map[uuid.UUID]*group)

	var total int64

	for _, tx := range txs {
		if tx.Kind != transaction.KindExpense {
			continue
		}

		if tx.Category == nil {
			// Dangling or absent category reference: the amount still counts
			// in kind-level sums but cannot be attributed here.
			continue
		}

		g, ok := groups[tx.Category.ID]
		if !ok {
			g = &group{name: tx.Category.Name, color: tx.Category.Color}
			groups[tx.Category.ID] = g
		}

		g.amount += tx.Amount
		total += tx.Amount
	}

	entries := make([]CategoryExpense, 0, len(groups))

	for id, g := range groups {
		color := g.color
		if color == "" {
			color = fallbackColor(id)
		}

		var pct float64
		if total > 0 {
			pct = float64(g.amount) / float64(total) * 100
		}

		entries = append(entries, CategoryExpense{
			CategoryID: id,
			Category:   g.name,
			Amount:     g.amount,
			Percentage: pct,
			Color:      color,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount != entries[j].Amount {
			return entries[i].Amount > entries[j].Amount
		}

		return entries[i].Category < entries[j].Category
	})

	return entries, nil
}

// fallbackColor derives a stable display color from the category id, so
// categories without a stored color render the same hue on every call.
func fallbackColor(id uuid.UUID) string {
	h := fnv.New32a()
	h.Write(id[:])

	hue := h.Sum32() % 360

	return fmt.Sprintf("hsl(%d, 70%%, 50%%)", hue)
}
