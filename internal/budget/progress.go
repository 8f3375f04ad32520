package budget

// Status classifies how far along a budget is.
type Status string

const (
	StatusOnTrack    Status = "on-track"
	StatusNearLimit  Status = "near-limit"
	StatusOverBudget Status = "over-budget"
)

// Progress holds the derived figures for a budget. Spent and Remaining are
// in minor units; Percentage is clamped to [0, 100].
type Progress struct {
	Spent      int64
	Percentage float64
	Remaining  int64
	Status     Status
}

// Evaluate derives progress from a budget cap and the spend against it.
// The percentage is clamped at 100 while Remaining goes negative to signal
// the overage.
func Evaluate(amount, spent int64) Progress {
	var pct float64
	if amount > 0 {
		pct = float64(spent) / float64(amount) * 100
		if pct > 100 {
			pct = 100
		}
	}

	status := StatusOnTrack

	switch {
	case pct >= 100:
		status = StatusOverBudget
	case pct >= 80:
		status = StatusNearLimit
	}

	return Progress{
		Spent:      spent,
		Percentage: pct,
		Remaining:  amount - spent,
		Status:     status,
	}
}
