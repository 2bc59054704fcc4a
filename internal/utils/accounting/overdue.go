package accounting

import (
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
)

// SweepResult is the outcome of an overdue sweep.
type SweepResult struct {
	// AsOf is the calendar date the sweep compared against.
	AsOf time.Time
	// Bills has the same length and order as the input.
	Bills []domain.Bill
	// Changed holds the ids that moved from pending to overdue.
	Changed []string
	// Skipped holds the ids of pending bills without a usable due date.
	Skipped []string
}

// SweepOverdue marks every pending bill whose due date is strictly before
// asOf (compared by calendar date) as overdue. The input slice is not
// modified. A bill due on asOf is not overdue yet.
func SweepOverdue(records []domain.Bill, asOf time.Time) SweepResult {
	cutoff := DateOnly(asOf)
	res := SweepResult{AsOf: cutoff, Bills: make([]domain.Bill, len(records))}
	copy(res.Bills, records)

	for i := range res.Bills {
		b := &res.Bills[i]
		if b.Status != domain.BillPending {
			continue
		}
		if b.DueDate.IsZero() {
			res.Skipped = append(res.Skipped, b.ID)
			continue
		}
		due := CalendarDate(b.DueDate, cutoff.Location())
		if due.Before(cutoff) {
			b.Status = domain.BillOverdue
			res.Changed = append(res.Changed, b.ID)
		}
	}
	return res
}
