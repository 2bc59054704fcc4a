package accounting

import (
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
)

// DuplicateBill creates the next occurrence of a recurring bill or salary.
// The copy is pending, unpaid, due on nextPeriodStart and points back to the
// original through ParentBillID. Everything else is carried over.
//
// Both dates are compared by calendar day, whatever their locations.
func DuplicateBill(original domain.Bill, nextPeriodStart time.Time, newID IDGenerator) (domain.Bill, error) {
	nextPeriodStart = DateOnly(nextPeriodStart)
	if !nextPeriodStart.After(CalendarDate(original.DueDate, nextPeriodStart.Location())) {
		return domain.Bill{}, &InvalidRecurrencePeriodError{
			BillID:          original.ID,
			DueDate:         original.DueDate.Format(dateLayout),
			NextPeriodStart: nextPeriodStart.Format(dateLayout),
		}
	}

	next := original
	next.ID = newID()
	next.Status = domain.BillPending
	next.PaymentDate = nil
	next.DueDate = nextPeriodStart
	parentID := original.ID
	next.ParentBillID = &parentID
	if original.Salary != nil {
		salary := *original.Salary
		next.Salary = &salary
	}
	next.AuditFields = domain.AuditFields{}
	return next, nil
}
