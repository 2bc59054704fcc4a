package accounting

import (
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PlanInstallments splits what is left after the down payment into count
// monthly installments starting at firstDueDate.
//
// Every installment but the last is remaining/count rounded to cents; the
// last one absorbs the rounding difference so that the down payment plus all
// installments add up to total exactly. A down payment larger than the total
// leaves nothing to finance and yields zero-valued installments.
func PlanInstallments(total, downPayment decimal.Decimal, count int, firstDueDate time.Time) ([]domain.InstallmentLine, error) {
	if count < 1 {
		return nil, &InvalidInstallmentCountError{Count: count}
	}

	remaining := total.Sub(downPayment)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	n := decimal.NewFromInt(int64(count))
	others := decimal.NewFromInt(int64(count - 1))
	per := RoundCents(remaining.Div(n))
	last := remaining.Sub(per.Mul(others))
	if last.IsNegative() {
		// rounding up a fraction of a cent over many installments overshoots
		per = remaining.Div(n).RoundDown(2)
		last = remaining.Sub(per.Mul(others))
	}

	lines := make([]domain.InstallmentLine, count)
	for i := 0; i < count; i++ {
		amount := per
		if i == count-1 {
			amount = last
		}
		lines[i] = domain.InstallmentLine{
			Index:   i + 1,
			DueDate: AddMonths(firstDueDate, i),
			Amount:  amount,
		}
	}
	return lines, nil
}
