package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeriveSettlementTransactions turns the payment terms of a completed service
// order into the receivables that must be recorded for it. today becomes the
// Date of every record; newID is called once per record, except for the
// installment batch which draws a single base id and suffixes it with -P{n}.
//
// On error no records are returned.
func DeriveSettlementTransactions(s domain.ServiceOrderSettlement, today time.Time, newID IDGenerator) ([]domain.FinancialTransaction, error) {
	if s.TotalPrice.IsNegative() {
		return nil, &InvalidSettlementAmountError{OrderID: s.OrderID, Total: s.TotalPrice}
	}

	today = DateOnly(today)
	total := RoundCents(s.TotalPrice)

	switch {
	case s.PaymentMethod.SettlesImmediately():
		txn := newSettlementTransaction(s, today, newID())
		txn.Amount = total
		txn.Status = domain.TransactionPaid
		txn.PaymentDate = &today
		txn.Description = fmt.Sprintf("Payment for order %s - %s", s.OrderID, s.CustomerLabel)
		txn.Notes = fmt.Sprintf("Received via %s", s.PaymentMethod.Label())
		return []domain.FinancialTransaction{txn}, nil

	case s.PaymentMethod == domain.PaymentStoreCredit:
		return deriveStoreCredit(s, today, newID)

	default:
		due := DateOnly(s.CreatedAt)
		txn := newSettlementTransaction(s, today, newID())
		txn.Amount = total
		txn.Status = domain.TransactionPending
		txn.DueDate = &due
		txn.Description = fmt.Sprintf("Payment for order %s - %s", s.OrderID, s.CustomerLabel)
		if s.PaymentMethod.IsCard() {
			txn.Notes = fmt.Sprintf("Card payment (%s), awaiting settlement", s.PaymentMethod.Label())
		} else {
			txn.Notes = fmt.Sprintf("Payment by %s, awaiting confirmation", s.PaymentMethod.Label())
		}
		return []domain.FinancialTransaction{txn}, nil
	}
}

func deriveStoreCredit(s domain.ServiceOrderSettlement, today time.Time, newID IDGenerator) ([]domain.FinancialTransaction, error) {
	downPayment := decimal.Zero
	if s.DownPayment != nil {
		downPayment = RoundCents(*s.DownPayment)
	}
	hasSchedule := s.InstallmentCount != nil && s.FirstInstallmentDate != nil

	// plan before drawing any id so a bad count leaves newID untouched
	var lines []domain.InstallmentLine
	if hasSchedule {
		var err error
		lines, err = PlanInstallments(RoundCents(s.TotalPrice), downPayment, *s.InstallmentCount, DateOnly(*s.FirstInstallmentDate))
		if err != nil {
			return nil, err
		}
	}

	txns := make([]domain.FinancialTransaction, 0, len(lines)+1)

	if downPayment.IsPositive() {
		txn := newSettlementTransaction(s, today, newID())
		txn.Amount = downPayment
		txn.PaymentMethod = domain.PaymentCash
		txn.Status = domain.TransactionPaid
		txn.PaymentDate = &today
		txn.Description = fmt.Sprintf("Down payment for order %s", s.OrderID)
		txn.Notes = fmt.Sprintf("Down payment of store credit sale for %s", s.CustomerLabel)
		txns = append(txns, txn)
	}

	if len(lines) > 0 {
		baseID := newID()
		for _, line := range lines {
			due := line.DueDate
			txn := newSettlementTransaction(s, today, fmt.Sprintf("%s-P%d", baseID, line.Index))
			txn.Amount = line.Amount
			txn.Status = domain.TransactionPending
			txn.DueDate = &due
			txn.Description = fmt.Sprintf("Installment %d/%d for order %s", line.Index, len(lines), s.OrderID)
			txn.Notes = fmt.Sprintf("Store credit installment for %s", s.CustomerLabel)
			txns = append(txns, txn)
		}
	}

	return txns, nil
}

func newSettlementTransaction(s domain.ServiceOrderSettlement, today time.Time, id string) domain.FinancialTransaction {
	return domain.FinancialTransaction{
		ID:            id,
		Date:          today,
		Category:      domain.CategoryServices,
		Type:          domain.TransactionIncome,
		PaymentMethod: s.PaymentMethod,
		RelatedID:     s.OrderID,
	}
}
