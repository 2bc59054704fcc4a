package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the lifecycle state of a payable.
type BillStatus string

const (
	BillPending   BillStatus = "pendente"
	BillPaid      BillStatus = "pago"
	BillOverdue   BillStatus = "atrasado"
	BillCancelled BillStatus = "cancelado"
)

// IsValid reports whether s is a known bill status.
func (s BillStatus) IsValid() bool {
	switch s {
	case BillPending, BillPaid, BillOverdue, BillCancelled:
		return true
	}
	return false
}

// BillKind tells generic bills apart from payroll entries.
type BillKind string

const (
	BillGeneric BillKind = "conta"
	BillSalary  BillKind = "salario"
)

// SalaryDetails is only present on bills of kind BillSalary.
type SalaryDetails struct {
	EmployeeName string
	BaseSalary   decimal.Decimal
	Bonuses      decimal.Decimal
	Deductions   decimal.Decimal
}

// NetSalary is base + bonuses - deductions, rounded to cents.
func (s SalaryDetails) NetSalary() decimal.Decimal {
	return s.BaseSalary.Add(s.Bonuses).Sub(s.Deductions).Round(2)
}

// Bill is a payable: a utility, supplier invoice, rent or salary.
type Bill struct {
	ID           string
	Description  string
	Category     string
	Kind         BillKind
	Amount       decimal.Decimal
	DueDate      time.Time
	PaymentDate  *time.Time
	Status       BillStatus
	Recurring    bool
	ParentBillID *string
	Salary       *SalaryDetails
	Notes        string
	AuditFields
}

// IsOpen is true for bills that still expect a payment.
func (b Bill) IsOpen() bool {
	return b.Status == BillPending || b.Status == BillOverdue
}
