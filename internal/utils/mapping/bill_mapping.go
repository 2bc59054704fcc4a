package mapping

import (
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/models"
)

// ToModelBill flattens the salary variant into nullable columns.
func ToModelBill(d domain.Bill) models.Bill {
	m := models.Bill{
		BillID:       d.ID,
		Description:  d.Description,
		Category:     d.Category,
		BillKind:     string(d.Kind),
		Amount:       d.Amount,
		PaymentDate:  d.PaymentDate,
		Status:       string(d.Status),
		Recurring:    d.Recurring,
		ParentBillID: nullStringPtr(d.ParentBillID),
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if !d.DueDate.IsZero() {
		due := d.DueDate
		m.DueDate = &due
	}
	if d.Salary != nil {
		m.EmployeeName = nullString(d.Salary.EmployeeName)
		m.BaseSalary = nullDecimal(&d.Salary.BaseSalary)
		m.Bonuses = nullDecimal(&d.Salary.Bonuses)
		m.Deductions = nullDecimal(&d.Salary.Deductions)
	}
	return m
}

// ToDomainBill resolves the bill variant from bill_kind. A NULL due date maps
// to the zero time, which the overdue sweep reports as skipped.
func ToDomainBill(m models.Bill) domain.Bill {
	d := domain.Bill{
		ID:           m.BillID,
		Description:  m.Description,
		Category:     m.Category,
		Kind:         domain.BillKind(m.BillKind),
		Amount:       m.Amount,
		PaymentDate:  m.PaymentDate,
		Status:       domain.BillStatus(m.Status),
		Recurring:    m.Recurring,
		ParentBillID: stringPtr(m.ParentBillID),
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.DueDate != nil {
		d.DueDate = *m.DueDate
	}
	if d.Kind == domain.BillSalary {
		d.Salary = &domain.SalaryDetails{
			EmployeeName: m.EmployeeName.String,
			BaseSalary:   m.BaseSalary.Decimal,
			Bonuses:      m.Bonuses.Decimal,
			Deductions:   m.Deductions.Decimal,
		}
	}
	return d
}

func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}
