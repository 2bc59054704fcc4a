package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a row of the bills table. Salary columns are only populated for
// bill_kind = 'salario'.
type Bill struct {
	BillID       string              `db:"bill_id"`
	Description  string              `db:"description"`
	Category     string              `db:"category"`
	BillKind     string              `db:"bill_kind"`
	Amount       decimal.Decimal     `db:"amount"`
	DueDate      *time.Time          `db:"due_date"`
	PaymentDate  *time.Time          `db:"payment_date"`
	Status       string              `db:"status"`
	Recurring    bool                `db:"recurring"`
	ParentBillID sql.NullString      `db:"parent_bill_id"`
	EmployeeName sql.NullString      `db:"employee_name"`
	BaseSalary   decimal.NullDecimal `db:"base_salary"`
	Bonuses      decimal.NullDecimal `db:"bonuses"`
	Deductions   decimal.NullDecimal `db:"deductions"`
	Notes        string              `db:"notes"`
	AuditFields
}
