package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrder is a row of the service_orders table.
type ServiceOrder struct {
	ServiceOrderID       string              `db:"service_order_id"`
	CustomerID           string              `db:"customer_id"`
	Bicycle              string              `db:"bicycle"`
	ProblemDescription   string              `db:"problem_description"`
	Status               string              `db:"status"`
	TotalPrice           decimal.Decimal     `db:"total_price"`
	PaymentMethod        sql.NullString      `db:"payment_method"`
	DownPayment          decimal.NullDecimal `db:"down_payment"`
	InstallmentCount     sql.NullInt32       `db:"installment_count"`
	FirstInstallmentDate *time.Time          `db:"first_installment_date"`
	CompletedAt          *time.Time          `db:"completed_at"`
	AuditFields
}
