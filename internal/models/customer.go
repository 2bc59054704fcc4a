package models

// Customer is a row of the customers table.
type Customer struct {
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
	Document   string `db:"document"`
	Notes      string `db:"notes"`
	AuditFields
}
