package domain

// Customer is a person or company the shop services bikes for.
type Customer struct {
	ID       string
	Name     string
	Phone    string
	Email    string
	Document string
	Notes    string
	AuditFields
}
