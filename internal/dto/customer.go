package dto

import (
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Document string `json:"document" binding:"omitempty,cpf"`
	Notes    string `json:"notes"`
}

// UpdateCustomerRequest uses pointers to tell omitted fields from cleared ones.
type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Document *string `json:"document" binding:"omitempty,cpf"`
	Notes    *string `json:"notes"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Search    string `form:"search"`
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

type CustomerResponse struct {
	CustomerID    string    `json:"customerID"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Document      string    `json:"document"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		Document:      c.Document,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

func ToListCustomersResponse(customers []domain.Customer, nextToken *string) ListCustomersResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return ListCustomersResponse{Customers: out, NextToken: nextToken}
}
