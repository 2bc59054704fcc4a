package dto

import (
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records a manual income or expense.
type CreateTransactionRequest struct {
	Date          string                   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description   string                   `json:"description" binding:"required"`
	Category      string                   `json:"category" binding:"required"`
	Amount        decimal.Decimal          `json:"amount" binding:"gt=0"`
	Type          domain.TransactionType   `json:"type" binding:"required,oneof=receita despesa"`
	PaymentMethod domain.PaymentMethod     `json:"paymentMethod" binding:"required,paymentmethod"`
	Status        domain.TransactionStatus `json:"status" binding:"required,oneof=pago pendente"`
	DueDate       string                   `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Notes         string                   `json:"notes"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Status    domain.TransactionStatus `form:"status" binding:"omitempty,oneof=pago pendente"`
	Type      domain.TransactionType   `form:"type" binding:"omitempty,oneof=receita despesa"`
	RelatedID string                   `form:"relatedID"`
	From      string                   `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string                   `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int                      `form:"limit,default=20"`
	NextToken string                   `form:"nextToken"`
}

type TransactionResponse struct {
	TransactionID   string                   `json:"transactionID"`
	Date            string                   `json:"date"`
	Description     string                   `json:"description"`
	Category        string                   `json:"category"`
	Amount          decimal.Decimal          `json:"amount"`
	AmountFormatted string                   `json:"amountFormatted"`
	Type            domain.TransactionType   `json:"type"`
	PaymentMethod   domain.PaymentMethod     `json:"paymentMethod"`
	Status          domain.TransactionStatus `json:"status"`
	DueDate         *string                  `json:"dueDate,omitempty"`
	PaymentDate     *string                  `json:"paymentDate,omitempty"`
	RelatedID       string                   `json:"relatedID,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

func ToTransactionResponse(t *domain.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.ID,
		Date:            t.Date.Format(DateLayout),
		Description:     t.Description,
		Category:        t.Category,
		Amount:          t.Amount,
		AmountFormatted: utils.FormatBRL(t.Amount),
		Type:            t.Type,
		PaymentMethod:   t.PaymentMethod,
		Status:          t.Status,
		DueDate:         formatDatePtr(t.DueDate),
		PaymentDate:     formatDatePtr(t.PaymentDate),
		RelatedID:       t.RelatedID,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}

func ToTransactionResponses(txns []domain.FinancialTransaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
