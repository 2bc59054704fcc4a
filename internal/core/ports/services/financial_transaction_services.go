package services

import (
	"context"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
)

type FinancialTransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

type FinancialTransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.FinancialTransaction, error)
	// RecordPayment moves a pending transaction to pago, dated today.
	RecordPayment(ctx context.Context, transactionID string, userID string) (*domain.FinancialTransaction, error)
	// ReopenTransaction moves a paid transaction back to pendente.
	ReopenTransaction(ctx context.Context, transactionID string, userID string) (*domain.FinancialTransaction, error)
}

type FinancialTransactionSvcFacade interface {
	FinancialTransactionReaderSvc
	FinancialTransactionWriterSvc
}
