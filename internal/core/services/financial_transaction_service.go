package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/accounting"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/pagination"
)

type financialTransactionService struct {
	BaseService
	txnRepo portsrepo.FinancialTransactionRepositoryFacade
}

// NewFinancialTransactionService creates a new FinancialTransactionService.
func NewFinancialTransactionService(repo portsrepo.FinancialTransactionRepositoryFacade, opts ...ServiceOption) portssvc.FinancialTransactionSvcFacade {
	return &financialTransactionService{
		BaseService: newBaseService(opts...),
		txnRepo:     repo,
	}
}

var _ portssvc.FinancialTransactionSvcFacade = (*financialTransactionService)(nil)

func (s *financialTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *financialTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	loc := s.Location()
	from, err := dto.ParseDate(params.From, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	to, err := dto.ParseDate(params.To, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: 'to' must not be before 'from'", apperrors.ErrValidation)
	}

	filter := portsrepo.TransactionListFilter{
		Status:    params.Status,
		Type:      params.Type,
		RelatedID: params.RelatedID,
		From:      from,
		To:        to,
		Limit:     pagination.ClampLimit(params.Limit),
	}
	if params.NextToken != "" {
		afterDate, afterCreatedAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		filter.AfterDate = &afterDate
		filter.AfterCreatedAt = &afterCreatedAt
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *financialTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.FinancialTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	loc := s.Location()
	today := s.Today()
	date := today
	if d, err := dto.ParseDate(req.Date, loc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	} else if d != nil {
		date = *d
	}
	dueDate, err := dto.ParseDate(req.DueDate, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := s.Now()
	txn := domain.FinancialTransaction{
		ID:            s.NewID(),
		Date:          date,
		Description:   strings.TrimSpace(req.Description),
		Category:      strings.TrimSpace(req.Category),
		Amount:        accounting.RoundCents(req.Amount),
		Type:          req.Type,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		DueDate:       dueDate,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if txn.Status == domain.TransactionPaid {
		txn.PaymentDate = &date
	}

	if _, err := accounting.SignedAmount(txn); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)),
		slog.String("status", string(txn.Status)))
	return &txn, nil
}

func (s *financialTransactionService) RecordPayment(ctx context.Context, transactionID string, userID string) (*domain.FinancialTransaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	if txn.Status == domain.TransactionPaid {
		return nil, fmt.Errorf("%w: transaction %s is already paid", apperrors.ErrValidation, transactionID)
	}

	today := s.Today()
	txn.Status = domain.TransactionPaid
	txn.PaymentDate = &today
	return s.saveStatus(ctx, txn, userID)
}

func (s *financialTransactionService) ReopenTransaction(ctx context.Context, transactionID string, userID string) (*domain.FinancialTransaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	if txn.Status == domain.TransactionPending {
		return nil, fmt.Errorf("%w: transaction %s is not paid", apperrors.ErrValidation, transactionID)
	}

	txn.Status = domain.TransactionPending
	txn.PaymentDate = nil
	return s.saveStatus(ctx, txn, userID)
}

func (s *financialTransactionService) saveStatus(ctx context.Context, txn *domain.FinancialTransaction, userID string) (*domain.FinancialTransaction, error) {
	txn.LastUpdatedAt = s.Now()
	txn.LastUpdatedBy = userID
	if err := s.txnRepo.UpdateTransactionStatus(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction status", slog.String("transaction_id", txn.ID))
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return txn, nil
}
