package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction_PaidExpenseDatedToday(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewFinancialTransactionService(repo, testOptions()...)
	repo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.FinancialTransaction")).Return(nil).Once()

	txn, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Description:   "Compra de câmaras de ar",
		Category:      "estoque",
		Amount:        dec("245.3"),
		Type:          domain.TransactionExpense,
		PaymentMethod: domain.PaymentPix,
		Status:        domain.TransactionPaid,
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "id-1", txn.ID)
	assert.Equal(t, day(2024, 3, 10), txn.Date)
	require.NotNil(t, txn.PaymentDate)
	assert.Equal(t, txn.Date, *txn.PaymentDate)
	assert.Equal(t, "245.30", txn.Amount.StringFixed(2))
	repo.AssertExpectations(t)
}

func TestCreateTransaction_PendingKeepsDueDate(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewFinancialTransactionService(repo, testOptions()...)
	repo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil).Once()

	txn, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Date:          "2024-03-01",
		Description:   "Fornecedor peças",
		Category:      "estoque",
		Amount:        dec("1000"),
		Type:          domain.TransactionExpense,
		PaymentMethod: domain.PaymentBilletSlip,
		Status:        domain.TransactionPending,
		DueDate:       "2024-03-20",
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, day(2024, 3, 1), txn.Date)
	require.NotNil(t, txn.DueDate)
	assert.Equal(t, day(2024, 3, 20), *txn.DueDate)
	assert.Nil(t, txn.PaymentDate)
}

func TestCreateTransaction_RejectsNonPositiveAmount(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewFinancialTransactionService(repo, testOptions()...)

	_, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Description:   "x",
		Category:      "y",
		Amount:        dec("0"),
		Type:          domain.TransactionIncome,
		PaymentMethod: domain.PaymentCash,
		Status:        domain.TransactionPaid,
	}, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestRecordPaymentAndReopen(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewFinancialTransactionService(repo, testOptions()...)
	ctx := context.Background()

	due := day(2024, 4, 10)
	repo.On("FindTransactionByID", mock.Anything, "OS002-P1").Return(&domain.FinancialTransaction{
		ID:      "OS002-P1",
		Status:  domain.TransactionPending,
		DueDate: &due,
	}, nil).Once()
	repo.On("UpdateTransactionStatus", mock.Anything, mock.Anything).Return(nil)

	paid, err := svc.RecordPayment(ctx, "OS002-P1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)
	assert.Equal(t, day(2024, 3, 10), *paid.PaymentDate)

	repo.On("FindTransactionByID", mock.Anything, "OS002-P1").Return(paid, nil).Once()
	reopened, err := svc.ReopenTransaction(ctx, "OS002-P1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionPending, reopened.Status)
	assert.Nil(t, reopened.PaymentDate)
}

func TestRecordPayment_AlreadyPaid(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewFinancialTransactionService(repo, testOptions()...)
	repo.On("FindTransactionByID", mock.Anything, "t1").Return(&domain.FinancialTransaction{ID: "t1", Status: domain.TransactionPaid}, nil).Once()

	_, err := svc.RecordPayment(context.Background(), "t1", "user-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "UpdateTransactionStatus", mock.Anything, mock.Anything)
}

func TestListTransactions_DecodesCursor(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewFinancialTransactionService(repo, testOptions()...)

	afterDate := day(2024, 3, 5)
	afterCreated := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	token := pagination.EncodeToken(afterDate, afterCreated)
	next := "next-page"

	repo.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f portsrepo.TransactionListFilter) bool {
		return f.AfterDate != nil && f.AfterDate.Equal(afterDate) &&
			f.AfterCreatedAt != nil && f.AfterCreatedAt.Equal(afterCreated) &&
			f.Limit == pagination.DefaultLimit && f.Status == domain.TransactionPending
	})).Return([]domain.FinancialTransaction{{ID: "t1", Date: afterDate}}, &next, nil).Once()

	resp, err := svc.ListTransactions(context.Background(), dto.ListTransactionsParams{
		Status:    domain.TransactionPending,
		NextToken: token,
	})

	require.NoError(t, err)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, &next, resp.NextToken)
	repo.AssertExpectations(t)
}

func TestListTransactions_InvalidInput(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewFinancialTransactionService(repo, testOptions()...)

	_, err := svc.ListTransactions(context.Background(), dto.ListTransactionsParams{NextToken: "%%%"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ListTransactions(context.Background(), dto.ListTransactionsParams{From: "2024-03-10", To: "2024-03-01"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
}
