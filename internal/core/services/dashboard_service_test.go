package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetDashboard_DefaultsToCurrentMonth(t *testing.T) {
	repo := new(MockDashboardRepository)
	svc := services.NewDashboardService(repo, testOptions()...)

	from, to := day(2024, 3, 1), day(2024, 3, 31)
	repo.On("GetDashboardSummary", mock.Anything, from, to).Return(&domain.DashboardSummary{
		ReceivedRevenue: dec("1500"),
		PaidExpenses:    dec("600"),
	}, nil).Once()

	summary, err := svc.GetDashboard(context.Background(), dto.DashboardParams{})

	require.NoError(t, err)
	assert.Equal(t, from, summary.From)
	assert.Equal(t, to, summary.To)
	assert.True(t, summary.Balance().Equal(dec("900")))
	repo.AssertExpectations(t)
}

func TestGetDashboard_InvalidRange(t *testing.T) {
	repo := new(MockDashboardRepository)
	svc := services.NewDashboardService(repo, testOptions()...)

	_, err := svc.GetDashboard(context.Background(), dto.DashboardParams{From: "2024-03-10", To: "2024-02-01"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "GetDashboardSummary", mock.Anything, mock.Anything, mock.Anything)
}
