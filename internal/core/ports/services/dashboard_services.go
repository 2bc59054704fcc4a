package services

import (
	"context"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
)

// DashboardSvc builds the financial overview shown on the home page.
type DashboardSvc interface {
	GetDashboard(ctx context.Context, params dto.DashboardParams) (*domain.DashboardSummary, error)
}
