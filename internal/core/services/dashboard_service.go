package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
)

type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(repo portsrepo.DashboardRepository, opts ...ServiceOption) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService:   newBaseService(opts...),
		dashboardRepo: repo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GetDashboard defaults to the current calendar month when the period is not given.
func (s *dashboardService) GetDashboard(ctx context.Context, params dto.DashboardParams) (*domain.DashboardSummary, error) {
	today := s.Today()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	from, to := monthStart, monthStart.AddDate(0, 1, -1)
	loc := s.Location()
	if d, err := dto.ParseDate(params.From, loc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	} else if d != nil {
		from = *d
	}
	if d, err := dto.ParseDate(params.To, loc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	} else if d != nil {
		to = *d
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' must not be before 'from'", apperrors.ErrValidation)
	}

	summary, err := s.dashboardRepo.GetDashboardSummary(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build dashboard summary")
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	summary.From, summary.To = from, to
	return summary, nil
}
