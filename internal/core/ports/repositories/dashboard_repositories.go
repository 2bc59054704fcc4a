package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
)

// DashboardRepository computes aggregates in the database.
type DashboardRepository interface {
	// GetDashboardSummary aggregates transactions and bills whose business
	// date falls in [from, to], plus order counts by status.
	GetDashboardSummary(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error)
}
