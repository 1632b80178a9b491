package services

import (
	"context"
	"fmt"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
)

// dashboardService exposes aggregate counters for the registry entities.
type dashboardService struct {
	dashboardRepo portsrepo.DashboardRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(dashboardRepo portsrepo.DashboardRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) GetSystemSummary(ctx context.Context) (*domain.SystemSummary, error) {
	summary, err := s.dashboardRepo.GetSystemSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get system summary: %w", err)
	}
	return summary, nil
}
