package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
)

// auxiliarySystemService provides the tenant registry operations.
type auxiliarySystemService struct {
	auxiliarySystemRepo portsrepo.AuxiliarySystemRepositoryFacade
	counterRepo         portsrepo.CounterRepository
}

// NewAuxiliarySystemService creates a new auxiliary system service.
func NewAuxiliarySystemService(auxiliarySystemRepo portsrepo.AuxiliarySystemRepositoryFacade, counterRepo portsrepo.CounterRepository) portssvc.AuxiliarySystemSvcFacade {
	return &auxiliarySystemService{
		auxiliarySystemRepo: auxiliarySystemRepo,
		counterRepo:         counterRepo,
	}
}

var _ portssvc.AuxiliarySystemSvcFacade = (*auxiliarySystemService)(nil)

func (s *auxiliarySystemService) CreateAuxiliarySystem(ctx context.Context, req dto.CreateAuxiliarySystemRequest) (*domain.AuxiliarySystem, error) {
	sequenceID, err := s.counterRepo.NextID(ctx, domain.EntityAuxiliarySystem)
	if err != nil {
		return nil, fmt.Errorf("failed to mint auxiliary system sequence id: %w", err)
	}

	now := time.Now()
	system := domain.AuxiliarySystem{
		AuxiliarySystemID: uuid.NewString(),
		SequenceID:        sequenceID,
		Description:       req.Description,
		Active:            true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.auxiliarySystemRepo.SaveAuxiliarySystem(ctx, system); err != nil {
		return nil, fmt.Errorf("failed to create auxiliary system: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("auxiliary system created", "sequence_id", sequenceID)
	return &system, nil
}

func (s *auxiliarySystemService) UpdateAuxiliarySystem(ctx context.Context, sequenceID int64, req dto.UpdateAuxiliarySystemRequest) (*domain.AuxiliarySystem, error) {
	system, err := s.auxiliarySystemRepo.FindAuxiliarySystemBySequenceID(ctx, sequenceID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
		}
		system.Description = *req.Description
	}
	if req.Active != nil {
		system.Active = *req.Active
	}
	system.UpdatedAt = time.Now()

	if err := s.auxiliarySystemRepo.UpdateAuxiliarySystem(ctx, *system); err != nil {
		return nil, fmt.Errorf("failed to update auxiliary system: %w", err)
	}

	return system, nil
}

func (s *auxiliarySystemService) GetAuxiliarySystemBySequenceID(ctx context.Context, sequenceID int64) (*domain.AuxiliarySystem, error) {
	return s.auxiliarySystemRepo.FindAuxiliarySystemBySequenceID(ctx, sequenceID)
}

func (s *auxiliarySystemService) ListAuxiliarySystems(ctx context.Context, filter dto.AuxiliarySystemFilter) ([]domain.AuxiliarySystem, int64, error) {
	filter.Normalize()
	systems, total, err := s.auxiliarySystemRepo.ListAuxiliarySystems(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list auxiliary systems: %w", err)
	}
	if systems == nil {
		systems = []domain.AuxiliarySystem{}
	}
	return systems, total, nil
}
