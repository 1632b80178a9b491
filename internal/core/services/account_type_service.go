package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
)

// accountTypeService provides the account type registry operations.
type accountTypeService struct {
	accountTypeRepo portsrepo.AccountTypeRepositoryFacade
	counterRepo     portsrepo.CounterRepository
}

// NewAccountTypeService creates a new account type service.
func NewAccountTypeService(accountTypeRepo portsrepo.AccountTypeRepositoryFacade, counterRepo portsrepo.CounterRepository) portssvc.AccountTypeSvcFacade {
	return &accountTypeService{
		accountTypeRepo: accountTypeRepo,
		counterRepo:     counterRepo,
	}
}

var _ portssvc.AccountTypeSvcFacade = (*accountTypeService)(nil)

func (s *accountTypeService) CreateAccountType(ctx context.Context, req dto.CreateAccountTypeRequest) (*domain.AccountType, error) {
	origin := domain.Origin(req.Origin)
	if !origin.IsValid() {
		return nil, fmt.Errorf("%w: origin must be DEBIT or CREDIT", apperrors.ErrValidation)
	}

	sequenceID, err := s.counterRepo.NextID(ctx, domain.EntityAccountType)
	if err != nil {
		return nil, fmt.Errorf("failed to mint account type sequence id: %w", err)
	}

	now := time.Now()
	accountType := domain.AccountType{
		AccountTypeID: uuid.NewString(),
		SequenceID:    sequenceID,
		Description:   req.Description,
		Origin:        origin,
		Active:        true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountTypeRepo.SaveAccountType(ctx, accountType); err != nil {
		return nil, fmt.Errorf("failed to create account type: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("account type created", "sequence_id", sequenceID)
	return &accountType, nil
}

func (s *accountTypeService) UpdateAccountType(ctx context.Context, sequenceID int64, req dto.UpdateAccountTypeRequest) (*domain.AccountType, error) {
	accountType, err := s.accountTypeRepo.FindAccountTypeBySequenceID(ctx, sequenceID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
		}
		accountType.Description = *req.Description
	}
	if req.Origin != nil {
		origin := domain.Origin(*req.Origin)
		if !origin.IsValid() {
			return nil, fmt.Errorf("%w: origin must be DEBIT or CREDIT", apperrors.ErrValidation)
		}
		accountType.Origin = origin
	}
	if req.Active != nil {
		accountType.Active = *req.Active
	}
	accountType.UpdatedAt = time.Now()

	if err := s.accountTypeRepo.UpdateAccountType(ctx, *accountType); err != nil {
		return nil, fmt.Errorf("failed to update account type: %w", err)
	}

	return accountType, nil
}

func (s *accountTypeService) GetAccountTypeBySequenceID(ctx context.Context, sequenceID int64) (*domain.AccountType, error) {
	return s.accountTypeRepo.FindAccountTypeBySequenceID(ctx, sequenceID)
}

func (s *accountTypeService) ListAccountTypes(ctx context.Context, filter dto.AccountTypeFilter) ([]domain.AccountType, int64, error) {
	filter.Normalize()
	types, total, err := s.accountTypeRepo.ListAccountTypes(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list account types: %w", err)
	}
	if types == nil {
		types = []domain.AccountType{}
	}
	return types, total, nil
}
