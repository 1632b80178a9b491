package repositories

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/dto"
)

// AuxiliarySystemReader defines read operations for tenant data.
type AuxiliarySystemReader interface {
	FindAuxiliarySystemByID(ctx context.Context, auxiliarySystemID string) (*domain.AuxiliarySystem, error)
	FindAuxiliarySystemBySequenceID(ctx context.Context, sequenceID int64) (*domain.AuxiliarySystem, error)
	ListAuxiliarySystems(ctx context.Context, filter dto.AuxiliarySystemFilter) ([]domain.AuxiliarySystem, int64, error)
}

// AuxiliarySystemWriter defines write operations for tenant data.
type AuxiliarySystemWriter interface {
	SaveAuxiliarySystem(ctx context.Context, system domain.AuxiliarySystem) error
	UpdateAuxiliarySystem(ctx context.Context, system domain.AuxiliarySystem) error
}

// AuxiliarySystemRepositoryFacade combines all tenant repository interfaces.
type AuxiliarySystemRepositoryFacade interface {
	AuxiliarySystemReader
	AuxiliarySystemWriter
}
