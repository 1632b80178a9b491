package services_test

import (
	"context"
	"testing"

	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/core/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuxiliarySystemServiceTestSuite struct {
	suite.Suite
	mockSystemRepo  *MockAuxiliarySystemRepository
	mockCounterRepo *MockCounterRepository
	service         portssvc.AuxiliarySystemSvcFacade
}

func (suite *AuxiliarySystemServiceTestSuite) SetupTest() {
	suite.mockSystemRepo = new(MockAuxiliarySystemRepository)
	suite.mockCounterRepo = new(MockCounterRepository)
	suite.service = services.NewAuxiliarySystemService(suite.mockSystemRepo, suite.mockCounterRepo)
}

func (suite *AuxiliarySystemServiceTestSuite) TestCreateAuxiliarySystem_Success() {
	ctx := context.Background()
	req := dto.CreateAuxiliarySystemRequest{Description: "Payroll"}

	suite.mockCounterRepo.On("NextID", ctx, domain.EntityAuxiliarySystem).Return(int64(7), nil).Once()
	suite.mockSystemRepo.On("SaveAuxiliarySystem", ctx, mock.MatchedBy(func(s domain.AuxiliarySystem) bool {
		return s.Description == "Payroll" && s.Active && s.SequenceID == 7
	})).Return(nil).Once()

	system, err := suite.service.CreateAuxiliarySystem(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(system.AuxiliarySystemID)
	suite.True(system.Active)
	suite.mockSystemRepo.AssertExpectations(suite.T())
}

func (suite *AuxiliarySystemServiceTestSuite) TestUpdateAuxiliarySystem_Deactivate() {
	ctx := context.Background()
	existing := &domain.AuxiliarySystem{
		AuxiliarySystemID: uuid.NewString(),
		SequenceID:        7,
		Description:       "Payroll",
		Active:            true,
	}
	inactive := false
	req := dto.UpdateAuxiliarySystemRequest{Active: &inactive}

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockSystemRepo.On("UpdateAuxiliarySystem", ctx, mock.MatchedBy(func(s domain.AuxiliarySystem) bool {
		return !s.Active
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAuxiliarySystem(ctx, 7, req)

	suite.Require().NoError(err)
	suite.False(updated.Active)
	suite.mockSystemRepo.AssertExpectations(suite.T())
}

func (suite *AuxiliarySystemServiceTestSuite) TestUpdateAuxiliarySystem_EmptyDescription() {
	ctx := context.Background()
	existing := &domain.AuxiliarySystem{
		AuxiliarySystemID: uuid.NewString(),
		SequenceID:        7,
		Description:       "Payroll",
		Active:            true,
	}
	empty := ""
	req := dto.UpdateAuxiliarySystemRequest{Description: &empty}

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, int64(7)).Return(existing, nil).Once()

	_, err := suite.service.UpdateAuxiliarySystem(ctx, 7, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSystemRepo.AssertNotCalled(suite.T(), "UpdateAuxiliarySystem", mock.Anything, mock.Anything)
}

func (suite *AuxiliarySystemServiceTestSuite) TestGetAuxiliarySystem_NotFound() {
	ctx := context.Background()

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAuxiliarySystemBySequenceID(ctx, 9)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAuxiliarySystemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuxiliarySystemServiceTestSuite))
}
