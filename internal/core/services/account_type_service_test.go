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

type AccountTypeServiceTestSuite struct {
	suite.Suite
	mockTypeRepo    *MockAccountTypeRepository
	mockCounterRepo *MockCounterRepository
	service         portssvc.AccountTypeSvcFacade
}

func (suite *AccountTypeServiceTestSuite) SetupTest() {
	suite.mockTypeRepo = new(MockAccountTypeRepository)
	suite.mockCounterRepo = new(MockCounterRepository)
	suite.service = services.NewAccountTypeService(suite.mockTypeRepo, suite.mockCounterRepo)
}

func (suite *AccountTypeServiceTestSuite) TestCreateAccountType_Success() {
	ctx := context.Background()
	req := dto.CreateAccountTypeRequest{Description: "Assets", Origin: "DEBIT"}

	suite.mockCounterRepo.On("NextID", ctx, domain.EntityAccountType).Return(int64(1), nil).Once()
	suite.mockTypeRepo.On("SaveAccountType", ctx, mock.MatchedBy(func(t domain.AccountType) bool {
		return t.Origin == domain.OriginDebit && t.Active && t.SequenceID == 1
	})).Return(nil).Once()

	accountType, err := suite.service.CreateAccountType(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(accountType.AccountTypeID)
	suite.Equal(domain.OriginDebit, accountType.Origin)
	suite.mockTypeRepo.AssertExpectations(suite.T())
}

func (suite *AccountTypeServiceTestSuite) TestCreateAccountType_InvalidOrigin() {
	ctx := context.Background()
	req := dto.CreateAccountTypeRequest{Description: "Assets", Origin: "SIDEWAYS"}

	_, err := suite.service.CreateAccountType(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCounterRepo.AssertNotCalled(suite.T(), "NextID", mock.Anything, mock.Anything)
}

func (suite *AccountTypeServiceTestSuite) TestUpdateAccountType_Deactivate() {
	ctx := context.Background()
	existing := &domain.AccountType{
		AccountTypeID: uuid.NewString(),
		SequenceID:    1,
		Description:   "Assets",
		Origin:        domain.OriginDebit,
		Active:        true,
	}
	inactive := false
	req := dto.UpdateAccountTypeRequest{Active: &inactive}

	suite.mockTypeRepo.On("FindAccountTypeBySequenceID", ctx, int64(1)).Return(existing, nil).Once()
	suite.mockTypeRepo.On("UpdateAccountType", ctx, mock.MatchedBy(func(t domain.AccountType) bool {
		return !t.Active
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccountType(ctx, 1, req)

	suite.Require().NoError(err)
	suite.False(updated.Active)
	suite.mockTypeRepo.AssertExpectations(suite.T())
}

func (suite *AccountTypeServiceTestSuite) TestUpdateAccountType_EmptyDescription() {
	ctx := context.Background()
	existing := &domain.AccountType{
		AccountTypeID: uuid.NewString(),
		SequenceID:    1,
		Description:   "Assets",
		Origin:        domain.OriginDebit,
		Active:        true,
	}
	empty := ""
	req := dto.UpdateAccountTypeRequest{Description: &empty}

	suite.mockTypeRepo.On("FindAccountTypeBySequenceID", ctx, int64(1)).Return(existing, nil).Once()

	_, err := suite.service.UpdateAccountType(ctx, 1, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTypeRepo.AssertNotCalled(suite.T(), "UpdateAccountType", mock.Anything, mock.Anything)
}

func (suite *AccountTypeServiceTestSuite) TestUpdateAccountType_NotFound() {
	ctx := context.Background()

	suite.mockTypeRepo.On("FindAccountTypeBySequenceID", ctx, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateAccountType(ctx, 9, dto.UpdateAccountTypeRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountTypeServiceTestSuite) TestListAccountTypes_EmptyResultIsNotNil() {
	ctx := context.Background()
	filter := dto.AccountTypeFilter{Description: "nothing"}

	suite.mockTypeRepo.On("ListAccountTypes", ctx, filter).Return([]domain.AccountType(nil), int64(0), nil).Once()

	types, total, err := suite.service.ListAccountTypes(ctx, filter)

	suite.Require().NoError(err)
	suite.NotNil(types)
	suite.Empty(types)
	suite.Zero(total)
}

func TestAccountTypeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTypeServiceTestSuite))
}
