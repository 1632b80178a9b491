package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/core/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalEntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo   *MockJournalEntryRepository
	mockAccountRepo *MockLedgerAccountRepository
	mockSystemRepo  *MockAuxiliarySystemRepository
	mockCounterRepo *MockCounterRepository
	service         portssvc.JournalEntrySvcFacade

	globalCaller domain.Caller
	tenantCaller domain.Caller
	system       domain.AuxiliarySystem
	cashAccount  domain.LedgerAccount
	salesAccount domain.LedgerAccount
}

func (suite *JournalEntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockJournalEntryRepository)
	suite.mockAccountRepo = new(MockLedgerAccountRepository)
	suite.mockSystemRepo = new(MockAuxiliarySystemRepository)
	suite.mockCounterRepo = new(MockCounterRepository)
	suite.service = services.NewJournalEntryService(suite.mockEntryRepo, suite.mockAccountRepo, suite.mockSystemRepo, suite.mockCounterRepo)

	suite.system = domain.AuxiliarySystem{
		AuxiliarySystemID: uuid.NewString(),
		SequenceID:        7,
		Description:       "Payroll",
		Active:            true,
	}
	suite.globalCaller = domain.Caller{UserID: uuid.NewString(), Name: "admin"}
	suite.tenantCaller = domain.Caller{UserID: uuid.NewString(), Name: "payroll-bot", AuxiliarySystemID: suite.system.AuxiliarySystemID}

	suite.cashAccount = domain.LedgerAccount{
		LedgerAccountID:    uuid.NewString(),
		SequenceID:         101,
		Description:        "Cash",
		AllowsTransactions: true,
		Level:              3,
		Active:             true,
	}
	suite.salesAccount = domain.LedgerAccount{
		LedgerAccountID:    uuid.NewString(),
		SequenceID:         201,
		Description:        "Sales",
		AllowsTransactions: true,
		Level:              3,
		Active:             true,
	}
}

func (suite *JournalEntryServiceTestSuite) accountsMap(accounts ...domain.LedgerAccount) map[int64]domain.LedgerAccount {
	m := make(map[int64]domain.LedgerAccount, len(accounts))
	for _, a := range accounts {
		m[a.SequenceID] = a
	}
	return m
}

func (suite *JournalEntryServiceTestSuite) balancedRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Description:       "Cash sale",
		AuxiliarySystemID: suite.system.SequenceID,
		EntryDate:         time.Now().Add(-time.Hour),
		Lines: []dto.CreateJournalEntryLineRequest{
			{AccountID: suite.cashAccount.SequenceID, MovementType: "DEBIT", Amount: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.SequenceID, MovementType: "CREDIT", Amount: decimal.NewFromInt(100)},
		},
	}
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, suite.system.SequenceID).Return(&suite.system, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountsBySequenceIDs", ctx, []int64{suite.cashAccount.SequenceID, suite.salesAccount.SequenceID}).
		Return(suite.accountsMap(suite.cashAccount, suite.salesAccount), nil).Once()
	suite.mockCounterRepo.On("NextID", ctx, domain.EntityJournalEntry).Return(int64(42), nil).Once()
	suite.mockEntryRepo.On("SaveJournalEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.JournalEntryID)
	suite.Equal(int64(42), entry.SequenceID)
	suite.Equal(suite.system.AuxiliarySystemID, entry.AuxiliarySystemID)
	suite.Equal(domain.Registered, entry.Status)
	suite.Len(entry.Lines, 2)
	for _, line := range entry.Lines {
		suite.Equal(entry.JournalEntryID, line.JournalEntryID)
		suite.NotEmpty(line.LineID)
	}

	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockCounterRepo.AssertExpectations(suite.T())
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_TenantCallerIgnoresRequestedSystem() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.AuxiliarySystemID = 999 // must be ignored for tenant-bound callers

	suite.mockAccountRepo.On("FindLedgerAccountsBySequenceIDs", ctx, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.salesAccount), nil).Once()
	suite.mockCounterRepo.On("NextID", ctx, domain.EntityJournalEntry).Return(int64(43), nil).Once()
	suite.mockEntryRepo.On("SaveJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.AuxiliarySystemID == suite.system.AuxiliarySystemID
	})).Return(nil).Once()

	entry, err := suite.service.CreateJournalEntry(ctx, suite.tenantCaller, req)

	suite.Require().NoError(err)
	suite.Equal(suite.system.AuxiliarySystemID, entry.AuxiliarySystemID)
	suite.mockSystemRepo.AssertNotCalled(suite.T(), "FindAuxiliarySystemBySequenceID")
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_Unbalanced() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[1].Amount = decimal.NewFromInt(90)

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, suite.system.SequenceID).Return(&suite.system, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountsBySequenceIDs", ctx, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.salesAccount), nil).Once()

	entry, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_SingleSided() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[1].MovementType = "DEBIT"
	req.Lines[0].Amount = decimal.NewFromInt(50)
	req.Lines[1].Amount = decimal.NewFromInt(50)

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, suite.system.SequenceID).Return(&suite.system, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountsBySequenceIDs", ctx, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.salesAccount), nil).Once()

	_, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "at least one debit and one credit")
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_TooFewLines() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines = req.Lines[:1]

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, suite.system.SequenceID).Return(&suite.system, nil).Once()

	_, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_NegativeAmount() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[0].Amount = decimal.NewFromInt(-100)

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, suite.system.SequenceID).Return(&suite.system, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountsBySequenceIDs", ctx, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.salesAccount), nil).Once()

	_, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "positive")
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_NonPostableAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()
	grouping := suite.cashAccount
	grouping.AllowsTransactions = false

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, suite.system.SequenceID).Return(&suite.system, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountsBySequenceIDs", ctx, mock.Anything).
		Return(suite.accountsMap(grouping, suite.salesAccount), nil).Once()

	_, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "does not allow transactions")
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_InactiveAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()
	inactive := suite.salesAccount
	inactive.Active = false

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, suite.system.SequenceID).Return(&suite.system, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountsBySequenceIDs", ctx, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, inactive), nil).Once()

	_, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "inactive")
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_UnknownAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, suite.system.SequenceID).Return(&suite.system, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountsBySequenceIDs", ctx, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount), nil).Once() // sales account missing

	_, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "does not exist")
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_FutureDate() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.EntryDate = time.Now().Add(24 * time.Hour)

	_, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "future")
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_GlobalCallerNeedsSystem() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.AuxiliarySystemID = 0

	_, err := suite.service.CreateJournalEntry(ctx, suite.globalCaller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalEntryServiceTestSuite) TestGetJournalEntry_ForbiddenAcrossTenants() {
	ctx := context.Background()
	entry := &domain.JournalEntry{
		JournalEntryID:    uuid.NewString(),
		SequenceID:        42,
		AuxiliarySystemID: uuid.NewString(), // some other tenant
		Status:            domain.Registered,
	}
	suite.mockEntryRepo.On("FindJournalEntryBySequenceID", ctx, int64(42)).Return(entry, nil).Once()

	got, err := suite.service.GetJournalEntryBySequenceID(ctx, suite.tenantCaller, 42)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *JournalEntryServiceTestSuite) TestGetJournalEntry_GlobalCallerSeesAll() {
	ctx := context.Background()
	entry := &domain.JournalEntry{
		JournalEntryID:    uuid.NewString(),
		SequenceID:        42,
		AuxiliarySystemID: uuid.NewString(),
		Status:            domain.Registered,
	}
	suite.mockEntryRepo.On("FindJournalEntryBySequenceID", ctx, int64(42)).Return(entry, nil).Once()

	got, err := suite.service.GetJournalEntryBySequenceID(ctx, suite.globalCaller, 42)

	suite.Require().NoError(err)
	suite.Equal(entry, got)
}

func (suite *JournalEntryServiceTestSuite) TestUpdateJournalEntry_ReplacesLinesAndStatus() {
	ctx := context.Background()
	existing := &domain.JournalEntry{
		JournalEntryID:    uuid.NewString(),
		SequenceID:        42,
		Description:       "Old",
		AuxiliarySystemID: suite.system.AuxiliarySystemID,
		EntryDate:         time.Now().Add(-48 * time.Hour),
		Status:            domain.Registered,
	}
	status := "CANCELED"
	req := dto.UpdateJournalEntryRequest{
		Description:       "Corrected",
		AuxiliarySystemID: suite.system.SequenceID,
		EntryDate:         time.Now().Add(-time.Hour),
		Status:            &status,
		Lines: []dto.CreateJournalEntryLineRequest{
			{AccountID: suite.cashAccount.SequenceID, MovementType: "DEBIT", Amount: decimal.NewFromInt(25)},
			{AccountID: suite.salesAccount.SequenceID, MovementType: "CREDIT", Amount: decimal.NewFromInt(25)},
		},
	}

	suite.mockEntryRepo.On("FindJournalEntryBySequenceID", ctx, int64(42)).Return(existing, nil).Once()
	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, suite.system.SequenceID).Return(&suite.system, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountsBySequenceIDs", ctx, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.salesAccount), nil).Once()
	suite.mockEntryRepo.On("UpdateJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Description == "Corrected" && e.Status == domain.Canceled && len(e.Lines) == 2
	})).Return(nil).Once()

	updated, err := suite.service.UpdateJournalEntry(ctx, suite.globalCaller, 42, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Canceled, updated.Status)
	for _, line := range updated.Lines {
		suite.Equal(existing.JournalEntryID, line.JournalEntryID)
	}
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalEntryServiceTestSuite) TestUpdateJournalEntry_ForbiddenAcrossTenants() {
	ctx := context.Background()
	existing := &domain.JournalEntry{
		JournalEntryID:    uuid.NewString(),
		SequenceID:        42,
		AuxiliarySystemID: uuid.NewString(),
		Status:            domain.Registered,
	}
	suite.mockEntryRepo.On("FindJournalEntryBySequenceID", ctx, int64(42)).Return(existing, nil).Once()

	_, err := suite.service.UpdateJournalEntry(ctx, suite.tenantCaller, 42, dto.UpdateJournalEntryRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateJournalEntry", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestListJournalEntries_TenantScopeForced() {
	ctx := context.Background()
	filter := dto.JournalEntryFilter{AuxiliarySystemID: 999}

	suite.mockEntryRepo.On("ListJournalEntries", ctx, mock.MatchedBy(func(f dto.JournalEntryFilter) bool {
		return f.AuxiliarySystemUUID == suite.system.AuxiliarySystemID
	})).Return([]domain.JournalEntry{}, int64(0), nil).Once()

	_, _, err := suite.service.ListJournalEntries(ctx, suite.tenantCaller, filter)

	suite.Require().NoError(err)
	suite.mockSystemRepo.AssertNotCalled(suite.T(), "FindAuxiliarySystemBySequenceID")
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalEntryServiceTestSuite) TestListJournalEntries_UnknownSystemYieldsEmpty() {
	ctx := context.Background()
	filter := dto.JournalEntryFilter{AuxiliarySystemID: 999}

	suite.mockSystemRepo.On("FindAuxiliarySystemBySequenceID", ctx, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	entries, total, err := suite.service.ListJournalEntries(ctx, suite.globalCaller, filter)

	suite.Require().NoError(err)
	suite.Empty(entries)
	suite.Zero(total)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "ListJournalEntries", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestListJournalEntries_InvalidMovementType() {
	ctx := context.Background()
	filter := dto.JournalEntryFilter{MovementType: "SIDEWAYS"}

	_, _, err := suite.service.ListJournalEntries(ctx, suite.globalCaller, filter)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestJournalEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalEntryServiceTestSuite))
}
