package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
	"github.com/contable-dev/contabilidad_api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalEntryService ---

type MockJournalEntryService struct {
	mock.Mock
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

func (m *MockJournalEntryService) CreateJournalEntry(ctx context.Context, caller domain.Caller, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) UpdateJournalEntry(ctx context.Context, caller domain.Caller, sequenceID int64, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, caller, sequenceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) GetJournalEntryBySequenceID(ctx context.Context, caller domain.Caller, sequenceID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, caller, sequenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) ListJournalEntries(ctx context.Context, caller domain.Caller, filter dto.JournalEntryFilter) ([]domain.JournalEntry, int64, error) {
	args := m.Called(ctx, caller, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.Get(1).(int64), args.Error(2)
}

// --- Test Suite ---

type JournalEntryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockJournalEntryService
	jwtSecret   string
	userID      string
}

func (suite *JournalEntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockService = new(MockJournalEntryService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerJournalEntryRoutes(v1, suite.mockService)
}

func (suite *JournalEntryHandlerTestSuite) generateTestToken(auxiliarySystemID string) string {
	token, _, err := utils.GenerateJWT(suite.userID, "tester", auxiliarySystemID, suite.jwtSecret, time.Hour, "contab-test")
	suite.Require().NoError(err)
	return token
}

func (suite *JournalEntryHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *JournalEntryHandlerTestSuite) validCreateRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Description:       "Cash sale",
		AuxiliarySystemID: 7,
		EntryDate:         time.Now().Add(-time.Hour).UTC(),
		Lines: []dto.CreateJournalEntryLineRequest{
			{AccountID: 101, MovementType: "DEBIT", Amount: decimal.NewFromInt(100)},
			{AccountID: 201, MovementType: "CREDIT", Amount: decimal.NewFromInt(100)},
		},
	}
}

func (suite *JournalEntryHandlerTestSuite) TestCreateJournalEntry_Success() {
	reqBody := suite.validCreateRequest()
	created := &domain.JournalEntry{
		JournalEntryID: uuid.NewString(),
		SequenceID:     42,
		Description:    reqBody.Description,
		Status:         domain.Registered,
	}

	suite.mockService.On("CreateJournalEntry", mock.Anything, mock.MatchedBy(func(c domain.Caller) bool {
		return c.UserID == suite.userID
	}), mock.AnythingOfType("dto.CreateJournalEntryRequest")).Return(created, nil).Once()

	rec := suite.doRequest(http.MethodPost, "/api/v1/journal-entries", suite.generateTestToken(""), reqBody)

	suite.Equal(http.StatusCreated, rec.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.ID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestCreateJournalEntry_UnbalancedMapsTo400() {
	reqBody := suite.validCreateRequest()

	suite.mockService.On("CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: debits and credits must balance exactly", apperrors.ErrValidation)).Once()

	rec := suite.doRequest(http.MethodPost, "/api/v1/journal-entries", suite.generateTestToken(""), reqBody)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *JournalEntryHandlerTestSuite) TestCreateJournalEntry_SingleLineRejectedByBinding() {
	reqBody := suite.validCreateRequest()
	reqBody.Lines = reqBody.Lines[:1]

	rec := suite.doRequest(http.MethodPost, "/api/v1/journal-entries", suite.generateTestToken(""), reqBody)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryHandlerTestSuite) TestCreateJournalEntry_MissingToken() {
	rec := suite.doRequest(http.MethodPost, "/api/v1/journal-entries", "", suite.validCreateRequest())

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryHandlerTestSuite) TestGetJournalEntry_ForbiddenMapsTo403() {
	tenantID := uuid.NewString()

	suite.mockService.On("GetJournalEntryBySequenceID", mock.Anything, mock.MatchedBy(func(c domain.Caller) bool {
		return c.AuxiliarySystemID == tenantID
	}), int64(42)).Return(nil, fmt.Errorf("%w: journal entry belongs to another auxiliary system", apperrors.ErrForbidden)).Once()

	rec := suite.doRequest(http.MethodGet, "/api/v1/journal-entries/42", suite.generateTestToken(tenantID), nil)

	suite.Equal(http.StatusForbidden, rec.Code)
}

func (suite *JournalEntryHandlerTestSuite) TestGetJournalEntry_NotFoundMapsTo404() {
	suite.mockService.On("GetJournalEntryBySequenceID", mock.Anything, mock.Anything, int64(42)).
		Return(nil, apperrors.ErrNotFound).Once()

	rec := suite.doRequest(http.MethodGet, "/api/v1/journal-entries/42", suite.generateTestToken(""), nil)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *JournalEntryHandlerTestSuite) TestGetJournalEntry_InvalidID() {
	rec := suite.doRequest(http.MethodGet, "/api/v1/journal-entries/abc", suite.generateTestToken(""), nil)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetJournalEntryBySequenceID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryHandlerTestSuite) TestListJournalEntries_BindsQueryFilter() {
	suite.mockService.On("ListJournalEntries", mock.Anything, mock.Anything, mock.MatchedBy(func(f dto.JournalEntryFilter) bool {
		return f.AuxiliarySystemID == 7 && f.MovementType == "DEBIT" && f.Paginated && f.PageIndex == 2
	})).Return([]domain.JournalEntry{}, int64(0), nil).Once()

	rec := suite.doRequest(http.MethodGet, "/api/v1/journal-entries?auxiliarySystemID=7&movementType=DEBIT&paginated=true&pageIndex=2", suite.generateTestToken(""), nil)

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.NotNil(resp.Items)
	suite.mockService.AssertExpectations(suite.T())
}

func TestJournalEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalEntryHandlerTestSuite))
}
