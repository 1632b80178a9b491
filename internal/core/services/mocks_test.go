package services_test

import (
	"context"
	"time"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CounterRepository ---

type MockCounterRepository struct {
	mock.Mock
}

var _ portsrepo.CounterRepository = (*MockCounterRepository)(nil)

func (m *MockCounterRepository) NextID(ctx context.Context, entityName string) (int64, error) {
	args := m.Called(ctx, entityName)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AccountTypeRepository ---

type MockAccountTypeRepository struct {
	mock.Mock
}

var _ portsrepo.AccountTypeRepositoryFacade = (*MockAccountTypeRepository)(nil)

func (m *MockAccountTypeRepository) FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error) {
	args := m.Called(ctx, accountTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

func (m *MockAccountTypeRepository) FindAccountTypeBySequenceID(ctx context.Context, sequenceID int64) (*domain.AccountType, error) {
	args := m.Called(ctx, sequenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

func (m *MockAccountTypeRepository) ListAccountTypes(ctx context.Context, filter dto.AccountTypeFilter) ([]domain.AccountType, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AccountType), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountTypeRepository) SaveAccountType(ctx context.Context, accountType domain.AccountType) error {
	args := m.Called(ctx, accountType)
	return args.Error(0)
}

func (m *MockAccountTypeRepository) UpdateAccountType(ctx context.Context, accountType domain.AccountType) error {
	args := m.Called(ctx, accountType)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---

type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyBySequenceID(ctx context.Context, sequenceID int64) (*domain.Currency, error) {
	args := m.Called(ctx, sequenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByISOCode(ctx context.Context, isoCode string) (*domain.Currency, error) {
	args := m.Called(ctx, isoCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, filter dto.CurrencyFilter) ([]domain.Currency, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Currency), args.Get(1).(int64), args.Error(2)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Mock AuxiliarySystemRepository ---

type MockAuxiliarySystemRepository struct {
	mock.Mock
}

var _ portsrepo.AuxiliarySystemRepositoryFacade = (*MockAuxiliarySystemRepository)(nil)

func (m *MockAuxiliarySystemRepository) FindAuxiliarySystemByID(ctx context.Context, auxiliarySystemID string) (*domain.AuxiliarySystem, error) {
	args := m.Called(ctx, auxiliarySystemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuxiliarySystem), args.Error(1)
}

func (m *MockAuxiliarySystemRepository) FindAuxiliarySystemBySequenceID(ctx context.Context, sequenceID int64) (*domain.AuxiliarySystem, error) {
	args := m.Called(ctx, sequenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuxiliarySystem), args.Error(1)
}

func (m *MockAuxiliarySystemRepository) ListAuxiliarySystems(ctx context.Context, filter dto.AuxiliarySystemFilter) ([]domain.AuxiliarySystem, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AuxiliarySystem), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuxiliarySystemRepository) SaveAuxiliarySystem(ctx context.Context, system domain.AuxiliarySystem) error {
	args := m.Called(ctx, system)
	return args.Error(0)
}

func (m *MockAuxiliarySystemRepository) UpdateAuxiliarySystem(ctx context.Context, system domain.AuxiliarySystem) error {
	args := m.Called(ctx, system)
	return args.Error(0)
}

// --- Mock LedgerAccountRepository ---

type MockLedgerAccountRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerAccountRepositoryFacade = (*MockLedgerAccountRepository)(nil)

func (m *MockLedgerAccountRepository) FindLedgerAccountByID(ctx context.Context, ledgerAccountID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, ledgerAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) FindLedgerAccountBySequenceID(ctx context.Context, sequenceID int64) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, sequenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) FindLedgerAccountsBySequenceIDs(ctx context.Context, sequenceIDs []int64) (map[int64]domain.LedgerAccount, error) {
	args := m.Called(ctx, sequenceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) ListLedgerAccounts(ctx context.Context, filter dto.LedgerAccountFilter) ([]domain.LedgerAccount, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerAccount), args.Get(1).(int64), args.Error(2)
}

func (m *MockLedgerAccountRepository) SaveLedgerAccount(ctx context.Context, account domain.LedgerAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedgerAccountRepository) UpdateLedgerAccount(ctx context.Context, account domain.LedgerAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock JournalEntryRepository ---

type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepositoryFacade = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) FindJournalEntryBySequenceID(ctx context.Context, sequenceID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, sequenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) ListJournalEntries(ctx context.Context, filter dto.JournalEntryFilter) ([]domain.JournalEntry, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalEntryRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastAccess(ctx context.Context, userID string, lastAccess time.Time) error {
	args := m.Called(ctx, userID, lastAccess)
	return args.Error(0)
}

// --- Mock DashboardRepository ---

type MockDashboardRepository struct {
	mock.Mock
}

var _ portsrepo.DashboardRepository = (*MockDashboardRepository)(nil)

func (m *MockDashboardRepository) GetSystemSummary(ctx context.Context) (*domain.SystemSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemSummary), args.Error(1)
}

// --- Mock ExchangeRateProvider ---

type MockExchangeRateProvider struct {
	mock.Mock
}

var _ portssvc.ExchangeRateProvider = (*MockExchangeRateProvider)(nil)

func (m *MockExchangeRateProvider) FetchRate(ctx context.Context, isoCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, isoCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
