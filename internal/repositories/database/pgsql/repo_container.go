package pgsql

import (
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	counterRepo := newPgxCounterRepository(dbPool)
	accountTypeRepo := newPgxAccountTypeRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	auxiliarySystemRepo := newPgxAuxiliarySystemRepository(dbPool)
	ledgerAccountRepo := newPgxLedgerAccountRepository(dbPool)
	journalEntryRepo := newPgxJournalEntryRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	dashboardRepo := newPgxDashboardRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CounterRepo:         counterRepo,
		AccountTypeRepo:     accountTypeRepo,
		CurrencyRepo:        currencyRepo,
		AuxiliarySystemRepo: auxiliarySystemRepo,
		LedgerAccountRepo:   ledgerAccountRepo,
		JournalEntryRepo:    journalEntryRepo,
		UserRepo:            userRepo,
		DashboardRepo:       dashboardRepo,
	}
}
