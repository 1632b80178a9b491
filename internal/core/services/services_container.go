package services

import (
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateProvider portssvc.ExchangeRateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.AccountType = NewAccountTypeService(repos.AccountTypeRepo, repos.CounterRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo, repos.CounterRepo, rateProvider)
	container.AuxiliarySystem = NewAuxiliarySystemService(repos.AuxiliarySystemRepo, repos.CounterRepo)
	container.LedgerAccount = NewLedgerAccountService(repos.LedgerAccountRepo, repos.AccountTypeRepo, repos.CounterRepo)
	container.JournalEntry = NewJournalEntryService(repos.JournalEntryRepo, repos.LedgerAccountRepo, repos.AuxiliarySystemRepo, repos.CounterRepo)
	container.User = NewUserService(repos.UserRepo, repos.AuxiliarySystemRepo, repos.CounterRepo)
	container.Dashboard = NewDashboardService(repos.DashboardRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
