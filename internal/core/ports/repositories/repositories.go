package repositories

// RepositoryProvider holds the set of repository facades handed to the services.
type RepositoryProvider struct {
	CounterRepo         CounterRepository
	AccountTypeRepo     AccountTypeRepositoryFacade
	CurrencyRepo        CurrencyRepositoryFacade
	AuxiliarySystemRepo AuxiliarySystemRepositoryFacade
	LedgerAccountRepo   LedgerAccountRepositoryFacade
	JournalEntryRepo    JournalEntryRepositoryFacade
	UserRepo            UserRepositoryFacade
	DashboardRepo       DashboardRepository
}
