package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
)

// currencyService provides the currency registry operations plus the
// external rate refresh.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	counterRepo  portsrepo.CounterRepository
	rateProvider portssvc.ExchangeRateProvider
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, counterRepo portsrepo.CounterRepository, rateProvider portssvc.ExchangeRateProvider) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: currencyRepo,
		counterRepo:  counterRepo,
		rateProvider: rateProvider,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	isoCode := strings.ToUpper(req.ISOCode)
	if !req.LastExchangeRate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be greater than zero", apperrors.ErrValidation)
	}

	sequenceID, err := s.counterRepo.NextID(ctx, domain.EntityCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to mint currency sequence id: %w", err)
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyID:       uuid.NewString(),
		SequenceID:       sequenceID,
		ISOCode:          isoCode,
		Description:      req.Description,
		LastExchangeRate: req.LastExchangeRate,
		Active:           true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("currency created", "iso_code", isoCode, "sequence_id", sequenceID)
	return &currency, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, sequenceID int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyBySequenceID(ctx, sequenceID)
	if err != nil {
		return nil, err
	}

	if req.ISOCode != nil {
		currency.ISOCode = strings.ToUpper(*req.ISOCode)
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
		}
		currency.Description = *req.Description
	}
	if req.LastExchangeRate != nil {
		if !req.LastExchangeRate.IsPositive() {
			return nil, fmt.Errorf("%w: exchange rate must be greater than zero", apperrors.ErrValidation)
		}
		currency.LastExchangeRate = *req.LastExchangeRate
	}
	if req.Active != nil {
		currency.Active = *req.Active
	}
	currency.UpdatedAt = time.Now()

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}

	return currency, nil
}

func (s *currencyService) GetCurrencyBySequenceID(ctx context.Context, sequenceID int64) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyBySequenceID(ctx, sequenceID)
}

func (s *currencyService) ListCurrencies(ctx context.Context, filter dto.CurrencyFilter) ([]domain.Currency, int64, error) {
	filter.Normalize()
	currencies, total, err := s.currencyRepo.ListCurrencies(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, total, nil
}

// RefreshExchangeRate fetches the live rate for the currency's ISO code and
// persists it as the last known rate. Posting never depends on this; the
// stored rate is advisory.
func (s *currencyService) RefreshExchangeRate(ctx context.Context, sequenceID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyBySequenceID(ctx, sequenceID)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateProvider.FetchRate(ctx, currency.ISOCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rate for %s: %w", currency.ISOCode, err)
	}

	currency.LastExchangeRate = rate
	currency.UpdatedAt = time.Now()

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to persist refreshed rate for %s: %w", currency.ISOCode, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("exchange rate refreshed", "iso_code", currency.ISOCode, "rate", rate.String())
	return currency, nil
}
