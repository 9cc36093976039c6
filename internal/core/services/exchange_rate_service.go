package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wallbit/exchange-rates-api/internal/core/domain"
	portsrepo "github.com/wallbit/exchange-rates-api/internal/core/ports/repositories"
	portssvc "github.com/wallbit/exchange-rates-api/internal/core/ports/services"
	"github.com/wallbit/exchange-rates-api/internal/dto"
)

// ExchangeRateService provides read and manual-create operations over stored
// rates, plus the store readiness check behind /healthz.
type ExchangeRateService struct {
	rateRepo portsrepo.ExchangeRateRepository
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
var _ portssvc.HealthSvc = (*ExchangeRateService)(nil)

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepository) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo}
}

// CreateExchangeRate persists a caller-supplied record. Unlike the fetch
// pipeline, nothing is derived here: buy, sell, rate and diff go in exactly as
// provided, and all of them may be absent.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	payload := domain.NewExchangeRate{
		Type: req.Type,
		Buy:  toNullDecimal(req.Buy),
		Sell: toNullDecimal(req.Sell),
		Rate: toNullDecimal(req.Rate),
		Diff: toNullDecimal(req.Diff),
	}

	id, err := s.rateRepo.SaveExchangeRate(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	created, err := s.rateRepo.FindExchangeRateByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load created exchange rate %d: %w", id, err)
	}
	return created, nil
}

// ListExchangeRates retrieves up to limit records, most recent id first.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context, limit int) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	// Return empty slice if no rates found, not nil
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// GetExchangeRateByID retrieves a single record by id.
func (s *ExchangeRateService) GetExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, id)
	if err != nil {
		// Repository layer handles ErrNotFound mapping
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// Ready reports whether the backing store answers a ping.
func (s *ExchangeRateService) Ready(ctx context.Context) error {
	return s.rateRepo.Ping(ctx)
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
