package repositories

import (
	"context"

	"github.com/wallbit/exchange-rates-api/internal/core/domain"
)

// ExchangeRateRepository defines persistence operations for exchange rates.
// Implementations must be safe for concurrent use; each insert is its own
// atomic unit of work, no multi-record transaction exists.
type ExchangeRateRepository interface {
	// SaveExchangeRate inserts a new rate record and returns the store-assigned id.
	SaveExchangeRate(ctx context.Context, rate domain.NewExchangeRate) (int64, error)

	// ListExchangeRates returns up to limit records, most recent id first.
	ListExchangeRates(ctx context.Context, limit int) ([]domain.ExchangeRate, error)

	// FindExchangeRateByID returns a single record, or apperrors.ErrNotFound
	// when no record has that id.
	FindExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
