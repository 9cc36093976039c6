package services

import (
	"context"

	"github.com/wallbit/exchange-rates-api/internal/core/domain"
	"github.com/wallbit/exchange-rates-api/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for stored rates.
type ExchangeRateReaderSvc interface {
	// ListExchangeRates retrieves up to limit records, most recent id first.
	ListExchangeRates(ctx context.Context, limit int) ([]domain.ExchangeRate, error)

	// GetExchangeRateByID retrieves a single record by id.
	GetExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for stored rates.
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a caller-supplied record as-is. Rate and
	// diff are not derived on this path; all price fields may be absent.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines rate read and write operations.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// RateFetcherSvcFacade runs the fetch-normalize-persist pipeline.
type RateFetcherSvcFacade interface {
	// FetchAndStoreRates runs one fetch cycle. Every failure mode resolves to
	// the returned outcome value; it never returns an error.
	FetchAndStoreRates(ctx context.Context) domain.FetchOutcome

	// RunJob wraps FetchAndStoreRates with job-level logging. The scheduler
	// and the /run-job endpoint both go through this wrapper.
	RunJob(ctx context.Context) domain.FetchOutcome
}

// HealthSvc reports readiness of the backing store.
type HealthSvc interface {
	Ready(ctx context.Context) error
}

// UpstreamRateSource fetches raw rate quotes from the external provider.
type UpstreamRateSource interface {
	FetchRates(ctx context.Context) ([]domain.UpstreamRate, error)
}

// ServiceContainer holds instances of all the application services. This is
// the entry point the handlers receive at route registration.
type ServiceContainer struct {
	ExchangeRate ExchangeRateSvcFacade
	RateFetcher  RateFetcherSvcFacade
	Health       HealthSvc
}
