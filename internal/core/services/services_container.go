package services

import (
	"log/slog"
	"time"

	portsrepo "github.com/wallbit/exchange-rates-api/internal/core/ports/repositories"
	portssvc "github.com/wallbit/exchange-rates-api/internal/core/ports/services"
)

// NewServiceContainer wires the concrete services behind their facades. The
// readiness check is served by the rate service since both lean on the same
// repository handle.
func NewServiceContainer(rateRepo portsrepo.ExchangeRateRepository, source portssvc.UpstreamRateSource, logger *slog.Logger, fetchTimeout time.Duration) *portssvc.ServiceContainer {
	rateSvc := NewExchangeRateService(rateRepo)
	fetchSvc := NewFetchService(source, rateRepo, logger, fetchTimeout)

	return &portssvc.ServiceContainer{
		ExchangeRate: rateSvc,
		RateFetcher:  fetchSvc,
		Health:       rateSvc,
	}
}
