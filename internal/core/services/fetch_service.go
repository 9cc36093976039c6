package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wallbit/exchange-rates-api/internal/core/domain"
	portsrepo "github.com/wallbit/exchange-rates-api/internal/core/ports/repositories"
	portssvc "github.com/wallbit/exchange-rates-api/internal/core/ports/services"
	"github.com/wallbit/exchange-rates-api/internal/utils/mapping"
)

const defaultFetchTimeout = 10 * time.Second

// FetchService orchestrates one fetch-normalize-persist cycle against the
// upstream rate source. It is stateless across invocations and safe to call
// concurrently; each call is an independent cycle.
type FetchService struct {
	source   portssvc.UpstreamRateSource
	rateRepo portsrepo.ExchangeRateRepository
	logger   *slog.Logger
	timeout  time.Duration
}

var _ portssvc.RateFetcherSvcFacade = (*FetchService)(nil)

// NewFetchService creates a new FetchService. A non-positive timeout falls
// back to 10s; the timeout bounds only the outbound upstream call.
func NewFetchService(source portssvc.UpstreamRateSource, rateRepo portsrepo.ExchangeRateRepository, logger *slog.Logger, timeout time.Duration) *FetchService {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &FetchService{
		source:   source,
		rateRepo: rateRepo,
		logger:   logger,
		timeout:  timeout,
	}
}

// FetchAndStoreRates runs one cycle. A transport or decode failure aborts the
// whole cycle with status "error" and persists nothing. Per-item insert
// failures are collected into the outcome and never stop the remaining items;
// the cycle still reports status "ok".
func (s *FetchService) FetchAndStoreRates(ctx context.Context) domain.FetchOutcome {
	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	upstream, err := s.source.FetchRates(fetchCtx)
	if err != nil {
		s.logger.Error("Failed to fetch upstream rates", slog.String("error", err.Error()))
		return domain.FetchOutcome{
			Status:  domain.FetchStatusError,
			Message: fmt.Sprintf("HTTP error fetching data: %v", err),
		}
	}

	outcome := domain.FetchOutcome{
		Status: domain.FetchStatusOK,
		Total:  len(upstream),
		Rates:  upstream,
	}

	// Items are persisted strictly in upstream order; each insert is its own
	// unit of work, so one failure cannot roll back a sibling.
	for _, u := range upstream {
		payload := mapping.ToNewExchangeRate(u)
		if _, err := s.rateRepo.SaveExchangeRate(ctx, payload); err != nil {
			s.logger.Warn("Failed to insert rate",
				slog.String("type", u.House),
				slog.String("error", err.Error()),
			)
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("error inserting %s: %v", u.House, err))
			continue
		}
		outcome.Inserted++
	}

	return outcome
}

// RunJob is the wrapper the scheduler and the /run-job endpoint invoke; it
// adds job-level logging around a regular fetch cycle.
func (s *FetchService) RunJob(ctx context.Context) domain.FetchOutcome {
	s.logger.Info("Exchange rate fetch job started")
	outcome := s.FetchAndStoreRates(ctx)
	if outcome.Status != domain.FetchStatusOK {
		s.logger.Error("Exchange rate fetch job failed", slog.String("message", outcome.Message))
		return outcome
	}
	s.logger.Info("Exchange rate fetch job finished",
		slog.Int("inserted", outcome.Inserted),
		slog.Int("total", outcome.Total),
		slog.Int("insert_errors", len(outcome.Errors)),
	)
	return outcome
}
