// Command fetch_rates runs a single fetch cycle against the configured
// database and prints the outcome as JSON. Exit code 0 means the cycle
// completed; per-item insert failures are reported in the output but do not
// fail the run.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/wallbit/exchange-rates-api/internal/adapters/database/pgsql"
	"github.com/wallbit/exchange-rates-api/internal/adapters/upstream/dolarapi"
	"github.com/wallbit/exchange-rates-api/internal/core/domain"
	"github.com/wallbit/exchange-rates-api/internal/core/services"
	"github.com/wallbit/exchange-rates-api/internal/dto"
	"github.com/wallbit/exchange-rates-api/internal/platform/config"
	"github.com/wallbit/exchange-rates-api/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.PoolMinConns, cfg.PoolMaxConns)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	rateRepo := pgsql.NewExchangeRateRepository(dbPool)
	source := dolarapi.NewClient(cfg.DolarAPIURL)
	fetchSvc := services.NewFetchService(source, rateRepo, logger, cfg.FetchTimeout)

	outcome := fetchSvc.RunJob(ctx)

	out, err := json.MarshalIndent(dto.ToFetchOutcomeResponse(outcome), "", "  ")
	if err != nil {
		logger.Error("Failed to encode outcome", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(out))

	if outcome.Status != domain.FetchStatusOK {
		os.Exit(1)
	}
}
