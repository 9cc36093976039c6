package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wallbit/exchange-rates-api/internal/core/domain"
	portssvc "github.com/wallbit/exchange-rates-api/internal/core/ports/services"
	"github.com/wallbit/exchange-rates-api/internal/dto"
	"github.com/wallbit/exchange-rates-api/internal/middleware"
)

// defaultListLimit caps the list endpoint at the most recent 100 records.
const defaultListLimit = 100

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateService  portssvc.ExchangeRateSvcFacade
	fetchService portssvc.RateFetcherSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade, fs portssvc.RateFetcherSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		rateService:  rs,
		fetchService: fs,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(r *gin.Engine, rs portssvc.ExchangeRateSvcFacade, fs portssvc.RateFetcherSvcFacade) {
	h := newExchangeRateHandler(rs, fs)

	exchange := r.Group("/api/exchange")
	{
		exchange.GET("", h.listExchangeRates)
		exchange.POST("", h.createExchangeRate)
		exchange.POST("/fetch", h.fetchExchangeRates)
	}

	// Legacy alias kept for operators; same pipeline, wrapped as a job run.
	r.POST("/run-job", h.runJob)
}

// listExchangeRates returns the most recent stored records, newest id first.
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListExchangeRates(c.Request.Context(), defaultListLimit)
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeRateListResponse{
		Status: "ok",
		Data:   dto.ToListExchangeRateResponse(rates),
	})
}

// createExchangeRate stores a caller-supplied record verbatim. All price
// fields are optional; a record carrying only a type is valid.
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.rateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create exchange rate in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create exchange rate"})
		return
	}

	logger.Info("Exchange rate created", slog.Int64("id", created.ID), slog.String("type", created.Type))
	c.JSON(http.StatusCreated, dto.ExchangeRateCreateResponse{
		Status: "ok",
		Data:   dto.ToExchangeRateResponse(created),
	})
}

// fetchExchangeRates synchronously runs one fetch pipeline cycle.
func (h *exchangeRateHandler) fetchExchangeRates(c *gin.Context) {
	outcome := h.fetchService.FetchAndStoreRates(c.Request.Context())
	writeFetchOutcome(c, outcome)
}

// runJob invokes the same pipeline through the job wrapper.
func (h *exchangeRateHandler) runJob(c *gin.Context) {
	outcome := h.fetchService.RunJob(c.Request.Context())
	writeFetchOutcome(c, outcome)
}

func writeFetchOutcome(c *gin.Context, outcome domain.FetchOutcome) {
	status := http.StatusOK
	if outcome.Status != domain.FetchStatusOK {
		// Cycle-fatal failures (upstream or store unreachable) map to 502;
		// partial per-item failures still ride an "ok" outcome.
		status = http.StatusBadGateway
	}
	c.JSON(status, dto.ToFetchOutcomeResponse(outcome))
}
