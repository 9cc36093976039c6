package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wallbit/exchange-rates-api/internal/core/domain"
)

// CreateExchangeRateRequest defines the manual-create payload. Values are
// stored verbatim; rate and diff are not derived on this path.
type CreateExchangeRateRequest struct {
	Type string           `json:"type" binding:"required,min=1"`
	Buy  *decimal.Decimal `json:"buy"`
	Sell *decimal.Decimal `json:"sell"`
	Rate *decimal.Decimal `json:"rate"`
	Diff *decimal.Decimal `json:"diff"`
}

// ExchangeRateResponse mirrors one exchange_rates row; absent prices marshal
// as null.
type ExchangeRateResponse struct {
	ID        int64               `json:"id"`
	Type      string              `json:"type"`
	Buy       decimal.NullDecimal `json:"buy"`
	Sell      decimal.NullDecimal `json:"sell"`
	Rate      decimal.NullDecimal `json:"rate"`
	Diff      decimal.NullDecimal `json:"diff"`
	CreatedAt time.Time           `json:"created_at"`
}

// ExchangeRateListResponse wraps the list endpoint payload.
type ExchangeRateListResponse struct {
	Status string                 `json:"status"`
	Data   []ExchangeRateResponse `json:"data"`
}

// ExchangeRateCreateResponse wraps the record returned by the create endpoint.
type ExchangeRateCreateResponse struct {
	Status string               `json:"status"`
	Data   ExchangeRateResponse `json:"data"`
}

// UpstreamRateResponse echoes one fetched upstream item with the upstream
// field names preserved on the wire.
type UpstreamRateResponse struct {
	Currency    string          `json:"moneda"`
	Name        string          `json:"nombre"`
	House       string          `json:"casa"`
	Buy         decimal.Decimal `json:"compra"`
	Sell        decimal.Decimal `json:"venta"`
	LastUpdated string          `json:"fechaActualizacion"`
}

// FetchOutcomeResponse is the JSON shape of one fetch cycle result. For
// cycle-fatal failures only status and message carry values; the counters and
// item list marshal as null.
type FetchOutcomeResponse struct {
	Status    string                 `json:"status"`
	Inserted  *int                   `json:"inserted"`
	Total     *int                   `json:"total"`
	Exchanges []UpstreamRateResponse `json:"exchanges"`
	Errors    []string               `json:"errors"`
	Message   string                 `json:"message,omitempty"`
}

// ToExchangeRateResponse converts a domain ExchangeRate to its response DTO.
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:        rate.ID,
		Type:      rate.Type,
		Buy:       rate.Buy,
		Sell:      rate.Sell,
		Rate:      rate.Rate,
		Diff:      rate.Diff,
		CreatedAt: rate.CreatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain ExchangeRate records
// to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToFetchOutcomeResponse converts a domain FetchOutcome to its response DTO.
func ToFetchOutcomeResponse(o domain.FetchOutcome) FetchOutcomeResponse {
	resp := FetchOutcomeResponse{
		Status:  o.Status,
		Errors:  o.Errors,
		Message: o.Message,
	}
	if o.Status != domain.FetchStatusOK {
		return resp
	}

	inserted, total := o.Inserted, o.Total
	resp.Inserted = &inserted
	resp.Total = &total

	exchanges := make([]UpstreamRateResponse, len(o.Rates))
	for i, r := range o.Rates {
		exchanges[i] = UpstreamRateResponse{
			Currency:    r.Currency,
			Name:        r.Name,
			House:       r.House,
			Buy:         r.Buy,
			Sell:        r.Sell,
			LastUpdated: r.LastUpdated,
		}
	}
	resp.Exchanges = exchanges
	return resp
}
