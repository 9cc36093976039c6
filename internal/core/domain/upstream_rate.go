package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// UpstreamRate is a single element of the DolarAPI response array. Buy and
// Sell decode through shopspring/decimal straight from the JSON literal, so an
// upstream 1415 arrives as the exact decimal 1415 and never passes through a
// binary float.
//
// The house type (casa) is an open string set: upstream adds new houses
// without a contract change, so it must not be modeled as a closed enum.
type UpstreamRate struct {
	Currency    string          `json:"moneda"`
	Name        string          `json:"nombre"`
	House       string          `json:"casa"`
	Buy         decimal.Decimal `json:"compra"`
	Sell        decimal.Decimal `json:"venta"`
	LastUpdated string          `json:"fechaActualizacion"`
}

// UnmarshalJSON decodes one upstream item, defaulting absent fields: currency
// "USD", house "unknown", zero prices, empty name and timestamp.
func (u *UpstreamRate) UnmarshalJSON(data []byte) error {
	type alias UpstreamRate
	a := alias{Currency: "USD", House: "unknown"}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*u = UpstreamRate(a)
	return nil
}
